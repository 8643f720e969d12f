package console

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/jimmitjoo/hogby-pace/internal/pacing"
)

var (
	behind = color.New(color.FgRed).SprintFunc()
	ahead  = color.New(color.FgGreen).SprintFunc()
	strong = color.New(color.Bold).SprintFunc()
)

// delta renders a signed delta, red when behind and green when ahead.
func delta(seconds float64) string {
	s := pacing.FormatSignedDelta(seconds)
	if seconds > 0 {
		return behind(s)
	}
	if seconds < 0 {
		return ahead(s)
	}
	return s
}

func printLaps(w io.Writer, laps []pacing.Lap) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LAP\tTIME\tLAP TIME\tLAP DELTA\tTOTAL DELTA")
	for _, l := range laps {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			l.Number,
			pacing.FormatDuration(l.Cumulative, true),
			pacing.FormatDuration(l.Duration, true),
			delta(l.LapDelta),
			delta(l.CumulativeDelta),
		)
	}
	tw.Flush()
}

// PrintSplits writes a split table for distance meters in targetSeconds.
func PrintSplits(w io.Writer, distance, targetSeconds float64, splits []pacing.Checkpoint) {
	if len(splits) == 0 {
		fmt.Fprintln(w, "Enter a distance, target time and split interval.")
		return
	}

	fmt.Fprintf(w, "%s m in %s, %s /km\n\n",
		strong(fmt.Sprintf("%g", distance)),
		strong(pacing.FormatDuration(targetSeconds, false)),
		strong(pacing.FormatPacePerKm(distance, targetSeconds)),
	)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "DISTANCE\tELAPSED\tSPLIT\t")
	for _, c := range splits {
		fmt.Fprintf(tw, "%g m\t%s\t%s\t\n",
			c.Distance,
			pacing.FormatDuration(c.Cumulative, true),
			pacing.FormatDuration(c.Incremental, true),
		)
	}
	tw.Flush()
}
