package export

import (
	"strconv"

	"github.com/jimmitjoo/hogby-pace/internal/pacing"
	"github.com/jimmitjoo/hogby-pace/internal/race"
	"github.com/jimmitjoo/hogby-pace/internal/stopwatch"
)

type splitTable struct {
	Distance  float64             `json:"distance" yaml:"distance"`
	Target    string              `json:"target" yaml:"target"`
	PacePerKm string              `json:"pacePerKm" yaml:"pacePerKm"`
	Splits    []pacing.Checkpoint `json:"splits" yaml:"splits"`
}

// SplitSheet builds a sheet from a split table for a race of distance
// meters run in targetSeconds.
func SplitSheet(distance, targetSeconds float64, splits []pacing.Checkpoint) Sheet {
	rows := make([][]string, 0, len(splits))
	for _, c := range splits {
		rows = append(rows, []string{
			meters(c.Distance),
			pacing.FormatDuration(c.Cumulative, true),
			pacing.FormatDuration(c.Incremental, true),
		})
	}
	return Sheet{
		Title:  "splits",
		Header: []string{"distance_m", "elapsed", "split"},
		Rows:   rows,
		Data: splitTable{
			Distance:  distance,
			Target:    pacing.FormatDuration(targetSeconds, false),
			PacePerKm: pacing.FormatPacePerKm(distance, targetSeconds),
			Splits:    splits,
		},
	}
}

// LapSheet builds a sheet from a stopwatch snapshot, oldest lap first.
func LapSheet(snap stopwatch.Snapshot) Sheet {
	rows := make([][]string, 0, len(snap.Laps))
	for i := len(snap.Laps) - 1; i >= 0; i-- {
		rows = append(rows, lapRow(nil, snap.Laps[i]))
	}
	return Sheet{
		Title:  "stopwatch",
		Header: []string{"lap", "time", "lap_time", "lap_delta", "total_delta"},
		Rows:   rows,
		Data:   snap,
	}
}

// RaceSheet builds a sheet from a race snapshot with one row per lap.
// Runners without laps get a single row with their status.
func RaceSheet(snap race.Snapshot) Sheet {
	var rows [][]string
	for _, r := range snap.Runners {
		prefix := []string{r.Name, string(r.Status)}
		if len(r.Laps) == 0 {
			rows = append(rows, append(prefix, "", "", "", "", ""))
			continue
		}
		for i := len(r.Laps) - 1; i >= 0; i-- {
			rows = append(rows, lapRow(prefix, r.Laps[i]))
		}
	}
	return Sheet{
		Title:  "race",
		Header: []string{"runner", "status", "lap", "time", "lap_time", "lap_delta", "total_delta"},
		Rows:   rows,
		Data:   snap,
	}
}

func lapRow(prefix []string, l pacing.Lap) []string {
	row := make([]string, 0, len(prefix)+5)
	row = append(row, prefix...)
	return append(row,
		strconv.Itoa(l.Number),
		pacing.FormatDuration(l.Cumulative, true),
		pacing.FormatDuration(l.Duration, true),
		pacing.FormatSignedDelta(l.LapDelta),
		pacing.FormatSignedDelta(l.CumulativeDelta),
	)
}

func meters(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
