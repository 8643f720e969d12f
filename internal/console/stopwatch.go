package console

import (
	"context"
	"errors"
	"io"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"

	"github.com/jimmitjoo/hogby-pace/internal/pacing"
	"github.com/jimmitjoo/hogby-pace/internal/services/export"
	"github.com/jimmitjoo/hogby-pace/internal/stopwatch"
)

// Stopwatch is the terminal stopwatch.
type Stopwatch struct {
	base
	session *stopwatch.Session
}

// NewStopwatch creates a console for session. Output goes to out until Run
// takes over the terminal.
func NewStopwatch(session *stopwatch.Session, exporter *export.Service, format export.Format, out io.Writer, logger zerolog.Logger) *Stopwatch {
	return &Stopwatch{
		base: base{
			out:      out,
			exporter: exporter,
			format:   format,
			logger:   logger,
			confirm:  func(string) bool { return false },
		},
		session: session,
	}
}

// Run reads commands until quit.
func (c *Stopwatch) Run(ctx context.Context) error {
	return run(ctx, "stopwatch> ", c, &c.base)
}

func (c *Stopwatch) completer() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("start"),
		readline.PcItem("stop"),
		readline.PcItem("lap"),
		readline.PcItem("reset"),
		readline.PcItem("status"),
		readline.PcItem("laps"),
		readline.PcItem("target"),
		readline.PcItem("export", readline.PcItem("csv"), readline.PcItem("json"), readline.PcItem("yaml")),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

func (c *Stopwatch) printHelp() {
	c.println(`
Stopwatch commands:
    start                          - Start or resume the clock
    stop                           - Pause the clock
    lap                            - Record a lap
    reset                          - Clear time and laps (clock must be stopped)
    status                         - Show clock, current lap, delta and prediction
    laps                           - List recorded laps
    target <race m> <time> <lap m> - Set race distance, target time and lap distance
    export [csv|json|yaml]         - Write the lap sheet to a file
    quit                           - Leave`)
}

func (c *Stopwatch) execute(cmd string, args []string) bool {
	switch cmd {
	case "start", "s":
		c.session.Start()
		c.cmdStatus()
	case "stop":
		c.session.Stop()
		c.cmdStatus()
	case "lap", "l":
		c.cmdLap()
	case "reset":
		if err := c.session.Reset(); err != nil {
			if errors.Is(err, stopwatch.ErrRunning) {
				c.println("Stop the clock before resetting.")
				return false
			}
			c.println(err)
			return false
		}
		c.println("Reset.")
	case "status", "st":
		c.cmdStatus()
	case "laps":
		printLaps(c.out, c.session.Laps())
	case "target":
		c.cmdTarget(args)
	case "export":
		c.export(export.LapSheet(c.session.Snapshot()), args)
	default:
		c.printf("Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (c *Stopwatch) cmdLap() {
	lap, err := c.session.RecordLap()
	if err != nil {
		c.println("Clock is not running.")
		return
	}
	c.printf("Lap %d  %s  (%s)  total %s\n",
		lap.Number,
		pacing.FormatDuration(lap.Duration, true),
		delta(lap.LapDelta),
		delta(lap.CumulativeDelta),
	)
}

func (c *Stopwatch) cmdStatus() {
	state := "stopped"
	if c.session.Running() {
		state = "running"
	}
	t := c.session.Target()
	c.printf("%s  %s  lap %s  delta %s  predicted %s  (target %s/lap)\n",
		strong(pacing.FormatDuration(c.session.Elapsed(), true)),
		state,
		pacing.FormatDuration(c.session.CurrentLap(), true),
		delta(c.session.LastSplitDelta()),
		pacing.FormatDuration(c.session.PredictedFinish(), true),
		pacing.FormatDuration(t.LapTarget(), true),
	)
}

func (c *Stopwatch) cmdTarget(args []string) {
	if len(args) != 3 {
		t := c.session.Target()
		c.printf("Target: %g m in %s, laps of %g m\n", t.RaceDistance, pacing.FormatDuration(t.TargetTotal, false), t.LapDistance)
		return
	}
	t := stopwatch.Target{
		RaceDistance: pacing.ParseField(args[0]).Value(),
		TargetTotal:  pacing.ParseDuration(args[1]),
		LapDistance:  pacing.ParseField(args[2]).Value(),
	}
	c.session.SetTarget(t)
	c.printf("Target: %g m in %s, %s per %g m lap\n",
		t.RaceDistance, pacing.FormatDuration(t.TargetTotal, false),
		pacing.FormatDuration(t.LapTarget(), true), t.LapDistance)
}
