package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"

	"github.com/jimmitjoo/hogby-pace/internal/pacing"
	"github.com/jimmitjoo/hogby-pace/internal/race"
	"github.com/jimmitjoo/hogby-pace/internal/services/export"
)

// Race is the terminal multi-runner console.
type Race struct {
	base
	session       *race.Session
	defaultTarget float64
}

// NewRace creates a console for session. Runners added without a target
// get defaultTarget seconds per lap.
func NewRace(session *race.Session, defaultTarget float64, exporter *export.Service, format export.Format, out io.Writer, logger zerolog.Logger) *Race {
	return &Race{
		base: base{
			out:      out,
			exporter: exporter,
			format:   format,
			logger:   logger,
			confirm:  func(string) bool { return false },
		},
		session:       session,
		defaultTarget: defaultTarget,
	}
}

// Run reads commands until quit.
func (c *Race) Run(ctx context.Context) error {
	return run(ctx, "race> ", c, &c.base)
}

func (c *Race) completer() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("add"),
		readline.PcItem("remove"),
		readline.PcItem("start"),
		readline.PcItem("stop"),
		readline.PcItem("lap"),
		readline.PcItem("finish"),
		readline.PcItem("reset"),
		readline.PcItem("status"),
		readline.PcItem("export", readline.PcItem("csv"), readline.PcItem("json"), readline.PcItem("yaml")),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

func (c *Race) printHelp() {
	c.println(`
Race commands:
    add <name> [lap target]   - Enter a runner (target as M:SS or seconds)
    remove <runner>           - Remove a runner before the start
    start                     - Start the race clock for everyone
    stop                      - Stop the race, finishing everyone still running
    lap <runner>              - Record a lap for a runner
    finish <runner>           - Finish one runner
    reset                     - Clear the clock and all laps (asks first)
    status                    - Show every runner
    export [csv|json|yaml]    - Write the results to a file
    quit                      - Leave

<runner> is the number shown by status, a name, or the start of an id.`)
}

func (c *Race) execute(cmd string, args []string) bool {
	switch cmd {
	case "add", "a":
		c.cmdAdd(args)
	case "remove", "rm":
		c.withRunner(args, func(r race.Runner) error {
			if err := c.session.RemoveRunner(r.ID); err != nil {
				return err
			}
			c.printf("Removed %s\n", r.Name)
			return nil
		})
	case "start":
		if err := c.session.Start(); err != nil {
			c.report(err)
			return false
		}
		c.println("Started.")
	case "stop":
		c.session.Stop()
		c.cmdStatus()
	case "lap", "l":
		c.withRunner(args, func(r race.Runner) error {
			lap, err := c.session.RecordLap(r.ID)
			if err != nil {
				return err
			}
			c.printf("%s lap %d  %s  (%s)  total %s\n",
				r.Name, lap.Number,
				pacing.FormatDuration(lap.Duration, true),
				delta(lap.LapDelta),
				delta(lap.CumulativeDelta),
			)
			return nil
		})
	case "finish", "f":
		c.withRunner(args, func(r race.Runner) error {
			if err := c.session.FinishRunner(r.ID); err != nil {
				return err
			}
			c.printf("%s finished\n", r.Name)
			return nil
		})
	case "reset":
		if !c.confirm("Reset the race? All times and laps are lost.") {
			c.println("Cancelled.")
			return false
		}
		c.session.Reset()
		c.println("Reset.")
	case "status", "st":
		c.cmdStatus()
	case "export":
		c.export(export.RaceSheet(c.session.Snapshot()), args)
	default:
		c.printf("Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (c *Race) cmdAdd(args []string) {
	if len(args) == 0 {
		c.println("Usage: add <name> [lap target]")
		return
	}
	target := c.defaultTarget
	name := strings.Join(args, " ")
	if len(args) > 1 {
		if t := pacing.ParseDuration(args[len(args)-1]); t > 0 {
			target = t
			name = strings.Join(args[:len(args)-1], " ")
		}
	}
	r, err := c.session.AddRunner(name, target)
	if err != nil {
		c.report(err)
		return
	}
	c.printf("Added %s, %s per lap\n", r.Name, pacing.FormatDuration(r.TargetLapTime, true))
}

func (c *Race) cmdStatus() {
	snap := c.session.Snapshot()
	state := "stopped"
	if snap.Running {
		state = "running"
	}
	c.printf("%s  %s\n", strong(pacing.FormatDuration(snap.Elapsed, true)), state)
	if len(snap.Runners) == 0 {
		c.println("No runners. Use 'add <name>'.")
		return
	}

	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tRUNNER\tSTATUS\tTIME\tLAPS\tLAST LAP\tDELTA")
	for i, r := range snap.Runners {
		last := pacing.Placeholder
		if len(r.Laps) > 0 {
			last = pacing.FormatDuration(r.Laps[0].Duration, true)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\t%s\n",
			i+1,
			r.Name,
			r.Status,
			pacing.FormatDuration(r.DisplayTime(snap.Elapsed), true),
			len(r.Laps),
			last,
			delta(r.TotalDelta(snap.Elapsed)),
		)
	}
	tw.Flush()
}

// withRunner resolves the runner named by args and applies fn.
func (c *Race) withRunner(args []string, fn func(race.Runner) error) {
	if len(args) == 0 {
		c.println("Which runner? Give a number, name or id.")
		return
	}
	r, err := c.resolve(strings.Join(args, " "))
	if err != nil {
		c.report(err)
		return
	}
	if err := fn(r); err != nil {
		c.report(err)
	}
}

// resolve finds a runner by 1-based position, name or id prefix.
func (c *Race) resolve(ref string) (race.Runner, error) {
	runners := c.session.Runners()
	if n, err := strconv.Atoi(ref); err == nil {
		if n >= 1 && n <= len(runners) {
			return runners[n-1], nil
		}
		return race.Runner{}, race.ErrUnknownRunner
	}
	for _, r := range runners {
		if strings.EqualFold(r.Name, ref) {
			return r, nil
		}
	}
	var match *race.Runner
	for i := range runners {
		if strings.HasPrefix(runners[i].ID, ref) {
			if match != nil {
				return race.Runner{}, fmt.Errorf("%q matches more than one runner", ref)
			}
			match = &runners[i]
		}
	}
	if match == nil {
		return race.Runner{}, race.ErrUnknownRunner
	}
	return *match, nil
}

func (c *Race) report(err error) {
	switch {
	case errors.Is(err, race.ErrNeedsReset):
		c.println("The race has been run. Use 'reset' before starting again.")
	case errors.Is(err, race.ErrRosterFrozen):
		c.println("Runners can only be added or removed before the start.")
	case errors.Is(err, race.ErrRunnerNotRunning):
		c.println("That runner is not running.")
	default:
		c.println(err)
	}
	c.logger.Debug().Err(err).Msg("command rejected")
}
