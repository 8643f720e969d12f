package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jimmitjoo/hogby-pace/internal/clock"
	"github.com/jimmitjoo/hogby-pace/internal/console"
	"github.com/jimmitjoo/hogby-pace/internal/pacing"
	"github.com/jimmitjoo/hogby-pace/internal/services/export"
)

var (
	splitsDistance float64
	splitsUnit     string
	splitsTime     string
	splitsInterval float64
	splitsFormat   string
)

var splitsCmd = &cobra.Command{
	Use:   "splits",
	Short: "Print a split table for a target finish time",
	Example: `  hogby-pace splits --distance 5 --unit km --time 18:30 --interval 400
  hogby-pace splits --distance 1 --unit miles --time 4:59 --interval 400 --format json`,
	Args: cobra.NoArgs,
	RunE: runSplits,
}

var stopwatchCmd = &cobra.Command{
	Use:   "stopwatch",
	Short: "Run the lap stopwatch in the terminal",
	Args:  cobra.NoArgs,
	RunE:  runStopwatch,
}

var raceCmd = &cobra.Command{
	Use:   "race",
	Short: "Time several runners in the terminal",
	Args:  cobra.NoArgs,
	RunE:  runRace,
}

func init() {
	splitsCmd.Flags().Float64Var(&splitsDistance, "distance", 0, "Race distance (defaults to race.distance)")
	splitsCmd.Flags().StringVar(&splitsUnit, "unit", "", "Distance unit: meters, km or miles (defaults to race.unit)")
	splitsCmd.Flags().StringVar(&splitsTime, "time", "", "Target finish time as H:MM:SS, MM:SS or seconds (defaults to race.target_time)")
	splitsCmd.Flags().Float64Var(&splitsInterval, "interval", 0, "Split interval in meters (defaults to race.split_interval)")
	splitsCmd.Flags().StringVarP(&splitsFormat, "format", "f", "text", "Output format: text, csv, json or yaml")

	rootCmd.AddCommand(splitsCmd)
	rootCmd.AddCommand(stopwatchCmd)
	rootCmd.AddCommand(raceCmd)
}

func runSplits(cmd *cobra.Command, args []string) error {
	rc := cfg.Race
	if cmd.Flags().Changed("distance") {
		rc.Distance = splitsDistance
	}
	if cmd.Flags().Changed("unit") {
		rc.Unit = splitsUnit
	}
	if cmd.Flags().Changed("time") {
		rc.TargetTime = splitsTime
	}
	if cmd.Flags().Changed("interval") {
		rc.SplitInterval = splitsInterval
	}

	distance := rc.DistanceMeters()
	target := pacing.ParseDuration(rc.TargetTime)
	splits := pacing.GenerateSplits(distance, target, rc.SplitInterval)

	logger.Debug().
		Float64("distance", distance).
		Float64("target", target).
		Float64("interval", rc.SplitInterval).
		Int("splits", len(splits)).
		Msg("split table")

	out := cmd.OutOrStdout()
	if splitsFormat == "text" {
		console.PrintSplits(out, distance, target, splits)
		return nil
	}

	format, err := export.ParseFormat(splitsFormat)
	if err != nil {
		return err
	}
	if err := export.Write(out, format, export.SplitSheet(distance, target, splits)); err != nil {
		return fmt.Errorf("failed to write split table: %w", err)
	}
	return nil
}

func runStopwatch(cmd *cobra.Command, args []string) error {
	state := NewAppState(cfg, clock.Real{}, logger)
	c := console.NewStopwatch(state.stopwatch, state.exporter, export.Format(cfg.Export.Format), os.Stdout, logger)
	return c.Run(cmd.Context())
}

func runRace(cmd *cobra.Command, args []string) error {
	state := NewAppState(cfg, clock.Real{}, logger)
	c := console.NewRace(state.race, cfg.Runner.TargetLapTime, state.exporter, export.Format(cfg.Export.Format), os.Stdout, logger)
	return c.Run(cmd.Context())
}
