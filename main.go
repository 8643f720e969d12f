package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jimmitjoo/hogby-pace/internal/clock"
	"github.com/jimmitjoo/hogby-pace/internal/config"
)

var (
	version    = "dev"
	configPath string

	cfg    *config.Config
	logger zerolog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hogby-pace",
	Short: "Pacing tools for running races",
	Long: `hogby-pace calculates split tables from a target finish time, runs a
lap stopwatch against a target pace and times several runners against
their own lap targets.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
		logger = initLogger(cfg.Logging)
		logger.Info().
			Str("version", version).
			Str("command", cmd.Name()).
			Msg("Starting hogby-pace")
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default to the window when no subcommand is provided
		return runGUI(cmd, args)
	},
}

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the desktop window",
	RunE:  runGUI,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")
	rootCmd.AddCommand(guiCmd)
}

func runGUI(cmd *cobra.Command, args []string) error {
	state := NewAppState(cfg, clock.Real{}, logger)
	defer state.StopAll()

	runWindow(state)
	logger.Info().Msg("Window closed")
	return nil
}

func main() {
	defer closeLogger()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log := getLogger()
		log.Error().Err(err).Msg("Command failed")
		closeLogger()
		os.Exit(1)
	}
}
