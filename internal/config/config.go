// Package config loads application settings from defaults, an optional
// YAML file and HOGBY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jimmitjoo/hogby-pace/internal/pacing"
)

// Config holds the complete application configuration
type Config struct {
	Race    RaceConfig    `mapstructure:"race"`
	Runner  RunnerConfig  `mapstructure:"runner"`
	Display DisplayConfig `mapstructure:"display"`
	Logging LoggingConfig `mapstructure:"logging"`
	Export  ExportConfig  `mapstructure:"export"`
}

// RaceConfig prefills the calculator and stopwatch forms
type RaceConfig struct {
	Distance      float64 `mapstructure:"distance"`
	Unit          string  `mapstructure:"unit"`
	TargetTime    string  `mapstructure:"target_time"`
	LapDistance   float64 `mapstructure:"lap_distance"`
	SplitInterval float64 `mapstructure:"split_interval"`
}

// RunnerConfig prefills the add-runner form
type RunnerConfig struct {
	TargetLapTime float64 `mapstructure:"target_lap_time"`
}

// DisplayConfig controls the clock refresh loop
type DisplayConfig struct {
	TickInterval time.Duration `mapstructure:"tick_interval"`
}

// LoggingConfig defines logging behavior
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// ExportConfig defines where exported sheets go
type ExportConfig struct {
	Directory string `mapstructure:"directory"`
	Format    string `mapstructure:"format"`
}

// DistanceMeters returns the configured race distance in meters.
func (r RaceConfig) DistanceMeters() float64 {
	return pacing.ToMeters(r.Distance, r.Unit)
}

// Load loads configuration from file and environment variables. An empty
// path or a missing file falls back to defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("HOGBY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	return decode(v)
}

// Default returns the built-in configuration. Environment variables and
// config files are not consulted.
func Default() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// 5 km in 18:30 on a 400 m track
	v.SetDefault("race.distance", 5000)
	v.SetDefault("race.unit", pacing.Meters)
	v.SetDefault("race.target_time", "18:30")
	v.SetDefault("race.lap_distance", 400)
	v.SetDefault("race.split_interval", 400)

	v.SetDefault("runner.target_lap_time", 90)

	v.SetDefault("display.tick_interval", "50ms")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.file", "hogby-pace.log")

	v.SetDefault("export.directory", ".")
	v.SetDefault("export.format", "csv")
}

// validate validates the configuration
func validate(cfg *Config) error {
	if cfg.Display.TickInterval <= 0 {
		return fmt.Errorf("display.tick_interval must be positive, got %s", cfg.Display.TickInterval)
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging.level %q", cfg.Logging.Level)
	}

	switch cfg.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("unknown logging.format %q", cfg.Logging.Format)
	}

	switch cfg.Export.Format {
	case "csv", "json", "yaml":
	default:
		return fmt.Errorf("unknown export.format %q", cfg.Export.Format)
	}

	switch cfg.Race.Unit {
	case pacing.Meters, pacing.Kilometers, pacing.Miles:
	default:
		return fmt.Errorf("unknown race.unit %q", cfg.Race.Unit)
	}

	return nil
}
