package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jimmitjoo/hogby-pace/internal/config"
)

var (
	appLogger  zerolog.Logger
	logFile    *os.File
	loggerOnce sync.Once
)

// setupLogger configures a logger writing to out based on configuration
func setupLogger(cfg config.LoggingConfig, out io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	switch cfg.Level {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	if cfg.Format == "text" {
		out = zerolog.ConsoleWriter{Out: out, NoColor: true}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func openLogFile(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// openLogger appends to the configured log file, or writes to stderr when
// the file cannot be opened.
func openLogger(cfg config.LoggingConfig) zerolog.Logger {
	var out io.Writer = os.Stderr
	file, err := openLogFile(cfg.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v, logging to stderr\n", err)
	} else {
		logFile = file
		out = file
	}
	return setupLogger(cfg, out)
}

// initLogger sets up the process logger. Only the first call has effect.
func initLogger(cfg config.LoggingConfig) zerolog.Logger {
	loggerOnce.Do(func() {
		appLogger = openLogger(cfg)
	})
	return appLogger
}

// getLogger returns the process logger, opening it with default settings
// if nothing has configured it yet.
func getLogger() zerolog.Logger {
	loggerOnce.Do(func() {
		defaults, err := config.Default()
		if err != nil {
			appLogger = zerolog.New(os.Stderr).With().Timestamp().Logger()
			appLogger.Error().Err(err).Msg("Failed to load default logging settings")
			return
		}
		appLogger = openLogger(defaults.Logging)
	})
	return appLogger
}

func closeLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
