package main

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jimmitjoo/hogby-pace/internal/clock"
	"github.com/jimmitjoo/hogby-pace/internal/config"
	"github.com/jimmitjoo/hogby-pace/internal/pacing"
	"github.com/jimmitjoo/hogby-pace/internal/race"
	"github.com/jimmitjoo/hogby-pace/internal/services/export"
	"github.com/jimmitjoo/hogby-pace/internal/stopwatch"
)

// AppState holds the sessions shared by the window and its tickers.
type AppState struct {
	mu        sync.RWMutex
	tickers   map[string]func()
	cfg       *config.Config
	stopwatch *stopwatch.Session
	race      *race.Session
	exporter  *export.Service
	logger    zerolog.Logger
}

func NewAppState(cfg *config.Config, clk clock.Clock, logger zerolog.Logger) *AppState {
	return &AppState{
		tickers:   make(map[string]func()),
		cfg:       cfg,
		stopwatch: stopwatch.New(clk, stopwatchTarget(cfg.Race), logger),
		race:      race.New(clk, logger),
		exporter:  export.NewService(cfg.Export.Directory, logger),
		logger:    logger,
	}
}

// stopwatchTarget builds the initial stopwatch target from the race settings.
func stopwatchTarget(rc config.RaceConfig) stopwatch.Target {
	return stopwatch.Target{
		RaceDistance: rc.DistanceMeters(),
		LapDistance:  rc.LapDistance,
		TargetTotal:  pacing.ParseDuration(rc.TargetTime),
	}
}

// StartTicker calls fn every display tick until StopTicker(name). Starting
// a ticker that is already running does nothing.
func (s *AppState) StartTicker(name string, fn func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tickers[name]; exists {
		return nil
	}
	stop, err := clock.Watch(s.cfg.Display.TickInterval, fn)
	if err != nil {
		return fmt.Errorf("failed to start %s ticker: %w", name, err)
	}
	s.tickers[name] = stop
	s.logger.Debug().Str("ticker", name).Msg("ticker started")
	return nil
}

// StopTicker stops a ticker and waits for its goroutine to exit.
func (s *AppState) StopTicker(name string) {
	s.mu.Lock()
	stop, exists := s.tickers[name]
	delete(s.tickers, name)
	s.mu.Unlock()

	if exists {
		stop()
		s.logger.Debug().Str("ticker", name).Msg("ticker stopped")
	}
}

// HasTicker reports whether a ticker is running.
func (s *AppState) HasTicker(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.tickers[name]
	return exists
}

// StopAll stops every ticker. Called when the window closes.
func (s *AppState) StopAll() {
	s.mu.Lock()
	tickers := s.tickers
	s.tickers = make(map[string]func())
	s.mu.Unlock()

	for _, stop := range tickers {
		stop()
	}
}
