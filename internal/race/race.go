// Package race runs several runners against one master clock, each with
// its own lap target.
package race

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jimmitjoo/hogby-pace/internal/clock"
	"github.com/jimmitjoo/hogby-pace/internal/pacing"
)

var (
	ErrEmptyName        = errors.New("runner name is empty")
	ErrRosterFrozen     = errors.New("roster cannot change once the race has started")
	ErrUnknownRunner    = errors.New("unknown runner")
	ErrRunnerNotRunning = errors.New("runner is not running")
	ErrRaceRunning      = errors.New("race is already running")
	ErrNeedsReset       = errors.New("race has been run, reset it first")
)

// Snapshot is a copy of the race for display.
type Snapshot struct {
	Elapsed float64  `json:"elapsed" yaml:"elapsed"`
	Running bool     `json:"running" yaml:"running"`
	Runners []Runner `json:"runners" yaml:"runners"`
}

// Session is a multi-runner race. All running runners read the same master
// clock; runners keep insertion order.
type Session struct {
	mu      sync.Mutex
	master  *clock.Timer
	runners []*Runner
	logger  zerolog.Logger
}

// New creates an empty race. A nil clock uses the system clock.
func New(clk clock.Clock, logger zerolog.Logger) *Session {
	return &Session{
		master: clock.NewTimer(clk),
		logger: logger.With().Str("component", "race").Logger(),
	}
}

// pristine reports whether the race has neither started nor left time on
// the clock.
func (s *Session) pristine() bool {
	return !s.master.Running() && s.master.Elapsed() == 0
}

func (s *Session) find(id string) (int, *Runner) {
	for i, r := range s.runners {
		if r.ID == id {
			return i, r
		}
	}
	return -1, nil
}

// AddRunner enters a runner with a per-lap target in seconds.
func (s *Session) AddRunner(name string, targetLapTime float64) (Runner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return Runner{}, ErrEmptyName
	}
	if !s.pristine() {
		s.logger.Warn().Str("name", name).Msg("add runner rejected, race started")
		return Runner{}, ErrRosterFrozen
	}

	r := &Runner{
		ID:            uuid.NewString(),
		Name:          name,
		TargetLapTime: targetLapTime,
		Status:        StatusIdle,
		Laps:          []pacing.Lap{},
	}
	s.runners = append(s.runners, r)
	s.logger.Debug().Str("id", r.ID).Str("name", name).Float64("target", targetLapTime).Msg("runner added")
	return r.clone(), nil
}

// RemoveRunner takes a runner off the start list before the race.
func (s *Session) RemoveRunner(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.pristine() {
		s.logger.Warn().Str("id", id).Msg("remove runner rejected, race started")
		return ErrRosterFrozen
	}
	i, _ := s.find(id)
	if i < 0 {
		return ErrUnknownRunner
	}
	s.runners = append(s.runners[:i], s.runners[i+1:]...)
	s.logger.Debug().Str("id", id).Msg("runner removed")
	return nil
}

// Start starts the master clock and every runner with it.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.master.Running() {
		return ErrRaceRunning
	}
	if s.master.Elapsed() != 0 {
		return ErrNeedsReset
	}

	s.master.Start()
	now := s.master.Now()
	for _, r := range s.runners {
		started := now
		r.Status = StatusRunning
		r.StartedAt = &started
		r.EndedAt = nil
	}
	s.logger.Info().Int("runners", len(s.runners)).Msg("race started")
	return nil
}

// Stop freezes the master clock and finishes everyone still running.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.master.Stop() {
		return
	}
	now := s.master.Now()
	for _, r := range s.runners {
		if r.Status == StatusRunning {
			s.finish(r, now)
		}
	}
	s.logger.Info().Float64("elapsed", s.master.Elapsed()).Msg("race stopped")
}

// RecordLap closes a lap for one runner at the master clock value.
func (s *Session) RecordLap(id string) (pacing.Lap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, r := s.find(id)
	if r == nil {
		return pacing.Lap{}, ErrUnknownRunner
	}
	if r.Status != StatusRunning {
		s.logger.Warn().Str("id", id).Str("status", string(r.Status)).Msg("lap ignored")
		return pacing.Lap{}, ErrRunnerNotRunning
	}

	lap := r.recordLap(s.master.Tick())
	s.logger.Debug().
		Str("runner", r.Name).
		Int("lap", lap.Number).
		Float64("duration", lap.Duration).
		Float64("delta", lap.CumulativeDelta).
		Msg("lap recorded")
	return lap, nil
}

// FinishRunner finishes one runner while the race goes on.
func (s *Session) FinishRunner(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, r := s.find(id)
	if r == nil {
		return ErrUnknownRunner
	}
	if r.Status != StatusRunning {
		return ErrRunnerNotRunning
	}
	s.finish(r, s.master.Now())
	return nil
}

func (s *Session) finish(r *Runner, at time.Time) {
	r.Status = StatusFinished
	r.EndedAt = &at
	s.logger.Debug().Str("runner", r.Name).Int("laps", len(r.Laps)).Msg("runner finished")
}

// Reset stops and zeroes the master clock and puts every runner back to
// idle without laps. Names, ids and targets are kept. This throws away the
// race; callers confirm with the user first.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.master.Reset()
	for _, r := range s.runners {
		r.Status = StatusIdle
		r.StartedAt = nil
		r.EndedAt = nil
		r.Laps = []pacing.Lap{}
	}
	s.logger.Info().Int("runners", len(s.runners)).Msg("race reset")
}

// Tick refreshes the master clock. The display loop calls it every frame.
func (s *Session) Tick() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.master.Tick()
}

// Elapsed returns the master clock in seconds.
func (s *Session) Elapsed() float64 {
	return s.Tick()
}

// Running reports whether the race clock is running.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.master.Running()
}

// CanEditRoster reports whether runners may still be added or removed.
func (s *Session) CanEditRoster() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pristine()
}

// Runner returns a copy of one runner.
func (s *Session) Runner(id string) (Runner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, r := s.find(id)
	if r == nil {
		return Runner{}, ErrUnknownRunner
	}
	return r.clone(), nil
}

// Runners returns copies of all runners in entry order.
func (s *Session) Runners() []Runner {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cloneRunners()
}

// Snapshot copies the whole race at one master clock reading.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Elapsed: s.master.Tick(),
		Running: s.master.Running(),
		Runners: s.cloneRunners(),
	}
}

func (s *Session) cloneRunners() []Runner {
	out := make([]Runner, 0, len(s.runners))
	for _, r := range s.runners {
		out = append(out, r.clone())
	}
	return out
}
