// Package stopwatch implements a single live timing session that records
// laps against a target race pace.
package stopwatch

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jimmitjoo/hogby-pace/internal/clock"
	"github.com/jimmitjoo/hogby-pace/internal/pacing"
)

var (
	// ErrNotRunning is returned when a lap is taken on a stopped watch.
	ErrNotRunning = errors.New("stopwatch is not running")
	// ErrRunning is returned when resetting a running watch.
	ErrRunning = errors.New("stopwatch is running")
)

// Target describes the race being paced. Distances are meters, time is
// seconds. Zero values are allowed and give degenerate but finite paces.
type Target struct {
	RaceDistance float64 `json:"raceDistance" yaml:"raceDistance"`
	LapDistance  float64 `json:"lapDistance" yaml:"lapDistance"`
	TargetTotal  float64 `json:"targetTotal" yaml:"targetTotal"`
}

// PacePerMeter returns the target seconds per meter.
func (t Target) PacePerMeter() float64 {
	return pacing.PacePerMeter(t.TargetTotal, t.RaceDistance)
}

// LapTarget returns the target time for one lap.
func (t Target) LapTarget() float64 {
	return t.PacePerMeter() * t.LapDistance
}

// Snapshot is a copy of the session state for display.
type Snapshot struct {
	Running bool         `json:"running" yaml:"running"`
	Elapsed float64      `json:"elapsed" yaml:"elapsed"`
	Target  Target       `json:"target" yaml:"target"`
	Laps    []pacing.Lap `json:"laps" yaml:"laps"`
}

// Session is a stopwatch with lap splits. Laps are kept newest first.
type Session struct {
	mu     sync.Mutex
	timer  *clock.Timer
	target Target
	laps   []pacing.Lap
	logger zerolog.Logger
}

// New creates an idle session. A nil clock uses the system clock.
func New(clk clock.Clock, target Target, logger zerolog.Logger) *Session {
	return &Session{
		timer:  clock.NewTimer(clk),
		target: target,
		logger: logger.With().Str("component", "stopwatch").Logger(),
	}
}

// Start runs the watch, continuing from the current elapsed time.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer.Start() {
		s.logger.Debug().Float64("elapsed", s.timer.Elapsed()).Msg("started")
	}
}

// Stop pauses the watch and keeps the elapsed time.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer.Stop() {
		s.logger.Debug().Float64("elapsed", s.timer.Elapsed()).Msg("stopped")
	}
}

// Toggle starts a stopped watch or stops a running one and reports whether
// it is now running.
func (s *Session) Toggle() bool {
	s.mu.Lock()
	running := s.timer.Running()
	s.mu.Unlock()

	if running {
		s.Stop()
	} else {
		s.Start()
	}
	return !running
}

// Running reports whether the watch is advancing.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer.Running()
}

// Tick refreshes the elapsed time. The display loop calls it every frame.
func (s *Session) Tick() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer.Tick()
}

// Elapsed returns the elapsed seconds.
func (s *Session) Elapsed() float64 {
	return s.Tick()
}

// Target returns the current target.
func (s *Session) Target() Target {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target
}

// SetTarget replaces the target. Laps already taken keep their deltas.
func (s *Session) SetTarget(t Target) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target = t
}

// RecordLap closes the current lap at the present elapsed time.
func (s *Session) RecordLap() (pacing.Lap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.timer.Running() {
		s.logger.Warn().Msg("lap ignored, stopwatch not running")
		return pacing.Lap{}, ErrNotRunning
	}

	elapsed := s.timer.Tick()
	lap := pacing.NewLap(s.laps, elapsed, s.target.LapTarget(),
		pacing.DistanceTarget(s.target.LapDistance, s.target.PacePerMeter()))
	s.laps = pacing.PrependLap(s.laps, lap)

	s.logger.Debug().
		Int("lap", lap.Number).
		Float64("duration", lap.Duration).
		Float64("delta", lap.CumulativeDelta).
		Msg("lap recorded")
	return lap, nil
}

// Reset clears elapsed time and laps. The watch must be stopped first.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer.Running() {
		s.logger.Warn().Msg("reset ignored, stopwatch running")
		return ErrRunning
	}
	s.timer.Reset()
	s.laps = nil
	s.logger.Info().Msg("reset")
	return nil
}

// Laps returns a copy of the laps, newest first.
func (s *Session) Laps() []pacing.Lap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pacing.CopyLaps(s.laps)
}

// CurrentLap returns the running time of the lap in progress.
func (s *Session) CurrentLap() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	elapsed := s.timer.Tick()
	if len(s.laps) == 0 {
		return elapsed
	}
	return elapsed - s.laps[0].Cumulative
}

// LastSplitDelta returns the cumulative delta at the latest lap, or 0.
func (s *Session) LastSplitDelta() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.laps) == 0 {
		return 0
	}
	return s.laps[0].CumulativeDelta
}

// PredictedFinish projects the finish time from the average pace over the
// completed laps. Before the first lap it is the target time.
func (s *Session) PredictedFinish() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.laps) == 0 {
		return s.target.TargetTotal
	}
	covered := float64(len(s.laps)) * s.target.LapDistance
	if covered == 0 {
		covered = 1
	}
	return s.laps[0].Cumulative / covered * s.target.RaceDistance
}

// Snapshot copies the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Running: s.timer.Running(),
		Elapsed: s.timer.Tick(),
		Target:  s.target,
		Laps:    pacing.CopyLaps(s.laps),
	}
}
