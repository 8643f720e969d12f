package race

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimmitjoo/hogby-pace/internal/clock"
)

func newTestRace(t *testing.T) (*Session, *clock.Manual) {
	t.Helper()
	clk := clock.NewManual(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	return New(clk, zerolog.Nop()), clk
}

func addRunner(t *testing.T, s *Session, name string, target float64) Runner {
	t.Helper()
	r, err := s.AddRunner(name, target)
	require.NoError(t, err)
	return r
}

func TestAddRunner(t *testing.T) {
	s, _ := newTestRace(t)

	anna := addRunner(t, s, "Anna", 90)
	bo := addRunner(t, s, "Bo", 95)

	assert.NotEmpty(t, anna.ID)
	assert.NotEqual(t, anna.ID, bo.ID)
	assert.Equal(t, StatusIdle, anna.Status)
	assert.Empty(t, anna.Laps)

	_, err := s.AddRunner("   ", 90)
	assert.ErrorIs(t, err, ErrEmptyName)

	runners := s.Runners()
	require.Len(t, runners, 2)
	assert.Equal(t, "Anna", runners[0].Name)
	assert.Equal(t, "Bo", runners[1].Name)
}

func TestRosterFrozenOnceStarted(t *testing.T) {
	s, clk := newTestRace(t)
	anna := addRunner(t, s, "Anna", 90)
	require.NoError(t, s.Start())

	assert.False(t, s.CanEditRoster())
	assert.ErrorIs(t, s.RemoveRunner(anna.ID), ErrRosterFrozen)
	_, err := s.AddRunner("Late", 90)
	assert.ErrorIs(t, err, ErrRosterFrozen)
	assert.Len(t, s.Runners(), 1)

	clk.Advance(time.Second)
	s.Stop()
	assert.ErrorIs(t, s.RemoveRunner(anna.ID), ErrRosterFrozen, "clock is not at zero")
	assert.Len(t, s.Runners(), 1)
}

func TestRemoveRunnerBeforeStart(t *testing.T) {
	s, _ := newTestRace(t)
	anna := addRunner(t, s, "Anna", 90)
	addRunner(t, s, "Bo", 95)

	require.NoError(t, s.RemoveRunner(anna.ID))
	assert.ErrorIs(t, s.RemoveRunner(anna.ID), ErrUnknownRunner)

	runners := s.Runners()
	require.Len(t, runners, 1)
	assert.Equal(t, "Bo", runners[0].Name)
}

func TestLapsArePerRunnerOnSharedClock(t *testing.T) {
	s, clk := newTestRace(t)
	anna := addRunner(t, s, "Anna", 90)
	bo := addRunner(t, s, "Bo", 95)

	require.NoError(t, s.Start())
	clk.Advance(92 * time.Second)

	lap, err := s.RecordLap(anna.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, lap.Number)
	assert.InDelta(t, 2, lap.LapDelta, 1e-9)
	assert.InDelta(t, 2, lap.CumulativeDelta, 1e-9)

	snap := s.Snapshot()
	require.Len(t, snap.Runners, 2)
	assert.Len(t, snap.Runners[0].Laps, 1)
	assert.Empty(t, snap.Runners[1].Laps)
	assert.Equal(t, snap.Runners[0].DisplayTime(snap.Elapsed), snap.Runners[1].DisplayTime(snap.Elapsed))
	assert.InDelta(t, 92, snap.Elapsed, 1e-9)

	clk.Advance(88 * time.Second)
	lap, err = s.RecordLap(anna.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, lap.Number)
	assert.InDelta(t, 88, lap.Duration, 1e-9)
	assert.InDelta(t, 0, lap.CumulativeDelta, 1e-9)

	lap, err = s.RecordLap(bo.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, lap.Number)
	assert.InDelta(t, 180-95, lap.LapDelta, 1e-9)
}

func TestStartRejections(t *testing.T) {
	s, clk := newTestRace(t)
	addRunner(t, s, "Anna", 90)

	require.NoError(t, s.Start())
	assert.ErrorIs(t, s.Start(), ErrRaceRunning)

	clk.Advance(10 * time.Second)
	s.Stop()
	assert.ErrorIs(t, s.Start(), ErrNeedsReset)

	s.Reset()
	assert.NoError(t, s.Start())
}

func TestStopFinishesRunningRunners(t *testing.T) {
	s, clk := newTestRace(t)
	anna := addRunner(t, s, "Anna", 90)
	bo := addRunner(t, s, "Bo", 95)

	require.NoError(t, s.Start())
	clk.Advance(60 * time.Second)
	require.NoError(t, s.FinishRunner(bo.ID))
	assert.ErrorIs(t, s.FinishRunner(bo.ID), ErrRunnerNotRunning)
	assert.True(t, s.Running(), "one runner finishing does not stop the race")

	_, err := s.RecordLap(bo.ID)
	assert.ErrorIs(t, err, ErrRunnerNotRunning)

	clk.Advance(30 * time.Second)
	s.Stop()
	s.Stop()

	a, err := s.Runner(anna.ID)
	require.NoError(t, err)
	b, err := s.Runner(bo.ID)
	require.NoError(t, err)

	assert.Equal(t, StatusFinished, a.Status)
	assert.Equal(t, StatusFinished, b.Status)
	require.NotNil(t, a.EndedAt)
	require.NotNil(t, b.EndedAt)
	assert.Equal(t, 30*time.Second, a.EndedAt.Sub(*b.EndedAt))
	assert.False(t, s.Running())

	clk.Advance(time.Minute)
	assert.InDelta(t, 90, s.Elapsed(), 1e-9)
}

func TestResetKeepsRunnerIdentity(t *testing.T) {
	s, clk := newTestRace(t)
	anna := addRunner(t, s, "Anna", 90)

	require.NoError(t, s.Start())
	clk.Advance(95 * time.Second)
	_, err := s.RecordLap(anna.ID)
	require.NoError(t, err)
	s.Stop()

	s.Reset()

	assert.Equal(t, 0.0, s.Elapsed())
	assert.False(t, s.Running())
	assert.True(t, s.CanEditRoster())

	r, err := s.Runner(anna.ID)
	require.NoError(t, err)
	assert.Equal(t, anna.ID, r.ID)
	assert.Equal(t, "Anna", r.Name)
	assert.Equal(t, 90.0, r.TargetLapTime)
	assert.Equal(t, StatusIdle, r.Status)
	assert.Nil(t, r.StartedAt)
	assert.Nil(t, r.EndedAt)
	assert.Empty(t, r.Laps)
}

func TestUnknownRunner(t *testing.T) {
	s, _ := newTestRace(t)
	_, err := s.RecordLap("nope")
	assert.ErrorIs(t, err, ErrUnknownRunner)
	assert.ErrorIs(t, s.FinishRunner("nope"), ErrUnknownRunner)
	_, err = s.Runner("nope")
	assert.ErrorIs(t, err, ErrUnknownRunner)
}

func TestRunnerDisplay(t *testing.T) {
	r := Runner{TargetLapTime: 90, Status: StatusRunning}
	assert.Equal(t, 45.0, r.DisplayTime(45))
	assert.Equal(t, -45.0, r.TotalDelta(45), "single target before the first lap")

	r.recordLap(100)
	assert.Equal(t, 10.0, r.TotalDelta(150), "latest cumulative delta after a lap")

	r.Status = StatusFinished
	assert.Equal(t, 100.0, r.DisplayTime(150))

	none := Runner{Status: StatusFinished}
	assert.Equal(t, 0.0, none.DisplayTime(150))
}
