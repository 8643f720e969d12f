package main

import (
	"bytes"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimmitjoo/hogby-pace/internal/clock"
	"github.com/jimmitjoo/hogby-pace/internal/config"
)

func newTestState(t *testing.T) *AppState {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.Display.TickInterval = time.Millisecond
	cfg.Export.Directory = t.TempDir()
	return NewAppState(cfg, clock.NewManual(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)), zerolog.Nop())
}

func TestNewAppStateUsesRaceSettings(t *testing.T) {
	state := newTestState(t)

	target := state.stopwatch.Target()
	assert.Equal(t, 5000.0, target.RaceDistance)
	assert.Equal(t, 400.0, target.LapDistance)
	assert.Equal(t, 1110.0, target.TargetTotal)
	assert.False(t, state.race.Running())
}

func TestTickers(t *testing.T) {
	state := newTestState(t)
	var calls atomic.Int32

	require.NoError(t, state.StartTicker("a", func() { calls.Add(1) }))
	require.NoError(t, state.StartTicker("a", func() { t.Error("second ticker must not start") }))
	assert.True(t, state.HasTicker("a"))
	assert.Eventually(t, func() bool { return calls.Load() > 2 }, time.Second, time.Millisecond)

	state.StopTicker("a")
	assert.False(t, state.HasTicker("a"))
	stopped := calls.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, stopped, calls.Load())

	state.StopTicker("missing")
}

func TestStopAll(t *testing.T) {
	state := newTestState(t)
	require.NoError(t, state.StartTicker("a", func() {}))
	require.NoError(t, state.StartTicker("b", func() {}))

	state.StopAll()
	assert.False(t, state.HasTicker("a"))
	assert.False(t, state.HasTicker("b"))
}

func TestStartTickerRejectsBadInterval(t *testing.T) {
	state := newTestState(t)
	state.cfg.Display.TickInterval = 0
	assert.ErrorIs(t, state.StartTicker("a", func() {}), clock.ErrInterval)
	assert.False(t, state.HasTicker("a"))
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LoggingConfig
		want    string
		notWant string
	}{
		{name: "json info drops debug", cfg: config.LoggingConfig{Level: "info", Format: "json"}, want: `"message":"shown"`, notWant: "hidden"},
		{name: "debug keeps debug", cfg: config.LoggingConfig{Level: "debug", Format: "json"}, want: "hidden"},
		{name: "text format", cfg: config.LoggingConfig{Level: "info", Format: "text"}, want: "INF shown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := setupLogger(tt.cfg, &buf)
			l.Debug().Msg("hidden")
			l.Info().Msg("shown")
			assert.Contains(t, buf.String(), tt.want)
			if tt.notWant != "" {
				assert.NotContains(t, buf.String(), tt.notWant)
			}
		})
	}
}
