package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func TestTimerPauseResume(t *testing.T) {
	clk := NewManual(epoch)
	tm := NewTimer(clk)

	assert.Equal(t, 0.0, tm.Elapsed())
	assert.True(t, tm.Start())
	assert.False(t, tm.Start())

	clk.Advance(10 * time.Second)
	assert.Equal(t, 10.0, tm.Elapsed())

	assert.True(t, tm.Stop())
	clk.Advance(time.Minute)
	assert.Equal(t, 10.0, tm.Elapsed(), "paused time must not count")

	tm.Start()
	clk.Advance(2500 * time.Millisecond)
	assert.InDelta(t, 12.5, tm.Tick(), 1e-9)
	assert.True(t, tm.Stop())
	assert.False(t, tm.Stop())
}

func TestTimerReset(t *testing.T) {
	clk := NewManual(epoch)
	tm := NewTimer(clk)
	tm.Start()
	clk.Advance(3 * time.Second)
	tm.Reset()

	assert.False(t, tm.Running())
	assert.Equal(t, 0.0, tm.Elapsed())

	tm.Start()
	clk.Advance(time.Second)
	assert.Equal(t, 1.0, tm.Elapsed())
}

func TestNewTimerDefaultsToRealClock(t *testing.T) {
	tm := NewTimer(nil)
	tm.Start()
	assert.GreaterOrEqual(t, tm.Elapsed(), 0.0)
}
