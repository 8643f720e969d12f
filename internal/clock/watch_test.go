package clock

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchTicksUntilStopped(t *testing.T) {
	var ticks atomic.Int32
	stop, err := Watch(time.Millisecond, func() { ticks.Add(1) })
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, time.Millisecond)

	stop()
	after := ticks.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, after, ticks.Load())

	stop()
}

func TestWatchRejectsZeroInterval(t *testing.T) {
	stop, err := Watch(0, func() {})
	assert.ErrorIs(t, err, ErrInterval)
	assert.Nil(t, stop)
}
