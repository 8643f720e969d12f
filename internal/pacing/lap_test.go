package pacing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLapFixedTarget(t *testing.T) {
	expect := FixedLapTarget(90)

	first := NewLap(nil, 95, 90, expect)
	assert.Equal(t, Lap{Number: 1, Cumulative: 95, Duration: 95, LapDelta: 5, CumulativeDelta: 5}, first)

	laps := PrependLap(nil, first)
	second := NewLap(laps, 180, 90, expect)
	assert.Equal(t, 2, second.Number)
	assert.Equal(t, 85.0, second.Duration)
	assert.Equal(t, -5.0, second.LapDelta)
	assert.Equal(t, 0.0, second.CumulativeDelta)
}

func TestNewLapDistanceTarget(t *testing.T) {
	pace := PacePerMeter(1110, 5000)
	lap := NewLap(nil, 90, 400*pace, DistanceTarget(400, pace))
	assert.InDelta(t, 1.2, lap.LapDelta, 1e-9)
	assert.InDelta(t, 1.2, lap.CumulativeDelta, 1e-9)
}

func TestPrependLapKeepsNewestFirst(t *testing.T) {
	laps := PrependLap(nil, Lap{Number: 1})
	laps = PrependLap(laps, Lap{Number: 2})
	orig := laps
	laps = PrependLap(laps, Lap{Number: 3})

	assert.Equal(t, []int{3, 2, 1}, []int{laps[0].Number, laps[1].Number, laps[2].Number})
	assert.Len(t, orig, 2)
	assert.Equal(t, 2, orig[0].Number)
}
