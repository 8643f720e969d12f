package pacing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSplits5K(t *testing.T) {
	splits := GenerateSplits(5000, ParseDuration("18:30"), 400)
	require.Len(t, splits, 13)

	assert.Equal(t, 400.0, splits[0].Distance)
	assert.InDelta(t, 88.8, splits[0].Cumulative, 1e-9)
	assert.InDelta(t, 88.8, splits[0].Incremental, 1e-9)

	last := splits[12]
	assert.Equal(t, 5000.0, last.Distance)
	assert.InDelta(t, 1110, last.Cumulative, 1e-9)
	assert.InDelta(t, 44.4, last.Incremental, 1e-9)

	var sum float64
	for i, s := range splits {
		sum += s.Incremental
		if i > 0 {
			assert.Greater(t, s.Distance, splits[i-1].Distance)
		}
	}
	assert.InDelta(t, 1110, sum, 1e-9)
}

func TestGenerateSplitsExactMultiple(t *testing.T) {
	splits := GenerateSplits(10000, 2400, 1000)
	require.Len(t, splits, 10)
	for _, s := range splits {
		assert.InDelta(t, 240, s.Incremental, 1e-9)
	}
}

func TestGenerateSplitsMissingInput(t *testing.T) {
	tests := []struct {
		name                      string
		distance, target, interval float64
	}{
		{"zero distance", 0, 1110, 400},
		{"negative distance", -5, 1110, 400},
		{"zero target", 5000, 0, 400},
		{"zero interval", 5000, 1110, 0},
		{"blank fields", ParseField("").Value(), ParseDuration(""), ParseField(" ").Value()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			splits := GenerateSplits(tt.distance, tt.target, tt.interval)
			assert.NotNil(t, splits)
			assert.Empty(t, splits)
		})
	}
}

func TestPacePerKm(t *testing.T) {
	assert.InDelta(t, 222, PacePerKm(5000, 1110), 1e-9)
	assert.Equal(t, "3:42", FormatPacePerKm(5000, 1110))
	assert.Equal(t, "0:00", FormatPacePerKm(0, 1110))
	assert.Equal(t, "0:00", FormatPacePerKm(5000, 0))
	assert.Equal(t, 0.0, PacePerKm(0, 1110))
}

func TestPacePerMeterGuardsZeroDistance(t *testing.T) {
	assert.InDelta(t, 0.222, PacePerMeter(1110, 5000), 1e-12)
	assert.Equal(t, 1110.0, PacePerMeter(1110, 0))
}
