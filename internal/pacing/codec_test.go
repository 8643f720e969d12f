package pacing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"minutes and seconds", "18:30", 1110},
		{"hours", "1:02:05", 3725},
		{"seconds only", "45", 45},
		{"fractional seconds", "1:28.5", 88.5},
		{"trailing colon while typing", "18:", 1080},
		{"leading colon", ":30", 30},
		{"garbage segment", "x:30", 30},
		{"garbage hours", "x:01:00", 60},
		{"not a number", "abc", 0},
		{"empty", "", 0},
		{"too many segments", "1:2:3:4", 0},
		{"whitespace", " 5 ", 5},
		{"nan text", "NaN", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseDuration(tt.in), 1e-9)
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name      string
		seconds   float64
		subsecond bool
		want      string
	}{
		{"zero", 0, true, "0:00.00"},
		{"under a minute", 7.25, true, "0:07.25"},
		{"minutes", 65.5, true, "1:05.50"},
		{"hours pad minutes", 3725.5, true, "1:02:05.50"},
		{"double digit hours", 36000, true, "10:00:00.00"},
		{"no subsecond", 1110, false, "18:30"},
		{"truncates centiseconds", 59.999, true, "0:59.99"},
		{"negative", -1, true, Placeholder},
		{"nan", math.NaN(), true, Placeholder},
		{"infinite", math.Inf(1), false, Placeholder},
		{"largest renderable", MaxDuration, false, "277777777777:46:40"},
		{"too large", 1e300, true, Placeholder},
		{"just over the limit", MaxDuration * 2, true, Placeholder},
		{"parsed hundredths", 0.57, true, "0:00.57"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.seconds, tt.subsecond))
		})
	}
}

func TestFormatDurationIsStableThroughParse(t *testing.T) {
	values := []float64{0, 0.07, 0.29, 0.57, 0.575, 1.1, 1.15, 1.5, 2.01, 59.99, 88.8, 1110, 3725.5, 4000.25}
	for cs := 0; cs < 6000; cs++ {
		values = append(values, float64(cs)/100, float64(cs)*0.01+0.005)
	}
	for _, x := range values {
		once := FormatDuration(x, true)
		twice := FormatDuration(ParseDuration(once), true)
		assert.Equal(t, once, twice, "value %v", x)
	}
}

func TestFormatSignedDelta(t *testing.T) {
	assert.Equal(t, "+0:00.00", FormatSignedDelta(0))
	assert.Equal(t, "+0:12.25", FormatSignedDelta(12.25))
	assert.Equal(t, "-0:03.50", FormatSignedDelta(-3.5))
	assert.Equal(t, "-1:00:00.00", FormatSignedDelta(-3600))
}
