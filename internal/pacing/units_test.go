package pacing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMeters(t *testing.T) {
	assert.InDelta(t, 1609.34, ToMeters(1, Miles), 1e-9)
	assert.Equal(t, 5000.0, ToMeters(5, Kilometers))
	assert.Equal(t, 400.0, ToMeters(400, Meters))
	assert.Equal(t, 5.0, ToMeters(5, "furlongs"))
	assert.Equal(t, 5.0, ToMeters(5, ""))
}
