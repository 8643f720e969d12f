package pacing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseField(t *testing.T) {
	f := ParseField("400")
	assert.False(t, f.IsBlank())
	assert.Equal(t, 400.0, f.Value())
	assert.Equal(t, "400", f.String())

	blank := ParseField("  ")
	assert.True(t, blank.IsBlank())
	assert.Equal(t, 0.0, blank.Value())
	assert.Equal(t, "", blank.String())

	assert.True(t, ParseField("4OO").IsBlank())
	assert.Equal(t, 12.5, ParseField("12.5").Value())
}
