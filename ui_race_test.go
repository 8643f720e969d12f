package main

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimmitjoo/hogby-pace/internal/pacing"
)

func TestLapRowsShowCumulativeDelta(t *testing.T) {
	test.NewApp()

	laps := []pacing.Lap{
		{Number: 2, Cumulative: 181, Duration: 88, LapDelta: -2, CumulativeDelta: 1},
		{Number: 1, Cumulative: 93, Duration: 93, LapDelta: 3, CumulativeDelta: 3},
	}
	rows := newLapRows(laps)
	require.Len(t, rows.Objects, 2)

	tests := []struct {
		lap   string
		time  string
		delta string
	}{
		{"V2", "1:28.00", "+0:01.00"},
		{"V1", "1:33.00", "+0:03.00"},
	}
	for i, tt := range tests {
		row := rows.Objects[i].(*fyne.Container)
		assert.Equal(t, tt.lap, row.Objects[0].(*widget.Label).Text)
		assert.Equal(t, tt.time, row.Objects[1].(*widget.Label).Text)
		delta := row.Objects[2].(*canvas.Text)
		assert.Equal(t, tt.delta, delta.Text)
		assert.Equal(t, behindColor, delta.Color, "behind on total even when the lap was fast")
	}
}
