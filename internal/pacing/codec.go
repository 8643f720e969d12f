// Package pacing holds the race pacing arithmetic: time string parsing and
// formatting, distance conversion, split tables and lap deltas.
package pacing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Placeholder is shown for times that cannot be displayed.
const Placeholder = "--:--.--"

// MaxDuration is the largest number of seconds FormatDuration renders.
const MaxDuration = 1e15

// centiEpsilon absorbs binary rounding so that parsed "0.57" still counts
// as 57 centiseconds.
const centiEpsilon = 1e-6

// ParseDuration converts "H:MM:SS", "MM:SS" or "SS" into seconds.
//
// Input is usually a half-typed entry field, so it never fails: a segment
// that is empty or not a number counts as zero, and text with more than
// three segments is zero.
func ParseDuration(text string) float64 {
	parts := strings.Split(text, ":")
	switch len(parts) {
	case 3:
		return segment(parts[0])*3600 + segment(parts[1])*60 + segment(parts[2])
	case 2:
		return segment(parts[0])*60 + segment(parts[1])
	case 1:
		return segment(parts[0])
	}
	return 0
}

func segment(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FormatDuration renders seconds as [H:]M:SS[.cc].
//
// Hours are only shown when non-zero and minutes are only zero padded
// behind an hours segment. Centiseconds are truncated, not rounded.
// Values above MaxDuration render as Placeholder.
func FormatDuration(seconds float64, subsecond bool) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 || seconds > MaxDuration {
		return Placeholder
	}

	total := int64(math.Floor(seconds*100 + centiEpsilon))
	hrs := total / 360000
	mins := total / 6000 % 60
	secs := total / 100 % 60
	cs := total % 100

	var b strings.Builder
	if hrs > 0 {
		fmt.Fprintf(&b, "%d:%02d:", hrs, mins)
	} else {
		fmt.Fprintf(&b, "%d:", mins)
	}
	fmt.Fprintf(&b, "%02d", secs)
	if subsecond {
		fmt.Fprintf(&b, ".%02d", cs)
	}
	return b.String()
}

// FormatSignedDelta renders a delta with an explicit sign. Zero is "+".
// Positive means behind schedule.
func FormatSignedDelta(seconds float64) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
	}
	return sign + FormatDuration(math.Abs(seconds), true)
}
