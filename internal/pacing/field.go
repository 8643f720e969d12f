package pacing

import (
	"math"
	"strconv"
	"strings"
)

// Field is a numeric form input that may be left blank.
type Field struct {
	value float64
	set   bool
}

// NewField returns a field holding v.
func NewField(v float64) Field {
	return Field{value: v, set: true}
}

// ParseField reads an entry box. Blank or unparsable text gives a blank field.
func ParseField(text string) Field {
	text = strings.TrimSpace(text)
	if text == "" {
		return Field{}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Field{}
	}
	return NewField(v)
}

// IsBlank reports whether the field was left empty.
func (f Field) IsBlank() bool { return !f.set }

// Value returns the field value, zero when blank.
func (f Field) Value() float64 {
	if !f.set {
		return 0
	}
	return f.value
}

// String renders the field back for an entry box.
func (f Field) String() string {
	if !f.set {
		return ""
	}
	return strconv.FormatFloat(f.value, 'f', -1, 64)
}

// nonZero substitutes 1 for a zero divisor.
func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
