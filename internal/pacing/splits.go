package pacing

import "math"

// Checkpoint is one row of a split table. Times are in seconds.
type Checkpoint struct {
	Distance    float64 `json:"distance" yaml:"distance"`
	Cumulative  float64 `json:"cumulative" yaml:"cumulative"`
	Incremental float64 `json:"incremental" yaml:"incremental"`
}

// GenerateSplits lays out even-pace checkpoints every interval meters up to
// distance. The final checkpoint is clipped to distance, so it may cover a
// shorter stretch than the others.
//
// A non-positive distance, target or interval means there is not enough
// input yet and the table is empty.
func GenerateSplits(distance, targetSeconds, interval float64) []Checkpoint {
	if distance <= 0 || targetSeconds <= 0 || interval <= 0 {
		return []Checkpoint{}
	}

	pace := targetSeconds / distance
	count := int(math.Ceil(distance / interval))
	splits := make([]Checkpoint, 0, count)

	var prev float64
	for i := 1; i <= count; i++ {
		d := math.Min(float64(i)*interval, distance)
		cumulative := d * pace
		splits = append(splits, Checkpoint{
			Distance:    d,
			Cumulative:  cumulative,
			Incremental: cumulative - prev,
		})
		prev = cumulative
	}
	return splits
}

// PacePerMeter returns seconds per meter. A zero distance is treated as 1.
func PacePerMeter(targetSeconds, distance float64) float64 {
	return targetSeconds / nonZero(distance)
}

// PacePerKm returns the average seconds per kilometer, or 0 when distance or
// target is missing.
func PacePerKm(distance, targetSeconds float64) float64 {
	if distance <= 0 || targetSeconds <= 0 {
		return 0
	}
	return targetSeconds / distance * 1000
}

// FormatPacePerKm renders PacePerKm without centiseconds.
func FormatPacePerKm(distance, targetSeconds float64) string {
	if distance <= 0 || targetSeconds <= 0 {
		return "0:00"
	}
	return FormatDuration(PacePerKm(distance, targetSeconds), false)
}
