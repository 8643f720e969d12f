package pacing

// Lap is one recorded lap. Times are in seconds; deltas are positive when
// behind target.
type Lap struct {
	Number          int     `json:"lap" yaml:"lap"`
	Cumulative      float64 `json:"cumulative" yaml:"cumulative"`
	Duration        float64 `json:"duration" yaml:"duration"`
	LapDelta        float64 `json:"lapDelta" yaml:"lapDelta"`
	CumulativeDelta float64 `json:"cumulativeDelta" yaml:"cumulativeDelta"`
}

// Expectation returns the target cumulative time after lap n.
type Expectation func(n int) float64

// FixedLapTarget expects every lap to take target seconds.
func FixedLapTarget(target float64) Expectation {
	return func(n int) float64 { return float64(n) * target }
}

// DistanceTarget expects lap n to end at n*lapDistance meters run at
// pacePerMeter.
func DistanceTarget(lapDistance, pacePerMeter float64) Expectation {
	return func(n int) float64 { return float64(n) * lapDistance * pacePerMeter }
}

// NewLap builds the lap ending at elapsed. prior is newest first.
func NewLap(prior []Lap, elapsed, lapTarget float64, expect Expectation) Lap {
	n := len(prior) + 1
	var prev float64
	if len(prior) > 0 {
		prev = prior[0].Cumulative
	}
	duration := elapsed - prev
	return Lap{
		Number:          n,
		Cumulative:      elapsed,
		Duration:        duration,
		LapDelta:        duration - lapTarget,
		CumulativeDelta: elapsed - expect(n),
	}
}

// PrependLap returns laps with l in front, leaving the input untouched.
func PrependLap(laps []Lap, l Lap) []Lap {
	out := make([]Lap, 0, len(laps)+1)
	out = append(out, l)
	return append(out, laps...)
}

// CopyLaps returns a copy of laps that is never nil.
func CopyLaps(laps []Lap) []Lap {
	out := make([]Lap, len(laps))
	copy(out, laps)
	return out
}
