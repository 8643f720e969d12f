package race

import (
	"time"

	"github.com/jimmitjoo/hogby-pace/internal/pacing"
)

// Status is a runner's place in the race lifecycle.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusRunning  Status = "running"
	StatusFinished Status = "finished"
)

// Runner is one competitor. Laps are newest first.
type Runner struct {
	ID            string       `json:"id" yaml:"id"`
	Name          string       `json:"name" yaml:"name"`
	TargetLapTime float64      `json:"targetLapTime" yaml:"targetLapTime"`
	Status        Status       `json:"status" yaml:"status"`
	StartedAt     *time.Time   `json:"startedAt,omitempty" yaml:"startedAt,omitempty"`
	EndedAt       *time.Time   `json:"endedAt,omitempty" yaml:"endedAt,omitempty"`
	Laps          []pacing.Lap `json:"laps" yaml:"laps"`
}

// recordLap closes a lap at the master clock value.
func (r *Runner) recordLap(master float64) pacing.Lap {
	lap := pacing.NewLap(r.Laps, master, r.TargetLapTime, pacing.FixedLapTarget(r.TargetLapTime))
	r.Laps = pacing.PrependLap(r.Laps, lap)
	return lap
}

// DisplayTime is the clock shown on the runner's card: the last lap time
// once finished, the master clock otherwise.
func (r Runner) DisplayTime(master float64) float64 {
	if r.Status == StatusFinished {
		if len(r.Laps) == 0 {
			return 0
		}
		return r.Laps[0].Cumulative
	}
	return master
}

// TotalDelta is the overall delta shown on the runner's card. Before the
// first lap it compares the master clock with a single lap target; after
// that it is the cumulative delta of the latest lap.
func (r Runner) TotalDelta(master float64) float64 {
	if len(r.Laps) == 0 {
		return master - r.TargetLapTime
	}
	return r.Laps[0].CumulativeDelta
}

func (r Runner) clone() Runner {
	c := r
	c.Laps = pacing.CopyLaps(r.Laps)
	if r.StartedAt != nil {
		t := *r.StartedAt
		c.StartedAt = &t
	}
	if r.EndedAt != nil {
		t := *r.EndedAt
		c.EndedAt = &t
	}
	return c
}
