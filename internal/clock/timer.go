package clock

import "time"

// Timer accumulates elapsed time across start/stop cycles.
//
// Elapsed is always now minus origin while running. Every start rebases the
// origin to now minus the elapsed time so far, so pausing never loses or
// double counts time. Timer is not safe for concurrent use; owners guard it.
type Timer struct {
	clk     Clock
	origin  time.Time
	elapsed float64
	running bool
}

// NewTimer returns a stopped timer at zero. A nil clock means Real.
func NewTimer(clk Clock) *Timer {
	if clk == nil {
		clk = Real{}
	}
	return &Timer{clk: clk}
}

// Start resumes the timer. It reports false if it was already running.
func (t *Timer) Start() bool {
	if t.running {
		return false
	}
	now := t.clk.Now()
	t.origin = now.Add(-time.Duration(t.elapsed * float64(time.Second)))
	t.running = true
	return true
}

// Stop freezes the timer at its current value. It reports false if it was
// not running.
func (t *Timer) Stop() bool {
	if !t.running {
		return false
	}
	t.elapsed = t.read()
	t.running = false
	return true
}

// Tick recomputes and stores the elapsed value.
func (t *Timer) Tick() float64 {
	if t.running {
		t.elapsed = t.read()
	}
	return t.elapsed
}

// Elapsed returns the elapsed seconds as of now.
func (t *Timer) Elapsed() float64 {
	return t.Tick()
}

// Running reports whether the timer is advancing.
func (t *Timer) Running() bool { return t.running }

// Now returns the timer's clock reading.
func (t *Timer) Now() time.Time { return t.clk.Now() }

// Reset stops the timer and clears elapsed time and origin.
func (t *Timer) Reset() {
	t.running = false
	t.elapsed = 0
	t.origin = time.Time{}
}

func (t *Timer) read() float64 {
	return Seconds(t.clk.Now().Sub(t.origin))
}
