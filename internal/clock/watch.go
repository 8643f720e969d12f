package clock

import (
	"errors"
	"sync"
	"time"
)

// ErrInterval is returned by Watch for a non-positive interval.
var ErrInterval = errors.New("tick interval must be positive")

// Watch calls fn every interval on its own goroutine until the returned
// stop function is called. stop blocks until the loop has exited; a tick
// that already started finishes first.
func Watch(interval time.Duration, fn func()) (func(), error) {
	if interval <= 0 {
		return nil, ErrInterval
	}

	quit := make(chan struct{})
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		defer close(done)

		for {
			select {
			case <-quit:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(quit)
			<-done
		})
	}, nil
}
