package notify

import "time"

// Clock abstracts wall time and one-shot timer scheduling so expiry
// behavior can be driven deterministically in tests.
type Clock interface {
	Now() time.Time
	// AfterFunc schedules fn to run after d on its own goroutine and
	// returns a handle that can cancel the pending call.
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a cancellable handle for a scheduled expiry.
type Timer interface {
	// Stop cancels the timer. It reports whether the call prevented
	// the function from running.
	Stop() bool
}

// systemClock is the real Clock backed by the time package.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
