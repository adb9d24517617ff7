package secondary

import "time"

// Clock supplies timestamps to the application layer. Injected so tests
// never depend on wall-clock time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by the wall clock.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
