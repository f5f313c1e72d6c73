package core

import "time"

// Clock is the seam between the stopwatch and the host's
// monotonic time source. Production code uses the system
// clock; tests substitute a mock to make time deterministic.
type Clock interface {
	Now() time.Time
}

// systemClock reads time.Now(), which carries Go's monotonic
// clock reading on every supported platform.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock is the Clock used by default.
var SystemClock Clock = systemClock{}
