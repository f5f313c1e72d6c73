package core

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// Lap is a named split recorded while the stopwatch is running.
type Lap struct {
	Name     string
	Duration time.Duration
}

// Stopwatch measures elapsed time across one or more start/stop
// intervals. A fresh instance is stopped with zero accumulated
// time, equivalent to a reset one.
//
// A Stopwatch is not safe for concurrent use; callers sharing an
// instance across goroutines must serialize access.
type Stopwatch struct {
	clock       Clock
	running     bool
	accumulated time.Duration
	anchor      time.Time
	lapStart    time.Time
	laps        []Lap
}

// NewStopwatch returns a stopped stopwatch with zero accumulated
// time, driven by the system clock.
func NewStopwatch() *Stopwatch {
	return NewStopwatchWithClock(SystemClock)
}

// NewStopwatchWithClock is NewStopwatch with an injected time
// source.
func NewStopwatchWithClock(clock Clock) *Stopwatch {
	return &Stopwatch{clock: clock}
}

// StartNew returns a new stopwatch that is already running.
func StartNew() *Stopwatch {
	s := NewStopwatch()
	s.Start()
	return s
}

// Reset stops the stopwatch and discards all accumulated time,
// including any in-progress interval and recorded laps.
func (s *Stopwatch) Reset() {
	s.running = false
	s.accumulated = 0
	s.anchor = time.Time{}
	s.lapStart = time.Time{}
	s.laps = nil
}

// Start begins, or resumes, measuring elapsed time. Calling Start
// on a running stopwatch is a no-op.
func (s *Stopwatch) Start() {
	if s.running {
		return
	}
	now := s.clock.Now()
	// Back-date the anchor by the time accumulated so far, so that
	// now - anchor yields the cumulative total in a single
	// subtraction. Anchoring at now would discard the prior
	// intervals on resume.
	s.anchor = now.Add(-s.accumulated)
	s.lapStart = now
	s.running = true
}

// Stop ends the current interval, folding it into the accumulated
// total. Calling Stop on a stopped stopwatch is a no-op.
func (s *Stopwatch) Stop() {
	if !s.running {
		return
	}
	s.accumulated = s.clock.Now().Sub(s.anchor)
	s.running = false
}

// Restart resets the stopwatch and immediately starts a fresh
// interval anchored at the current instant.
func (s *Stopwatch) Restart() {
	s.Reset()
	s.Start()
}

// Lap records a named split covering the time since the previous
// lap, or since the current interval started, and returns it.
// Lap is a no-op while the stopwatch is stopped.
func (s *Stopwatch) Lap(name string) time.Duration {
	if !s.running {
		return 0
	}
	now := s.clock.Now()
	d := now.Sub(s.lapStart)
	s.laps = append(s.laps, Lap{name, d})
	s.lapStart = now
	return d
}

// Laps returns a copy of the splits recorded since the last
// reset.
func (s *Stopwatch) Laps() []Lap {
	laps := make([]Lap, len(s.laps))
	copy(laps, s.laps)
	return laps
}

// ElapsedDuration returns the total time measured so far. While
// running it includes the open interval; while stopped it is the
// value frozen by the last Stop.
func (s *Stopwatch) ElapsedDuration() time.Duration {
	if s.running {
		return s.clock.Now().Sub(s.anchor)
	}
	return s.accumulated
}

// Elapsed returns the total time measured so far, converted to
// the requested unit. Requesting an unrecognized unit is the one
// error condition in this package.
func (s *Stopwatch) Elapsed(unit Unit) (float64, error) {
	nanos, ok := nanosPerUnit[unit]
	if !ok {
		return 0, errors.Errorf("unknown time unit %q", string(unit))
	}
	return float64(s.ElapsedDuration().Nanoseconds()) / nanos, nil
}

// IsRunning reports whether the stopwatch is currently measuring
// an interval.
func (s *Stopwatch) IsRunning() bool {
	return s.running
}

// String renders the elapsed time in milliseconds to two decimal
// places, switching to seconds once the value reaches one second.
func (s *Stopwatch) String() string {
	ms := float64(s.ElapsedDuration().Nanoseconds()) / 1e6
	if ms >= 1000 {
		return fmt.Sprintf("%.2fs", ms/1000)
	}
	return fmt.Sprintf("%.2fms", ms)
}
