package core

import (
	"github.com/pkg/errors"
)

// Unit identifies a fixed-ratio time unit that elapsed time
// can be reported in.
type Unit string

const (
	Nanoseconds  Unit = "nanoseconds"
	Microseconds Unit = "microseconds"
	Milliseconds Unit = "milliseconds"
	Seconds      Unit = "seconds"
	Minutes      Unit = "minutes"
	Hours        Unit = "hours"
)

// nanosPerUnit maps each supported unit to its length in
// nanoseconds. Adding a new fixed-ratio unit is a matter of
// adding an entry here.
var nanosPerUnit = map[Unit]float64{
	Nanoseconds:  1,
	Microseconds: 1e3,
	Milliseconds: 1e6,
	Seconds:      1e9,
	Minutes:      60 * 1e9,
	Hours:        3600 * 1e9,
}

// ParseUnit validates a unit name supplied as user input.
func ParseUnit(name string) (Unit, error) {
	u := Unit(name)
	if _, ok := nanosPerUnit[u]; !ok {
		return "", errors.Errorf("unknown time unit %q", name)
	}
	return u, nil
}
