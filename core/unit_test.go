package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUnitAcceptsKnownUnits(t *testing.T) {
	for _, name := range []string{"nanoseconds", "microseconds", "milliseconds", "seconds", "minutes", "hours"} {
		u, err := ParseUnit(name)
		assert.NoError(t, err)
		assert.Equal(t, Unit(name), u)
	}
}

func TestParseUnitRejectsUnknownUnit(t *testing.T) {
	_, err := ParseUnit("fortnights")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown time unit")
}
