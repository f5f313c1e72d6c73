package cmd

import (
	"testing"

	"chrono/core"

	"github.com/stretchr/testify/assert"
)

func TestRunTimedReturnsZeroForSuccessfulCommand(t *testing.T) {
	code, err := runTimed([]string{"sh", "-c", "exit 0"}, core.Milliseconds)

	assert.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestRunTimedPropagatesChildExitStatus(t *testing.T) {
	code, err := runTimed([]string{"sh", "-c", "exit 5"}, core.Milliseconds)

	assert.NoError(t, err)
	assert.Equal(t, 5, code)
}

func TestRunTimedReportsCommandsThatCannotStart(t *testing.T) {
	_, err := runTimed([]string{"chrono-no-such-command"}, core.Milliseconds)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "chrono-no-such-command")
}
