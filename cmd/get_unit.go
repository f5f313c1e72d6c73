package cmd

import (
	"chrono/core"

	"github.com/spf13/viper"
)

// GetUnit resolves the reporting unit from the --unit flag, the
// config file, or the default, in that order.
func GetUnit() (core.Unit, error) {
	name := unitName
	if name == "" {
		name = viper.GetString("unit")
	}
	if name == "" {
		name = string(core.Milliseconds)
	}
	return core.ParseUnit(name)
}
