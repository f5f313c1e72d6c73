/*
Copyright © 2020 Chrono Contributors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"os"
	"os/exec"

	"chrono/core"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var printLaps bool

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run -- command [args]",
	Short: "Run a command and report its execution time",
	Long:  ``,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		unit, err := GetUnit()
		if err != nil {
			return err
		}

		code, err := runTimed(args, unit)
		if err != nil {
			return err
		}
		if code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

// runTimed runs the command under a stopwatch, reports the elapsed
// time, and returns the command's exit status so chrono can exit
// with it. An error is returned only when the command could not be
// run at all.
func runTimed(args []string, unit core.Unit) (int, error) {
	sw := core.StartNew()
	child := exec.Command(args[0], args[1:]...)
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr
	child.Env = os.Environ()
	runErr := child.Run()
	sw.Lap("command")
	sw.Stop()

	elapsed, err := sw.Elapsed(unit)
	if err != nil {
		return 0, err
	}

	if printLaps {
		for _, lap := range sw.Laps() {
			log.WithFields(log.Fields{"module": "run", "lap": lap.Name, "duration": lap.Duration}).Info("lap recorded")
		}
	}
	log.WithFields(log.Fields{"module": "run", "command": args[0], "elapsed": elapsed, "unit": string(unit)}).Infof("run: %s finished in %s", args[0], sw)

	if runErr != nil {
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			log.WithFields(log.Fields{"module": "run", "command": args[0], "exitCode": exitErr.ExitCode()}).Info("command exited with non-zero status")
			return exitErr.ExitCode(), nil
		}
		return 0, errors.Wrapf(runErr, "command %s failed", args[0])
	}
	return 0, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here you will define your flags and configuration settings.

	// Cobra supports Persistent Flags which will work for this command
	// and all subcommands, e.g.:
	// runCmd.PersistentFlags().String("foo", "", "A help for foo")

	// Cobra supports local flags which will only run when this command
	// is called directly, e.g.:
	// runCmd.Flags().BoolP("toggle", "t", false, "Help message for toggle")
	runCmd.Flags().BoolVar(&printLaps, "lap-output", false, "log each recorded lap")
}
