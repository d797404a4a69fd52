// Copyright © 2016 NAME HERE <EMAIL ADDRESS>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/d-kiselev/tester/lib"
)

// Flags from the command line are set in these variables
var testFolder string
var timeout time.Duration
var verbose bool
var jsonOutput bool
var dryRun bool
var noColor bool

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [flags] -- <solution> [args...]",
	Short: "Runs all test cases",
	Long: `Runs every <N>.in / <N>.out pair found in the test folder, in ascending
order of N. The solution command receives the text and the integer on two
lines of stdin and must print its integer answer on stdout.

Exits with 0 when all cases pass or none are found, 1 otherwise.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.NoColor = true
		}
		solution, err := lib.NewCommandSolution(args, timeout)
		if err != nil {
			return err
		}
		options := lib.RunnerOptions{
			TestFolder: testFolder,
			Verbose:    verbose,
			JSONOutput: jsonOutput,
			DryRun:     dryRun,
		}
		return runCommand(cmd.OutOrStdout(), cmd.ErrOrStderr(), solution, options)
	},
}

func init() {
	RootCmd.AddCommand(runCmd)
	runCmd.PersistentFlags().StringVar(&testFolder, "testfolder", "tests", "Folder containing the <N>.in / <N>.out files")
	runCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Timeout for each individual solution call")
	runCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print a trace line for every case")
	runCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output the results as JSON")
	runCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Only list the discovered cases")
	runCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func runCommand(stdout, stderr io.Writer, solution lib.Solution, options lib.RunnerOptions) error {
	return lib.NewRunner(stdout, stderr, solution, options).RunCommand()
}
