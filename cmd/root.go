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
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/d-kiselev/tester/lib"
)

var version string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "tester",
	Short: "Runs a solution against numbered test cases",
	Long: `tester discovers <N>.in / <N>.out pairs in a folder, feeds each input
to a solution and compares its answer with the expected output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(v string) {
	version = v
	if err := RootCmd.Execute(); err != nil {
		// Failed cases have already been reported by the summary.
		if !errors.Is(err, lib.ErrTestsFailed) {
			fmt.Fprintln(os.Stderr, lib.RedBold("Error: %s", err))
		}
		os.Exit(1)
	}
}
