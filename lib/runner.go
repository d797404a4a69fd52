package lib

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// ErrTestsFailed is returned by RunCommand when at least one discovered case did not pass.
var ErrTestsFailed = errors.New("tests failed")

// RunnerOptions represents options passed to the Runner.
type RunnerOptions struct {
	TestFolder string
	Verbose    bool
	JSONOutput bool
	DryRun     bool
}

// Runner runs every numbered case in a folder and displays the results.
type Runner struct {
	stderr io.Writer
	stdout io.Writer

	fs       FileSystem
	solution Solution
	options  RunnerOptions

	testResults []TestResult
}

// NewRunner constructs a new Runner reading cases from the real disk.
func NewRunner(
	stdout io.Writer,
	stderr io.Writer,
	solution Solution,
	options RunnerOptions,
) *Runner {
	return &Runner{
		stdout:   stdout,
		stderr:   stderr,
		fs:       OSFileSystem{},
		solution: solution,
		options:  options,
	}
}

// WithFileSystem replaces the filesystem cases are read from.
func (r *Runner) WithFileSystem(fsys FileSystem) *Runner {
	r.fs = fsys
	return r
}

// RunCommand is the public entrypoint of the Runner.
// It discovers cases, runs them, and displays the result.
func (r *Runner) RunCommand() error {
	if r.options.Verbose && !r.options.JSONOutput {
		fmt.Fprintln(r.stdout, Bold("--- Starting Tester ---"))
	}

	cases, err := DiscoverCases(r.fs, r.options.TestFolder)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintln(r.stderr, RedBold("Error: Test directory '%s' not found.", r.options.TestFolder))
		} else {
			fmt.Fprintln(r.stderr, RedBold("Error: %s", err))
		}
	}
	if len(cases) == 0 {
		if r.options.JSONOutput && r.options.DryRun {
			r.outputCasesJSON(cases)
		} else if r.options.JSONOutput {
			r.outputResultsJSON()
		} else {
			fmt.Fprintf(r.stdout, "No test cases found in '%s'.\n", r.options.TestFolder)
		}
		return nil
	}

	if r.options.DryRun {
		if r.options.JSONOutput {
			r.outputCasesJSON(cases)
		} else {
			fmt.Fprintf(r.stdout, "Found %d test cases in '%s':\n", len(cases), r.options.TestFolder)
			for _, number := range cases {
				fmt.Fprintf(r.stdout, "\t%d\n", number)
			}
		}
		return nil
	}

	r.runAllTests(cases)
	summary := Summarize(r.testResults)
	if r.options.JSONOutput {
		r.outputResultsJSON()
	} else {
		r.outputResults(summary)
	}
	if summary.AllPassed() {
		return nil
	}
	return fmt.Errorf("%w: passed %d out of %d", ErrTestsFailed, summary.Passed, summary.Total)
}

// Results returns the results of the last run.
func (r *Runner) Results() []TestResult {
	return r.testResults
}

func (r *Runner) runAllTests(cases []int) {
	for _, number := range cases {
		if r.options.Verbose && !r.options.JSONOutput {
			fmt.Fprintf(r.stdout, "Running test '%d'... ", number)
		}
		result := RunCase(r.fs, r.options.TestFolder, number, r.solution)
		r.printSingleTestResult(result)
		r.testResults = append(r.testResults, result)
	}
}

func (r *Runner) printSingleTestResult(result TestResult) {
	if r.options.JSONOutput {
		return
	}
	// Without the verbose trace the case label has not been printed yet.
	label := ""
	if !r.options.Verbose {
		label = fmt.Sprintf("Test '%d': ", result.Case)
	}

	switch result.Status {
	case StatusPassed:
		if r.options.Verbose {
			fmt.Fprintln(r.stdout, GreenBold("PASSED"))
		}
	case StatusSkipped:
		fmt.Fprintf(r.stdout, "%s%s\n", label, Bold("SKIPPED (%s)", result.Reason))
	case StatusFailed:
		if result.Error != "" {
			fmt.Fprintf(r.stdout, "%s%s\n", label, RedBold("FAILED"))
			fmt.Fprintf(r.stdout, "   - Error: %s\n", result.Error)
			return
		}
		if r.options.Verbose {
			fmt.Fprintln(r.stdout, RedBold("FAILED"))
			fmt.Fprintf(r.stdout, "   - Input          : text=%q, n=%d\n", result.InputText, result.InputN)
			fmt.Fprintf(r.stdout, "   - Expected output: %s\n", result.Expected)
			fmt.Fprintf(r.stdout, "   - Actual output  : %s\n", result.Actual)
		}
	}
}

func (r *Runner) outputResults(summary Summary) {
	if r.options.Verbose {
		fmt.Fprintln(r.stdout)
		fmt.Fprintln(r.stdout, Bold("--- Test Summary ---"))
	}
	summaryString := fmt.Sprintf("Passed %d out of %d tests.", summary.Passed, summary.Total)
	if summary.AllPassed() {
		fmt.Fprintln(r.stdout, Green(summaryString))
	} else {
		fmt.Fprintln(r.stderr, Red(summaryString))
	}
	if r.options.Verbose {
		fmt.Fprintln(r.stdout, Bold("--------------------"))
	}
}

func (r *Runner) outputResultsJSON() {
	// This is the only place where we need this struct, so anonymous struct seems appropriate.
	jsonOutputStruct := struct {
		Summary
		Results []TestResult `json:"results"`
	}{
		Summary: Summarize(r.testResults),
		Results: r.testResults,
	}
	if jsonOutputStruct.Results == nil {
		jsonOutputStruct.Results = []TestResult{}
	}

	jsonEncoder := json.NewEncoder(r.stdout)
	err := jsonEncoder.Encode(jsonOutputStruct)
	if err != nil {
		fmt.Fprintln(r.stderr, RedBold("Error trying to marshal JSON output"))
	}
}

func (r *Runner) outputCasesJSON(cases []int) {
	jsonOutputStruct := struct {
		TestFolder string `json:"testFolder"`
		Cases      []int  `json:"cases"`
	}{
		TestFolder: r.options.TestFolder,
		Cases:      cases,
	}

	err := json.NewEncoder(r.stdout).Encode(jsonOutputStruct)
	if err != nil {
		fmt.Fprintln(r.stderr, RedBold("Error trying to marshal JSON output"))
	}
}
