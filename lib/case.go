package lib

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
)

// CasePaths returns the input and expected-output paths for case number.
func CasePaths(testFolder string, number int) (string, string) {
	name := strconv.Itoa(number)
	return filepath.Join(testFolder, name+inputSuffix), filepath.Join(testFolder, name+outputSuffix)
}

// RunCase runs a single numbered case against solution. It never returns an
// error: every problem is reported through the result's status.
func RunCase(fsys FileSystem, testFolder string, number int, solution Solution) (result TestResult) {
	inFile, outFile := CasePaths(testFolder, number)

	result = TestResult{Case: number}
	defer func() {
		if p := recover(); p != nil {
			result.Status = StatusFailed
			result.Error = fmt.Sprintf("solution panicked: %v", p)
		}
	}()

	input, err := fsys.ReadFile(inFile)
	if err != nil {
		return SkippedTestResult(number, ReasonInputMissing)
	}
	text, n, err := parseInput(input)
	if err != nil {
		return ErrorTestResult(number, fmt.Errorf("Error reading %s: %w", inFile, err))
	}
	result.InputText = text
	result.InputN = n

	expected, err := fsys.ReadFile(outFile)
	if errors.Is(err, fs.ErrNotExist) {
		return SkippedTestResult(number, ReasonOutputMissing)
	}
	if err != nil {
		result.Status = StatusFailed
		result.Error = fmt.Sprintf("Error reading %s: %s", outFile, err)
		return result
	}
	result.Expected = trimTrailing(string(expected))

	answer, err := solution.Solve(text, n)
	if err != nil {
		result.Status = StatusFailed
		result.Error = err.Error()
		return result
	}
	result.Actual = trimTrailing(strconv.Itoa(answer))

	if result.Actual == result.Expected {
		result.Status = StatusPassed
	} else {
		result.Status = StatusFailed
	}
	return result
}

// parseInput reads the free-form first line and the integer token after it.
func parseInput(input []byte) (string, int, error) {
	reader := bufio.NewReader(bytes.NewReader(input))
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", 0, err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	// The integer is the next whitespace-delimited token, always base 10.
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanWords)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", 0, err
		}
		return "", 0, errors.New("missing integer on line 2")
	}
	n, err := strconv.Atoi(scanner.Text())
	if err != nil {
		return "", 0, fmt.Errorf("invalid integer on line 2: %w", err)
	}
	return line, n, nil
}

func trimTrailing(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
