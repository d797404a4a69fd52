package lib

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// waitDelay bounds how long a killed solution's children may keep its pipes open.
const waitDelay = time.Second

// Solution is the code under test: it maps a line of text and an integer to an integer.
type Solution interface {
	Solve(text string, n int) (int, error)
}

// SolutionFunc adapts an in-process function to the Solution interface.
type SolutionFunc func(text string, n int) int

func (f SolutionFunc) Solve(text string, n int) (int, error) {
	return f(text, n), nil
}

// CommandSolution runs an external program once per case. The program gets
// the text and the integer on two lines of stdin and must print the answer
// as a decimal integer on stdout.
type CommandSolution struct {
	Path    string
	Args    []string
	Timeout time.Duration
}

// NewCommandSolution builds a CommandSolution from a command line. The
// program is resolved up front so a mistyped path fails before any case runs.
func NewCommandSolution(commandLine []string, timeout time.Duration) (*CommandSolution, error) {
	if len(commandLine) == 0 {
		return nil, errors.New("no solution command given")
	}
	path, err := exec.LookPath(commandLine[0])
	if err != nil {
		return nil, fmt.Errorf("solution %s not found: %w", commandLine[0], err)
	}
	return &CommandSolution{
		Path:    path,
		Args:    commandLine[1:],
		Timeout: timeout,
	}, nil
}

func (s *CommandSolution) Solve(text string, n int) (int, error) {
	ctx := context.Background()
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	command := exec.CommandContext(ctx, s.Path, s.Args...)
	command.Stdin = strings.NewReader(fmt.Sprintf("%s\n%d\n", text, n))
	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr
	command.WaitDelay = waitDelay

	// Propagate timeout information to the solution, via its environment.
	env := os.Environ()
	env = append(env, fmt.Sprintf("TESTER_TIMEOUT=%v", s.Timeout.Seconds()))
	command.Env = env

	err := command.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return 0, fmt.Errorf("Killed by tester: Timed out after %v", s.Timeout)
	}
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return 0, fmt.Errorf("solution %s failed: %w: %s", s.Path, err, msg)
		}
		return 0, fmt.Errorf("solution %s failed: %w", s.Path, err)
	}

	out := strings.TrimSpace(stdout.String())
	answer, err := strconv.Atoi(out)
	if err != nil {
		return 0, fmt.Errorf("solution printed %q, expected an integer", out)
	}
	return answer, nil
}
