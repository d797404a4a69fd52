package lib

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultTimeout = 10 * time.Second

func shellSolution(script string, timeout time.Duration) *CommandSolution {
	return &CommandSolution{Path: "sh", Args: []string{"-c", script}, Timeout: timeout}
}

func TestNewCommandSolution(t *testing.T) {
	t.Parallel()

	shPath, err := exec.LookPath("sh")
	require.NoError(t, err)

	solution, err := NewCommandSolution([]string{"sh", "-c", "echo 1"}, defaultTimeout)
	require.NoError(t, err)
	assert.Equal(t, shPath, solution.Path)
	assert.Equal(t, []string{"-c", "echo 1"}, solution.Args)

	_, err = NewCommandSolution(nil, defaultTimeout)
	assert.Error(t, err)
}

func TestNewCommandSolution_MissingProgram(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "solution")
	_, err := NewCommandSolution([]string{missing}, defaultTimeout)
	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)

	notExecutable := filepath.Join(t.TempDir(), "solution.py")
	require.NoError(t, os.WriteFile(notExecutable, []byte("print(1)\n"), 0644))
	_, err = NewCommandSolution([]string{notExecutable}, defaultTimeout)
	assert.Error(t, err)
}

func TestCommandSolution_Success(t *testing.T) {
	t.Parallel()

	solution := shellSolution(`read text; read n; echo "$(( ${#text} * n ))"`, defaultTimeout)
	answer, err := solution.Solve("abcde", 5)
	require.NoError(t, err)
	assert.Equal(t, 25, answer)
}

func TestCommandSolution_SeesTimeout(t *testing.T) {
	t.Parallel()

	solution := shellSolution(`echo "${TESTER_TIMEOUT%.*}"`, defaultTimeout)
	answer, err := solution.Solve("abc", 1)
	require.NoError(t, err)
	assert.Equal(t, 10, answer)
}

func TestCommandSolution_NonZeroExit(t *testing.T) {
	t.Parallel()

	solution := shellSolution(`echo "bad input" >&2; exit 3`, defaultTimeout)
	_, err := solution.Solve("abc", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit status 3")
	assert.Contains(t, err.Error(), "bad input")
}

func TestCommandSolution_NotAnInteger(t *testing.T) {
	t.Parallel()

	solution := shellSolution(`echo twenty-five`, defaultTimeout)
	_, err := solution.Solve("abc", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"twenty-five"`)
}

func TestCommandSolution_Timeout(t *testing.T) {
	t.Parallel()

	solution := shellSolution(`exec sleep 5`, 100*time.Millisecond)
	_, err := solution.Solve("abc", 5)
	require.Error(t, err)
	assert.Equal(t, "Killed by tester: Timed out after 100ms", err.Error())
}

func TestSolutionFunc(t *testing.T) {
	t.Parallel()

	answer, err := squareOfN.Solve("abc", 5)
	require.NoError(t, err)
	assert.Equal(t, 25, answer)
}
