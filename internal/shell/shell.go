// Package shell runs external commands with a bounded timeout.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds every command unless the runner overrides it
const DefaultTimeout = 30 * time.Second

// Runner runs a command and returns its trimmed stdout
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// RunnerFunc adapts a function to the Runner interface
type RunnerFunc func(ctx context.Context, name string, args ...string) (string, error)

// Run calls f
func (f RunnerFunc) Run(ctx context.Context, name string, args ...string) (string, error) {
	return f(ctx, name, args...)
}

// ExecRunner runs commands as subprocesses
type ExecRunner struct {
	// Dir is the working directory, empty for the current one
	Dir string
	// Timeout caps each command, zero means DefaultTimeout
	Timeout time.Duration
}

// NewExecRunner creates an ExecRunner rooted at dir
func NewExecRunner(dir string, timeout time.Duration) *ExecRunner {
	return &ExecRunner{Dir: dir, Timeout: timeout}
}

// Run executes name with args and returns stdout with surrounding whitespace trimmed.
// Failures are returned as *CommandError carrying stderr.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		output := strings.TrimSpace(stderr.String())
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = ctx.Err()
			if output == "" {
				output = "timed out after " + timeout.String()
			}
		}
		return strings.TrimSpace(stdout.String()), &CommandError{
			Command: commandLine(name, args),
			Output:  output,
			Err:     err,
		}
	}

	return strings.TrimSpace(stdout.String()), nil
}

// CommandError provides context for external command failures
type CommandError struct {
	Command string
	Output  string
	Err     error
}

func (e *CommandError) Error() string {
	if e.Output != "" {
		return e.Command + ": " + e.Output
	}
	return e.Command + ": " + e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NotFound reports whether the command binary could not be located
func (e *CommandError) NotFound() bool {
	return errors.Is(e.Err, exec.ErrNotFound)
}

func commandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
