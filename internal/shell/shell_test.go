package shell

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunnerCapturesStdout(t *testing.T) {
	r := NewExecRunner(t.TempDir(), time.Second)

	out, err := r.Run(context.Background(), "sh", "-c", "printf '  hello\\n'")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestExecRunnerReportsStderr(t *testing.T) {
	r := NewExecRunner("", time.Second)

	_, err := r.Run(context.Background(), "sh", "-c", "echo boom >&2; exit 3")
	require.Error(t, err)

	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, "boom", cmdErr.Output)
	assert.Contains(t, cmdErr.Command, "sh -c")
	assert.False(t, cmdErr.NotFound())
}

func TestExecRunnerMissingBinary(t *testing.T) {
	r := NewExecRunner("", time.Second)

	_, err := r.Run(context.Background(), "definitely-not-a-real-binary-xyz")
	require.Error(t, err)

	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.True(t, cmdErr.NotFound())
}

func TestExecRunnerTimeout(t *testing.T) {
	r := NewExecRunner("", 50*time.Millisecond)

	_, err := r.Run(context.Background(), "sleep", "5")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunnerFunc(t *testing.T) {
	var got []string
	r := RunnerFunc(func(_ context.Context, name string, args ...string) (string, error) {
		got = append([]string{name}, args...)
		return "ok", nil
	})

	out, err := r.Run(context.Background(), "git", "status")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, []string{"git", "status"}, got)
}
