package main

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

func initRepo(t *testing.T, messages ...string) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	when := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, msg := range messages {
		_, err := wt.Commit(msg, &gogit.CommitOptions{
			Author: &object.Signature{
				Name:  "Dev",
				Email: "dev@example.com",
				When:  when.Add(time.Duration(i) * time.Minute),
			},
			AllowEmptyCommits: true,
		})
		require.NoError(t, err)
	}
	return dir
}

func TestRunAgainstRepository(t *testing.T) {
	requireGit(t)
	dir := initRepo(t,
		"Initial commit",
		"Used Copilot for this change",
		"Add parser\n\nAI-Assistance: GitHub Copilot (code generation)\nHuman-Contribution: review",
		"Merge branch 'main'",
	)

	var stdout, stderr bytes.Buffer
	sum := run(context.Background(), &stdout, &stderr, dir)

	assert.False(t, sum.Degraded)
	assert.Equal(t, 3, sum.Checked)
	assert.Equal(t, 1, sum.Issues)
	assert.Equal(t, 1, sum.Attributed)

	out := stdout.String()
	assert.Contains(t, out, "Subject: Used Copilot for this change")
	assert.Contains(t, out, "Good: Proper AI attribution found")
	assert.NotContains(t, out, "Subject: Merge branch 'main'")
	assert.Contains(t, out, "Commits checked: 3")
	assert.Contains(t, out, "Attribution issues: 1")
}

func TestRunHonorsConfigCount(t *testing.T) {
	requireGit(t)
	dir := initRepo(t, "one", "two", "three")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".devkit.toml"), []byte("[log]\ncount = 2\n"), 0o644))

	var stdout, stderr bytes.Buffer
	sum := run(context.Background(), &stdout, &stderr, dir)

	assert.Equal(t, 2, sum.Checked)
}

func TestRunInvalidConfigFallsBack(t *testing.T) {
	requireGit(t)
	dir := initRepo(t, "one")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".devkit.toml"), []byte("[log]\ncount = -1\n"), 0o644))

	var stdout, stderr bytes.Buffer
	sum := run(context.Background(), &stdout, &stderr, dir)

	assert.Equal(t, 1, sum.Checked)
	assert.Contains(t, stderr.String(), "ignoring invalid config")
}

func TestRunOutsideRepository(t *testing.T) {
	var stdout, stderr bytes.Buffer
	sum := run(context.Background(), &stdout, &stderr, t.TempDir())

	assert.True(t, sum.Degraded)
	assert.Zero(t, sum.Checked)
	assert.Contains(t, stdout.String(), "Commits checked: 0")
	assert.Contains(t, stdout.String(), "Attribution issues: 0")
	assert.Contains(t, stderr.String(), "not inside a git repository")
}

func TestRootCmdRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"unexpected"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.Error(t, cmd.Execute())
}

func TestRootCmdHasNoFlagsOrSubcommands(t *testing.T) {
	cmd := newRootCmd()

	assert.False(t, cmd.Flags().HasFlags())
	assert.False(t, cmd.HasSubCommands())
	assert.Len(t, executeOptions(), 3)
}
