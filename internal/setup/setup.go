// Package setup bootstraps a local development environment: it checks the
// interpreter and git, creates a virtual environment, installs declared
// dependencies and pre-commit hooks, and prints next steps.
package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aivibes/devkit/internal/config"
	"github.com/aivibes/devkit/internal/git"
	"github.com/aivibes/devkit/internal/logger"
	"github.com/aivibes/devkit/internal/shell"
	"github.com/aivibes/devkit/internal/ui"

	"golang.org/x/mod/semver"
)

var (
	ErrInterpreterTooOld = errors.New("interpreter version too old")
	ErrGitMissing        = errors.New("git is not installed or not in PATH")
)

var versionRegex = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// Bootstrapper runs the setup steps against a project directory
type Bootstrapper struct {
	Out    io.Writer
	Styles *ui.Styles
	Runner shell.Runner
	// Dir is the absolute project root
	Dir    string
	GOOS   string
	Config config.SetupConfig
}

// Run executes every step in order, stopping at the first fatal failure
func (b *Bootstrapper) Run(ctx context.Context) error {
	fmt.Fprintln(b.Out, b.Styles.Header("🎯 Development Environment Setup"))

	if _, err := b.CheckInterpreter(ctx); err != nil {
		return err
	}

	if _, err := b.CheckGit(ctx); err != nil {
		fmt.Fprintln(b.Out, b.Styles.Tip("Please install Git and try again."))
		fmt.Fprintln(b.Out, "   Download from: https://git-scm.com/downloads")
		return err
	}

	pip, err := b.CreateVenv(ctx)
	if err != nil {
		return err
	}
	if err := b.InstallDependencies(ctx, pip); err != nil {
		return err
	}
	if err := b.InstallHooks(ctx); err != nil {
		return err
	}

	b.PrintTools()
	b.PrintNextSteps()
	return nil
}

// CheckInterpreter verifies the interpreter meets Config.MinVersion and returns its version
func (b *Bootstrapper) CheckInterpreter(ctx context.Context) (string, error) {
	out, err := b.Runner.Run(ctx, b.Config.Interpreter, "--version")
	if err != nil {
		fmt.Fprintln(b.Out, b.Styles.Fail("%s is not available: %v", b.Config.Interpreter, err))
		return "", fmt.Errorf("check %s: %w", b.Config.Interpreter, err)
	}

	version, ok := ParseVersion(out)
	if !ok {
		fmt.Fprintln(b.Out, b.Styles.Fail("Could not read %s version from %q", b.Config.Interpreter, out))
		return "", fmt.Errorf("unrecognized %s version output %q", b.Config.Interpreter, out)
	}

	if semver.Compare("v"+version, "v"+b.Config.MinVersion) < 0 {
		fmt.Fprintln(b.Out, b.Styles.Fail("%s %s or higher is required.", b.Config.Interpreter, b.Config.MinVersion))
		fmt.Fprintf(b.Out, "   Current version: %s\n", version)
		return version, fmt.Errorf("%w: %s < %s", ErrInterpreterTooOld, version, b.Config.MinVersion)
	}

	fmt.Fprintln(b.Out, b.Styles.OK("%s %s detected", b.Config.Interpreter, version))
	return version, nil
}

// ParseVersion extracts a MAJOR.MINOR.PATCH version from command output
func ParseVersion(output string) (string, bool) {
	m := versionRegex.FindStringSubmatch(output)
	if m == nil {
		return "", false
	}
	patch := m[3]
	if patch == "" {
		patch = "0"
	}
	return m[1] + "." + m[2] + "." + patch, true
}

// CheckGit verifies git is installed and returns its version line
func (b *Bootstrapper) CheckGit(ctx context.Context) (string, error) {
	out, err := b.Runner.Run(ctx, "git", "--version")
	if err != nil {
		var cmdErr *shell.CommandError
		if errors.As(err, &cmdErr) && cmdErr.NotFound() {
			fmt.Fprintln(b.Out, b.Styles.Fail("Git is not installed"))
		} else {
			fmt.Fprintln(b.Out, b.Styles.Fail("Git is not installed or not in PATH"))
		}
		return "", fmt.Errorf("%w: %v", ErrGitMissing, err)
	}

	fmt.Fprintln(b.Out, b.Styles.OK("%s", out))
	if !git.IsGitRepo(b.Dir) {
		fmt.Fprintln(b.Out, b.Styles.Tip("%s is not a git repository yet; run 'git init' before committing.", b.Dir))
	}
	return out, nil
}

// CreateVenv creates the virtual environment unless it exists and returns
// the path to its package installer
func (b *Bootstrapper) CreateVenv(ctx context.Context) (string, error) {
	venv := filepath.Join(b.Dir, b.Config.VenvDir)
	pip := b.venvPath("pip")

	if info, err := os.Stat(venv); err == nil && info.IsDir() {
		fmt.Fprintln(b.Out, "📁 Virtual environment already exists")
		return pip, nil
	}

	fmt.Fprintln(b.Out, "🐍 Creating virtual environment...")
	if _, err := b.Runner.Run(ctx, b.Config.Interpreter, "-m", "venv", b.Config.VenvDir); err != nil {
		fmt.Fprintln(b.Out, b.Styles.Fail("Error: %v", err))
		return "", fmt.Errorf("create virtual environment: %w", err)
	}

	fmt.Fprintln(b.Out, b.Styles.OK("Virtual environment created at: %s", venv))
	fmt.Fprintln(b.Out, b.Styles.Tip("To activate, run: %s", b.activateCommand()))
	return pip, nil
}

// InstallDependencies installs every requirements file that exists
func (b *Bootstrapper) InstallDependencies(ctx context.Context, pip string) error {
	log := logger.Get(ctx)

	for _, req := range b.Config.Requirements {
		if _, err := os.Stat(filepath.Join(b.Dir, req)); err != nil {
			fmt.Fprintln(b.Out, b.Styles.Warn("%s not found, skipping...", req))
			continue
		}

		fmt.Fprintf(b.Out, "📦 Installing dependencies from %s...\n", req)
		out, err := b.Runner.Run(ctx, pip, "install", "-r", req)
		b.printOutput(out)
		if err != nil {
			fmt.Fprintln(b.Out, b.Styles.Fail("Error: %v", err))
			return fmt.Errorf("install %s: %w", req, err)
		}
		log.Info("installed requirements", slog.String("file", req))
	}
	return nil
}

// InstallHooks installs pre-commit hooks when the project has a hook config
func (b *Bootstrapper) InstallHooks(ctx context.Context) error {
	path := filepath.Join(b.Dir, b.Config.PreCommitConfig)
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(b.Out, b.Styles.Warn("%s not found, skipping pre-commit setup", b.Config.PreCommitConfig))
		return nil
	}

	if hc, err := ParseHookConfig(data); err != nil {
		fmt.Fprintln(b.Out, b.Styles.Warn("%s could not be parsed: %v", b.Config.PreCommitConfig, err))
	} else {
		fmt.Fprintf(b.Out, "🔗 Setting up pre-commit hooks (%d repos, %d hooks)...\n", len(hc.Repos), hc.HookCount())
	}

	out, err := b.Runner.Run(ctx, "pre-commit", "install")
	b.printOutput(out)
	if err != nil {
		fmt.Fprintln(b.Out, b.Styles.Fail("Error: %v", err))
		return fmt.Errorf("install pre-commit hooks: %w", err)
	}

	fmt.Fprintln(b.Out, b.Styles.OK("Pre-commit hooks installed"))
	return nil
}

func (b *Bootstrapper) printOutput(out string) {
	if out == "" {
		return
	}
	for _, line := range strings.Split(out, "\n") {
		fmt.Fprintln(b.Out, b.Styles.Muted.Render("   "+line))
	}
}

func (b *Bootstrapper) venvPath(tool string) string {
	if b.GOOS == "windows" {
		return filepath.Join(b.Dir, b.Config.VenvDir, "Scripts", tool+".exe")
	}
	return filepath.Join(b.Dir, b.Config.VenvDir, "bin", tool)
}

func (b *Bootstrapper) activateCommand() string {
	if b.GOOS == "windows" {
		return b.Config.VenvDir + `\Scripts\activate`
	}
	return "source " + b.Config.VenvDir + "/bin/activate"
}
