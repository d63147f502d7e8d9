package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/aivibes/devkit/internal/config"
	"github.com/aivibes/devkit/internal/git"
	"github.com/aivibes/devkit/internal/logger"
	"github.com/aivibes/devkit/internal/setup"
	"github.com/aivibes/devkit/internal/shell"
	"github.com/aivibes/devkit/internal/ui"

	"github.com/charmbracelet/fang"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// version is set via ldflags at build time
var version = "dev"

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "devsetup",
		Short:         "Bootstrap the local development environment",
		Long:          `Check prerequisites, create a virtual environment, install dependencies and pre-commit hooks.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), dir)
		},
	}
}

func run(ctx context.Context, stdout, stderr io.Writer, dir string) error {
	// The project may not be a repository yet; fall back to the working directory
	root, err := git.FindRepoRoot(dir)
	if err != nil {
		root = dir
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	noColor := cfg.NoColor() || termenv.NewOutput(stderr).EnvColorProfile() == termenv.Ascii
	log := logger.New(stderr, slog.LevelInfo, noColor)
	ctx = logger.Put(ctx, log)
	log.Debug("bootstrapping", slog.String("dir", root))

	b := &setup.Bootstrapper{
		Out:    stdout,
		Styles: ui.NewStyles(stdout, cfg.NoColor()),
		Runner: newRunner(root, cfg),
		Dir:    root,
		GOOS:   runtime.GOOS,
		Config: cfg.Setup,
	}
	return b.Run(ctx)
}

// newRunner uses setup.timeout rather than the short default meant for git queries
func newRunner(root string, cfg *config.Config) *shell.ExecRunner {
	return shell.NewExecRunner(root, cfg.SetupTimeout())
}
