// Package report prints the attribution status of recent commits.
package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aivibes/devkit/internal/attribution"
	"github.com/aivibes/devkit/internal/logger"
	"github.com/aivibes/devkit/internal/models"
	"github.com/aivibes/devkit/internal/ui"
)

// DefaultCount is how many commits a report looks at
const DefaultCount = 10

// Suggested attribution lines printed under a flagged commit
var suggestion = []string{
	"AI-Assistance: GitHub Copilot (code generation)",
	"Human-Contribution: Logic design, testing",
}

// Fetcher returns the most recent commits
type Fetcher func(ctx context.Context, count int) models.FetchResult

// Options configures a report run
type Options struct {
	Out        io.Writer
	Styles     *ui.Styles
	Classifier *attribution.Classifier
	Fetch      Fetcher
	Count      int
}

// Summary is the aggregate outcome of a run
type Summary struct {
	// Checked counts non-merge commits, including automated ones that are not listed
	Checked int
	// Issues counts commits that need attribution
	Issues int
	// Attributed counts commits with an AI mention and a marker
	Attributed int
	// Skipped counts commits left out of per-commit output
	Skipped int
	// Degraded is set when the history query failed
	Degraded bool
}

// Run fetches recent commits and prints a status line for each.
// Findings never produce an error: the check is advisory.
func Run(ctx context.Context, opts Options) Summary {
	log := logger.Get(ctx)
	out, s := opts.Out, opts.Styles
	count := opts.Count
	if count < 1 {
		count = DefaultCount
	}

	fmt.Fprintln(out, s.Header("🤖 Checking AI Attribution in Recent Commits"))

	res := opts.Fetch(ctx, count)
	sum := Summary{Degraded: res.Degraded()}

	if res.Degraded() {
		fmt.Fprintln(out, s.Fail("Could not read commit history: %v", res.Err))
	}
	if len(res.Commits) == 0 {
		fmt.Fprintln(out, s.Muted.Render("No commits found."))
	}

	for _, commit := range res.Commits {
		if !commit.IsMerge() {
			sum.Checked++
		}
		if opts.Classifier.Skip(commit) {
			sum.Skipped++
			continue
		}

		result := opts.Classifier.Classify(commit.FullMessage)
		printCommit(out, s, commit, result)

		switch result.Status() {
		case models.StatusNeedsAttribution:
			sum.Issues++
		case models.StatusAttributed:
			sum.Attributed++
		}
	}

	printSummary(out, s, sum)

	log.Debug("attribution report done",
		slog.Int("checked", sum.Checked),
		slog.Int("issues", sum.Issues),
		slog.Bool("degraded", sum.Degraded),
	)

	return sum
}

func printCommit(out io.Writer, s *ui.Styles, commit models.CommitRecord, result models.AttributionResult) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s %s\n", ui.IconCommit, s.Field("Commit", s.Hash.Render(commit.ShortHash())))
	fmt.Fprintf(out, "   %s\n", s.Field("Subject", commit.Subject))
	fmt.Fprintf(out, "   %s\n", s.CommitLine(result.Status()))

	if result.NeedsAttribution() {
		fmt.Fprintf(out, "   %s\n", s.Tip("Consider adding attribution like:"))
		for _, line := range suggestion {
			fmt.Fprintf(out, "      %s\n", s.Template.Render(line))
		}
	}
}

func printSummary(out io.Writer, s *ui.Styles, sum Summary) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s %s\n", ui.IconSummary, s.Label.Render("Summary:"))
	fmt.Fprintf(out, "   Commits checked: %d\n", sum.Checked)
	fmt.Fprintf(out, "   Attribution issues: %d\n", sum.Issues)
	fmt.Fprintln(out)

	if sum.Issues > 0 {
		fmt.Fprintln(out, s.Warn("Found %d commits that may need better AI attribution.", sum.Issues))
		fmt.Fprintln(out, "   Consider updating commit messages or adding attribution in future commits.")
		return
	}
	fmt.Fprintln(out, s.OK("All commits have appropriate AI attribution or no AI usage mentioned."))
}
