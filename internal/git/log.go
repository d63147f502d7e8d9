package git

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aivibes/devkit/internal/logger"
	"github.com/aivibes/devkit/internal/models"
	"github.com/aivibes/devkit/internal/shell"
)

// recordSep terminates each commit in the log output so bodies keep their newlines
const recordSep = "\x1e"

// logFormat yields hash|subject|body per commit
const logFormat = "--pretty=format:%H|%s|%b%x1e"

// ErrInvalidCount is returned for a commit count below one
var ErrInvalidCount = errors.New("commit count must be positive")

// FetchRecent reads the last count commits, most recent first.
// It never fails outright: a query error is logged and returned inside the result.
func FetchRecent(ctx context.Context, runner shell.Runner, count int) models.FetchResult {
	log := logger.Get(ctx)

	if count < 1 {
		return models.FetchResult{Err: fmt.Errorf("%w: %d", ErrInvalidCount, count)}
	}

	output, err := runner.Run(ctx, "git", "log", fmt.Sprintf("-%d", count), logFormat)
	if err != nil {
		log.Warn("git log failed", slog.Any("err", err))
		return models.FetchResult{Err: fmt.Errorf("read commit history: %w", err)}
	}

	commits, skipped := ParseLog(output)
	if skipped > 0 {
		log.Warn("skipped malformed log records", slog.Int("count", skipped))
	}

	return models.FetchResult{Commits: commits, Skipped: skipped}
}

// ParseLog splits raw log output into commit records.
// It returns the parsed commits and the number of records skipped for lacking a delimiter.
func ParseLog(output string) ([]models.CommitRecord, int) {
	var commits []models.CommitRecord
	skipped := 0

	for _, rec := range strings.Split(output, recordSep) {
		rec = strings.Trim(rec, "\r\n")
		if strings.TrimSpace(rec) == "" {
			continue
		}

		commit, ok := ParseRecord(rec)
		if !ok {
			skipped++
			continue
		}
		commits = append(commits, commit)
	}

	return commits, skipped
}

// ParseRecord parses one hash|subject|body record.
// Only the first two delimiters split fields; the body may contain more.
func ParseRecord(rec string) (models.CommitRecord, bool) {
	if !strings.Contains(rec, "|") {
		return models.CommitRecord{}, false
	}

	parts := strings.SplitN(rec, "|", 3)
	body := ""
	if len(parts) > 2 {
		body = strings.TrimRight(parts[2], " \t\r\n")
	}

	return models.NewCommitRecord(parts[0], parts[1], body), true
}
