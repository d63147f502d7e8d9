package ui

import (
	"fmt"

	"github.com/aivibes/devkit/internal/models"
)

// Status icons shared by both tools
const (
	IconOK      = "✅"
	IconFail    = "❌"
	IconWarn    = "⚠️ "
	IconInfo    = "ℹ️ "
	IconHint    = "💡"
	IconCommit  = "📝"
	IconSummary = "📊"
)

// Field renders "label: value" with the label emphasized
func (s *Styles) Field(label, value string) string {
	return fmt.Sprintf("%s %s", s.Label.Render(label+":"), value)
}

// CommitLine renders the per-commit status line for an attribution status
func (s *Styles) CommitLine(status models.AttributionStatus) string {
	switch status {
	case models.StatusNeedsAttribution:
		return s.Warning.Render(IconWarn + " WARNING: Commit mentions AI tools but lacks proper attribution")
	case models.StatusAttributed:
		return s.Success.Render(IconOK + " Good: Proper AI attribution found")
	default:
		return s.Info.Render(IconInfo + " No AI assistance mentioned")
	}
}

// OK renders a success line
func (s *Styles) OK(format string, args ...any) string {
	return s.Success.Render(IconOK + " " + fmt.Sprintf(format, args...))
}

// Fail renders a failure line
func (s *Styles) Fail(format string, args ...any) string {
	return s.Error.Render(IconFail + " " + fmt.Sprintf(format, args...))
}

// Warn renders a warning line
func (s *Styles) Warn(format string, args ...any) string {
	return s.Warning.Render(IconWarn + " " + fmt.Sprintf(format, args...))
}

// Tip renders a hint line
func (s *Styles) Tip(format string, args ...any) string {
	return s.Hint.Render(IconHint + " " + fmt.Sprintf(format, args...))
}
