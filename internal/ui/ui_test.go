package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aivibes/devkit/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestNonTerminalWriterRendersPlainText(t *testing.T) {
	s := NewStyles(&bytes.Buffer{}, false)

	got := s.Header("Title")
	assert.Equal(t, "Title\n"+strings.Repeat("=", RuleWidth), got)
	assert.NotContains(t, got, "\x1b[")
}

func TestCommitLine(t *testing.T) {
	s := NewStyles(&bytes.Buffer{}, true)

	assert.Contains(t, s.CommitLine(models.StatusNeedsAttribution), "WARNING")
	assert.Contains(t, s.CommitLine(models.StatusAttributed), "Proper AI attribution found")
	assert.Contains(t, s.CommitLine(models.StatusNoMention), "No AI assistance mentioned")
}

func TestField(t *testing.T) {
	s := NewStyles(&bytes.Buffer{}, true)
	assert.Equal(t, "Subject: Fix bug", s.Field("Subject", "Fix bug"))
}
