package attribution

import (
	"testing"

	"github.com/aivibes/devkit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	c := MustDefault()

	tests := []struct {
		name    string
		message string
		want    models.AttributionResult
	}{
		{
			name:    "mention without marker",
			message: "Used Copilot for this change",
			want:    models.AttributionResult{HasAIMention: true},
		},
		{
			name:    "mention with structured markers",
			message: "AI-Assistance: GitHub Copilot (code generation)\nHuman-Contribution: review",
			want:    models.AttributionResult{HasAIMention: true, HasAttribution: true},
		},
		{
			name:    "no mention",
			message: "Fix off-by-one in pager",
			want:    models.AttributionResult{},
		},
		{
			name:    "marker without mention",
			message: "Refactor parser\n\nAssisted by: pair programming session",
			want:    models.AttributionResult{HasAttribution: true},
		},
		{
			name:    "generated with phrase",
			message: "Add tests\n\nGenerated with Claude",
			want:    models.AttributionResult{HasAIMention: true, HasAttribution: true},
		},
		{
			name:    "substring inside unrelated word still matches",
			message: "Update copilots roster",
			want:    models.AttributionResult{HasAIMention: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.message)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	c := MustDefault()

	for _, msg := range []string{"Claude helped", "CLAUDE helped", "claude helped"} {
		got := c.Classify(msg)
		assert.True(t, got.HasAIMention, msg)
		assert.True(t, got.NeedsAttribution(), msg)
	}

	got := c.Classify("claude wrote this\nAI-REVIEW: checked by hand")
	assert.False(t, got.NeedsAttribution())
}

func TestClassifyWithoutMentionNeverNeedsAttribution(t *testing.T) {
	c := MustDefault()

	for _, msg := range []string{
		"",
		"Bump version",
		"Human-Contribution: everything",
		"ai review: none needed",
	} {
		got := c.Classify(msg)
		assert.False(t, got.HasAIMention, msg)
		assert.False(t, got.NeedsAttribution(), msg)
	}
}

func TestClassifyEveryMarkerSatisfiesEveryTerm(t *testing.T) {
	lex := DefaultLexicon()
	c := MustDefault()

	markers := []string{
		"AI-Assistance: yes",
		"ai assistance: yes",
		"AI-Generated: partly",
		"Copilot-Assisted: tests",
		"Human-Contribution: design",
		"AI Review: done",
		"generated with a tool",
		"assisted by a tool",
	}

	for _, term := range lex.AITerms {
		got := c.Classify("Change using " + term)
		assert.True(t, got.NeedsAttribution(), term)

		for _, marker := range markers {
			got := c.Classify("Change using " + term + "\n\n" + marker)
			assert.False(t, got.NeedsAttribution(), "%s + %s", term, marker)
		}
	}
}

func TestNewWithCustomLexicon(t *testing.T) {
	c, err := New(Lexicon{
		AITerms: []string{"  Cursor ", ""},
		Markers: []string{`^co-authored-by: .*\[bot\]`},
	})
	require.NoError(t, err)

	assert.True(t, c.Classify("Cursor autocomplete").NeedsAttribution())
	assert.False(t, c.Classify("Copilot is not in this lexicon").HasAIMention)
	assert.True(t, c.Classify("co-authored-by: helper[bot]\ncursor").HasAttribution)
}

func TestNewRejectsBadMarker(t *testing.T) {
	_, err := New(Lexicon{Markers: []string{"ai[assist"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ai[assist")
}

func TestSkip(t *testing.T) {
	c := MustDefault()

	assert.True(t, c.Skip(models.NewCommitRecord("a", "Merge branch 'main'", "")))
	assert.True(t, c.Skip(models.NewCommitRecord("a", "Automated dependency bump", "")))
	assert.True(t, c.Skip(models.NewCommitRecord("a", "chore: AUTOMATED release", "")))
	assert.False(t, c.Skip(models.NewCommitRecord("a", "Merged sort helpers", "")))
	assert.False(t, c.Skip(models.NewCommitRecord("a", "Fix bug", "")))
}
