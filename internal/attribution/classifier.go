// Package attribution classifies commit messages by AI-tool mentions and
// structured attribution markers.
//
// Matching is plain substring and regex containment, not whole-word: a term
// that appears inside an unrelated word still counts as a mention.
package attribution

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/aivibes/devkit/internal/models"
)

// Lexicon is the pair of term sets a Classifier matches against
type Lexicon struct {
	// AITerms are literal substrings naming or alluding to AI coding tools
	AITerms []string `toml:"ai_terms"`
	// Markers are regular expressions for structured attribution lines
	Markers []string `toml:"markers"`
}

// DefaultLexicon returns the built-in term sets
func DefaultLexicon() Lexicon {
	return Lexicon{
		AITerms: []string{
			"github copilot",
			"copilot",
			"chatgpt",
			"gpt-4",
			"gpt-3",
			"claude",
			"ai-assisted",
			"ai-generated",
			"ai assistance",
		},
		Markers: []string{
			`ai[- ]assistance:`,
			`ai[- ]generated:`,
			`copilot[- ]assisted:`,
			`human[- ]contribution:`,
			`ai[- ]review:`,
			`generated with`,
			`assisted by`,
		},
	}
}

// Classifier holds a compiled Lexicon. It is safe for concurrent use.
type Classifier struct {
	terms   []string
	markers []*regexp.Regexp
}

// New compiles lex into a Classifier
func New(lex Lexicon) (*Classifier, error) {
	c := &Classifier{
		terms:   make([]string, 0, len(lex.AITerms)),
		markers: make([]*regexp.Regexp, 0, len(lex.Markers)),
	}

	for _, term := range lex.AITerms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		c.terms = append(c.terms, term)
	}

	for _, pattern := range lex.Markers {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid attribution marker %q: %w", pattern, err)
		}
		c.markers = append(c.markers, re)
	}

	return c, nil
}

// MustDefault returns a Classifier for DefaultLexicon
func MustDefault() *Classifier {
	c, err := New(DefaultLexicon())
	if err != nil {
		panic(err)
	}
	return c
}

// Classify checks a full commit message
func (c *Classifier) Classify(message string) models.AttributionResult {
	lower := strings.ToLower(message)

	return models.AttributionResult{
		HasAIMention: slices.ContainsFunc(c.terms, func(term string) bool {
			return strings.Contains(lower, term)
		}),
		HasAttribution: slices.ContainsFunc(c.markers, func(re *regexp.Regexp) bool {
			return re.MatchString(lower)
		}),
	}
}

// Skip reports whether a commit is left out of per-commit reporting:
// merges and automated commits are not authored by hand.
func (c *Classifier) Skip(commit models.CommitRecord) bool {
	return commit.IsMerge() || commit.IsAutomated()
}
