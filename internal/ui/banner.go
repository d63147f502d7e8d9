package ui

import "strings"

// RuleWidth is the width of the rule printed under headers
const RuleWidth = 50

// Header renders a title line with a rule of "=" underneath
func (s *Styles) Header(title string) string {
	return s.Title.Render(title) + "\n" + s.Rule.Render(strings.Repeat("=", RuleWidth))
}
