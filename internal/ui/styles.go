package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	ColorCyan       = lipgloss.Color("#00FFFF")
	ColorGreen      = lipgloss.Color("#00FF00")
	ColorYellow     = lipgloss.Color("#FFFF00")
	ColorRed        = lipgloss.Color("#FF0000")
	ColorMagenta    = lipgloss.Color("#FF00FF")
	ColorBlue       = lipgloss.Color("#5555FF")
	ColorOrange     = lipgloss.Color("#FFA500")
	ColorLightGreen = lipgloss.Color("#90EE90")
	ColorDarkGray   = lipgloss.Color("8")
)

// Styles are bound to a single output writer so color detection follows
// that writer rather than the process stdout
type Styles struct {
	Title    lipgloss.Style
	Rule     lipgloss.Style
	Label    lipgloss.Style
	Hash     lipgloss.Style
	Warning  lipgloss.Style
	Hint     lipgloss.Style
	Template lipgloss.Style
	Success  lipgloss.Style
	Info     lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style
}

// NewStyles builds styles for w. With noColor set, output is plain text
// even on a terminal.
func NewStyles(w io.Writer, noColor bool) *Styles {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Title:    r.NewStyle().Foreground(ColorCyan).Bold(true),
		Rule:     r.NewStyle().Foreground(ColorDarkGray),
		Label:    r.NewStyle().Bold(true),
		Hash:     r.NewStyle().Foreground(ColorMagenta),
		Warning:  r.NewStyle().Foreground(ColorYellow).Bold(true),
		Hint:     r.NewStyle().Foreground(ColorOrange),
		Template: r.NewStyle().Foreground(ColorLightGreen),
		Success:  r.NewStyle().Foreground(ColorGreen),
		Info:     r.NewStyle().Foreground(ColorBlue),
		Error:    r.NewStyle().Foreground(ColorRed).Bold(true),
		Muted:    r.NewStyle().Foreground(ColorDarkGray),
	}
}
