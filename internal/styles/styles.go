// Package styles provides Lip Gloss styles for the prompt line and command output.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Plain ANSI palette indices. Adaptive colors are avoided on purpose: resolving
// them queries the terminal background, and in raw mode the reply would arrive
// on the key stream.
var (
	PromptColor     = lipgloss.Color("10") // light green
	SuggestionColor = lipgloss.Color("6")  // cyan
	ErrorColor      = lipgloss.Color("9")  // light red
)

var (
	// Prompt renders the prompt marker.
	Prompt = lipgloss.NewStyle().
		Foreground(PromptColor).
		TabWidth(lipgloss.NoTabConversion)

	// Suggestion renders the completion tail drawn after the buffer.
	Suggestion = lipgloss.NewStyle().
			Foreground(SuggestionColor).
			TabWidth(lipgloss.NoTabConversion)

	// Error renders captured stderr and inline error notices. Tabs are kept
	// so tab-aligned diagnostics line up like stdout does.
	Error = lipgloss.NewStyle().
		Foreground(ErrorColor).
		TabWidth(lipgloss.NoTabConversion)
)

// DisableColor switches the default renderer to the ASCII profile, so every
// style renders its text unchanged.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// RenderLines styles each line of s separately and joins them with sep.
// Lip Gloss pads multi-line blocks to a common width, which would leave
// trailing blanks in terminal output.
func RenderLines(style lipgloss.Style, s, sep string) string {
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		ln = strings.TrimSuffix(ln, "\r")
		if ln == "" {
			lines[i] = ln
			continue
		}
		lines[i] = style.Render(ln)
	}
	return strings.Join(lines, sep)
}
