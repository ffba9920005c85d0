package editor

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Phippsaurus/ppsh/internal/ansi"
	"github.com/Phippsaurus/ppsh/internal/styles"
)

// Render writes the prompt, the buffer and the untyped tail of the suggestion,
// then steps the cursor back to its logical column. The caller positions the
// terminal cursor at the render anchor beforehand.
func (r *Readline) Render(w io.Writer) error {
	line := string(r.buf)

	var b strings.Builder
	b.WriteString(styles.Prompt.Render(r.prompt))
	b.WriteString(line)

	shown := line
	if r.suggestion != "" && strings.HasPrefix(r.suggestion, line) {
		if tail := r.suggestion[len(line):]; tail != "" {
			b.WriteString(styles.Suggestion.Render(tail))
		}
		shown = r.suggestion
	}

	// Columns, not runes: wide characters occupy two cells.
	back := runewidth.StringWidth(shown) - runewidth.StringWidth(string(r.buf[:r.cursor]))
	b.WriteString(ansi.CursorLeft(back))

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderLine writes the prompt followed by line verbatim.
func (r *Readline) RenderLine(w io.Writer, line string) error {
	_, err := io.WriteString(w, styles.Prompt.Render(r.prompt)+line)
	return err
}
