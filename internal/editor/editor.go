// Package editor implements the single-line input model of the shell: the
// buffer, its cursor and the inline completion, together with the update and
// render steps that drive it.
package editor

import "io"

// Editor is the model half of the read-eval loop. Apply folds one key event
// into the model and reports a finished line on submit; Render draws the
// current state at the terminal cursor. RenderLine draws a submitted line as
// it was typed, without a suggestion, so scrollback shows what actually ran.
type Editor interface {
	Apply(Key) (line string, submitted bool)
	Render(w io.Writer) error
	RenderLine(w io.Writer, line string) error
}
