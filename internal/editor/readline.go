package editor

import (
	"strings"

	"github.com/Phippsaurus/ppsh/internal/suggest"
)

const DefaultPrompt = "> "

// Readline is the line-editing model. The buffer is kept as runes so the
// cursor counts characters, not bytes. Invariant: 0 <= cursor <= len(buf).
type Readline struct {
	buf        []rune
	cursor     int
	suggestion string // empty when no candidate matches
	index      *suggest.Index
	prompt     string
}

var _ Editor = (*Readline)(nil)

type Option func(*Readline)

// WithPrompt sets the marker drawn in front of the buffer.
func WithPrompt(p string) Option {
	return func(r *Readline) { r.prompt = p }
}

// NewReadline returns an empty model that completes against index. The index
// is shared, not copied; it may be nil.
func NewReadline(index *suggest.Index, opts ...Option) *Readline {
	r := &Readline{index: index, prompt: DefaultPrompt}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Readline) Buffer() string { return string(r.buf) }

func (r *Readline) Cursor() int { return r.cursor }

// Suggestion returns the active completion, if any. When present it always
// starts with the buffer.
func (r *Readline) Suggestion() (string, bool) {
	return r.suggestion, r.suggestion != ""
}

// Apply is the update step.
func (r *Readline) Apply(k Key) (string, bool) {
	switch k.Kind {
	case KeySubmit:
		line := string(r.buf)
		r.buf = r.buf[:0]
		r.cursor = 0
		r.suggestion = ""
		return line, true
	case KeyRune:
		r.insert(k.Rune)
		r.updateSuggestion()
	case KeyLeft:
		if r.cursor > 0 {
			r.cursor--
		}
	case KeyRight:
		if r.cursor < len(r.buf) {
			r.cursor++
		}
	case KeyBackspace:
		if r.deleteBackward() {
			r.updateSuggestion()
		}
	}
	return "", false
}

// insert puts c at the cursor. At the end of the line this is a plain append.
func (r *Readline) insert(c rune) {
	if r.cursor == len(r.buf) {
		r.buf = append(r.buf, c)
	} else {
		r.buf = append(r.buf, 0)
		copy(r.buf[r.cursor+1:], r.buf[r.cursor:])
		r.buf[r.cursor] = c
	}
	r.cursor++
}

// deleteBackward removes the character before the cursor and reports whether
// the buffer changed.
func (r *Readline) deleteBackward() bool {
	if len(r.buf) == 0 || r.cursor == 0 {
		return false
	}
	if r.cursor == len(r.buf) {
		r.buf = r.buf[:len(r.buf)-1]
	} else {
		r.buf = append(r.buf[:r.cursor-1], r.buf[r.cursor:]...)
	}
	r.cursor--
	return true
}

// updateSuggestion keeps the current suggestion while it still extends the
// buffer and otherwise asks the index for the first candidate.
func (r *Readline) updateSuggestion() {
	line := string(r.buf)
	if line == "" {
		r.suggestion = ""
		return
	}
	if r.suggestion != "" && strings.HasPrefix(r.suggestion, line) {
		return
	}
	r.suggestion, _ = r.index.Lookup(line)
}
