package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Phippsaurus/ppsh/internal/ansi"
	"github.com/Phippsaurus/ppsh/internal/editor"
	"github.com/Phippsaurus/ppsh/internal/process"
	"github.com/Phippsaurus/ppsh/internal/styles"
)

// Display is the buffered terminal output. Nothing reaches the screen until Flush.
type Display interface {
	io.Writer
	Flush() error
}

type repl struct {
	ed     editor.Editor
	out    Display
	runner process.Runner
	strict bool
}

// RunREPL drives ed from keys until an interrupt or the end of input.
//
// The cursor position saved before each render is the anchor: a plain edit
// returns to it, erases everything below and redraws, while a submitted line
// is redrawn without its suggestion, prints its output and re-anchors on the following fresh line so the output
// stays on screen. Output is flushed once per key.
func RunREPL(ctx context.Context, ed editor.Editor, keys KeySource, out Display, runner process.Runner, opts Options) error {
	l := &repl{ed: ed, out: out, runner: runner, strict: opts.StrictUTF8}

	if err := l.write(ansi.SaveCursor); err != nil {
		return err
	}
	if err := l.render(); err != nil {
		return err
	}
	for {
		key, err := keys.ReadKey()
		if errors.Is(err, io.EOF) {
			key = editor.Key{Kind: editor.KeyInterrupt}
		} else if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		if key.Kind == editor.KeyInterrupt {
			if err := l.write(ansi.CRLF); err != nil {
				return err
			}
			return l.flush()
		}

		if line, ok := l.ed.Apply(key); ok {
			err = l.submit(ctx, line)
		} else {
			err = l.write(ansi.RestoreCursor, ansi.EraseBelow, ansi.SaveCursor)
		}
		if err != nil {
			return err
		}
		if err := l.render(); err != nil {
			return err
		}
	}
}

// submit runs line and prints what it produced. A line whose command cannot
// be executed is echoed back unchanged. The prompt line is redrawn first so
// the suggestion tail does not stay behind on it.
func (l *repl) submit(ctx context.Context, line string) error {
	if err := l.write(ansi.RestoreCursor, ansi.EraseBelow); err != nil {
		return err
	}
	if err := l.ed.RenderLine(l.out, line); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return l.write(ansi.CRLF, ansi.SaveCursor)
	}
	name, args := fields[0], fields[1:]

	res, err := l.runner.Run(ctx, name, args)
	if errors.Is(err, process.ErrNotExecutable) {
		return l.write(ansi.CRLF, line, ansi.CRLF, ansi.SaveCursor)
	}
	if err != nil {
		return fmt.Errorf("run %s: %w", name, err)
	}

	text, err := formatOutput(res, l.strict)
	if err != nil {
		notice := styles.Error.Render(fmt.Sprintf("ppsh: %s: %v", name, err))
		return l.write(ansi.CRLF, notice, ansi.CRLF, ansi.SaveCursor)
	}
	return l.write(ansi.CRLF, text, ansi.SaveCursor)
}

func (l *repl) render() error {
	if err := l.ed.Render(l.out); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return l.flush()
}

func (l *repl) write(parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(l.out, p); err != nil {
			return fmt.Errorf("write terminal: %w", err)
		}
	}
	return nil
}

func (l *repl) flush() error {
	if err := l.out.Flush(); err != nil {
		return fmt.Errorf("flush terminal: %w", err)
	}
	return nil
}
