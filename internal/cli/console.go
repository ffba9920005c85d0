package cli

import (
	"bufio"
	"context"
	"errors"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/Phippsaurus/ppsh/internal/editor"
	"github.com/Phippsaurus/ppsh/internal/process"
	"github.com/Phippsaurus/ppsh/internal/suggest"
	"github.com/Phippsaurus/ppsh/pkg/log"
)

// Options configures a shell session.
type Options struct {
	// Dir is the directory whose entries seed completion. Defaults to ".".
	Dir string
	// Prompt is the marker drawn before the input. Defaults to editor.DefaultPrompt.
	Prompt string
	// StrictUTF8 suppresses output that is not valid UTF-8 instead of
	// replacing the invalid bytes.
	StrictUTF8 bool
}

// RunShell indexes the working directory, puts the terminal into raw mode and
// runs the interactive loop on stdin/stdout until Ctrl+C. The terminal mode
// is restored on every return path.
func RunShell(ctx context.Context, opts Options) (err error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	index, err := suggest.Load(dir)
	if err != nil {
		return err
	}
	log.Info("indexed", index.Len(), "entries from", dir)

	var edOpts []editor.Option
	if opts.Prompt != "" {
		edOpts = append(edOpts, editor.WithPrompt(opts.Prompt))
	}
	ed := editor.NewReadline(index, edOpts...)

	restore, err := acquireTTY(os.Stdin)
	switch {
	case errors.Is(err, errNotTerminal):
		log.Warn("stdin is not a terminal; reading keys without raw mode")
	case err != nil:
		return err
	default:
		defer func() {
			if rerr := restore(); rerr != nil {
				err = multierror.Append(err, rerr)
			}
		}()
	}

	out := bufio.NewWriter(os.Stdout)
	return RunREPL(ctx, ed, NewKeyReader(os.Stdin), out, process.ExecRunner{}, opts)
}
