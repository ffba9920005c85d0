package cli

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

var errNotTerminal = errors.New("not a terminal")

// acquireTTY puts in into raw mode (no line buffering, no echo) and returns
// the function that restores the previous mode.
func acquireTTY(in *os.File) (restore func() error, err error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, errNotTerminal
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	return func() error {
		if err := term.Restore(fd, state); err != nil {
			return fmt.Errorf("restore terminal: %w", err)
		}
		return nil
	}, nil
}
