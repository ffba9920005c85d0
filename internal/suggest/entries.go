package suggest

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// ErrListEntries marks a failed directory scan. The shell cannot start without one.
var ErrListEntries = errors.New("list directory entries")

// ListEntries returns the names of all entries directly inside dir, hidden
// ones included. Names that are not valid UTF-8 cannot be typed back
// verbatim and are left out.
func ListEntries(dir string) ([]string, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrListEntries, dir, err)
	}
	names := make([]string, 0, len(des))
	for _, de := range des {
		name := de.Name()
		if !utf8.ValidString(name) {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// Load scans dir and builds an Index from its entries.
func Load(dir string) (*Index, error) {
	names, err := ListEntries(dir)
	if err != nil {
		return nil, err
	}
	return NewIndex(names), nil
}
