package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Phippsaurus/ppsh/internal/suggest"
)

func TestRunShellFailsWithoutListing(t *testing.T) {
	// The directory scan happens before the terminal is touched.
	err := RunShell(context.Background(), Options{Dir: filepath.Join(t.TempDir(), "missing")})
	require.ErrorIs(t, err, suggest.ErrListEntries)
}
