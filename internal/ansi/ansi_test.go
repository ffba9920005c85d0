package ansi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorLeft(t *testing.T) {
	assert.Equal(t, "", CursorLeft(0))
	assert.Equal(t, "", CursorLeft(-3))
	assert.Equal(t, "\x1b[D", CursorLeft(1))
	assert.Equal(t, "\x1b[12D", CursorLeft(12))
}

func TestSequences(t *testing.T) {
	assert.Equal(t, "\x1b7", SaveCursor)
	assert.Equal(t, "\x1b8", RestoreCursor)
	assert.Equal(t, "\x1b[0J", EraseBelow)
}
