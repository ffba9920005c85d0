// Package ansi holds the handful of VT100 control sequences the line editor emits.
package ansi

import xansi "github.com/charmbracelet/x/ansi"

const (
	// SaveCursor (DECSC) stores the cursor position as the render anchor.
	SaveCursor = xansi.SaveCursor
	// RestoreCursor (DECRC) returns to the last saved anchor.
	RestoreCursor = xansi.RestoreCursor
	// EraseBelow clears from the cursor to the end of the screen.
	EraseBelow = xansi.EraseScreenBelow
	// CRLF is a newline in raw mode, where the tty no longer maps \n to \r\n.
	CRLF = "\r\n"
)

// CursorLeft moves the cursor n columns to the left. It returns "" for n <= 0;
// CUB with a zero count still moves one column.
func CursorLeft(n int) string {
	if n <= 0 {
		return ""
	}
	return xansi.CursorLeft(n)
}
