package cli

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/Phippsaurus/ppsh/internal/ansi"
	"github.com/Phippsaurus/ppsh/internal/process"
	"github.com/Phippsaurus/ppsh/internal/styles"
)

// ErrNonUTF8Output is reported under the strict output policy when a command
// writes bytes that are not valid UTF-8.
var ErrNonUTF8Output = errors.New("output is not valid UTF-8")

// normalizeTTYNewlines maps lone \n to \r\n; a raw tty does not do it for us.
func normalizeTTYNewlines(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/8)
	prev := byte(0)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '\n' && prev != '\r' {
			b.WriteString(ansi.CRLF)
		} else {
			b.WriteByte(ch)
		}
		prev = ch
	}
	return b.String()
}

// decodeText turns captured bytes into text. Invalid sequences are replaced
// with U+FFFD unless strict is set, in which case they are an error.
func decodeText(b []byte, strict bool) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}
	if strict {
		return "", ErrNonUTF8Output
	}
	return strings.ToValidUTF8(string(b), "\uFFFD"), nil
}

// formatOutput renders a finished command's output for the raw terminal:
// stdout as is, stderr in the error style, each terminated by a newline.
func formatOutput(out process.Output, strict bool) (string, error) {
	stdout, err := decodeText(out.Stdout, strict)
	if err != nil {
		return "", err
	}
	stderr, err := decodeText(out.Stderr, strict)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if stdout != "" {
		b.WriteString(terminateLine(normalizeTTYNewlines(stdout)))
	}
	if stderr != "" {
		b.WriteString(terminateLine(styles.RenderLines(styles.Error, stderr, ansi.CRLF)))
	}
	return b.String(), nil
}

func terminateLine(s string) string {
	if strings.HasSuffix(s, ansi.CRLF) {
		return s
	}
	return s + ansi.CRLF
}
