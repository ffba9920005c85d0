package cli

import (
	"bufio"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/Phippsaurus/ppsh/internal/editor"
)

// KeySource delivers key events one at a time, blocking until the next one.
type KeySource interface {
	ReadKey() (editor.Key, error)
}

// KeyReader decodes raw terminal input into key events.
type KeyReader struct {
	r      *bufio.Reader
	lastCR bool
}

func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r)}
}

// ReadKey returns the next key. Read errors, including io.EOF, are returned as is.
func (kr *KeyReader) ReadKey() (editor.Key, error) {
	for {
		c, size, err := kr.r.ReadRune()
		if err != nil {
			return editor.Key{}, err
		}
		// CR LF from piped input is one Enter, not two.
		if c == '\n' && kr.lastCR {
			kr.lastCR = false
			continue
		}
		kr.lastCR = c == '\r'

		switch {
		case c == utf8.RuneError && size == 1:
			return editor.Key{Kind: editor.KeyUnknown}, nil
		case c == 3: // Ctrl+C
			return editor.Key{Kind: editor.KeyInterrupt}, nil
		case c == '\r' || c == '\n':
			return editor.Key{Kind: editor.KeySubmit}, nil
		case c == 127 || c == 8:
			return editor.Key{Kind: editor.KeyBackspace}, nil
		case c == 27:
			return kr.readEscape()
		case unicode.IsPrint(c):
			return editor.Rune(c), nil
		default:
			return editor.Key{Kind: editor.KeyUnknown}, nil
		}
	}
}

// readEscape consumes a CSI (ESC [) or SS3 (ESC O) sequence. A lone ESC, or
// ESC followed by anything else, is reported as an unknown key.
func (kr *KeyReader) readEscape() (editor.Key, error) {
	unknown := editor.Key{Kind: editor.KeyUnknown}
	if kr.r.Buffered() == 0 {
		return unknown, nil
	}
	intro, err := kr.r.ReadByte()
	if err != nil {
		return unknown, err
	}
	if intro != '[' && intro != 'O' {
		return unknown, nil
	}
	// Skip parameter and intermediate bytes up to the final byte.
	for {
		b, err := kr.r.ReadByte()
		if err != nil {
			return unknown, err
		}
		if b < 0x40 || b > 0x7e {
			continue
		}
		switch b {
		case 'C':
			return editor.Key{Kind: editor.KeyRight}, nil
		case 'D':
			return editor.Key{Kind: editor.KeyLeft}, nil
		default:
			return unknown, nil
		}
	}
}
