package editor

import "fmt"

// KeyKind identifies the keystrokes the editor reacts to.
type KeyKind int

const (
	KeyUnknown KeyKind = iota
	KeyRune
	KeySubmit
	KeyLeft
	KeyRight
	KeyBackspace
	KeyInterrupt
)

// Key is one decoded keystroke or escape sequence. Rune is set only for KeyRune.
type Key struct {
	Kind KeyKind
	Rune rune
}

// Rune returns the key event for a printable character.
func Rune(r rune) Key {
	return Key{Kind: KeyRune, Rune: r}
}

// Keys maps s to one KeyRune event per character.
func Keys(s string) []Key {
	keys := make([]Key, 0, len(s))
	for _, r := range s {
		keys = append(keys, Rune(r))
	}
	return keys
}

func (k Key) String() string {
	switch k.Kind {
	case KeyRune:
		return fmt.Sprintf("rune(%q)", k.Rune)
	case KeySubmit:
		return "submit"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyBackspace:
		return "backspace"
	case KeyInterrupt:
		return "interrupt"
	default:
		return "unknown"
	}
}
