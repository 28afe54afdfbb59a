package state

// KeyKind classifies an input event
type KeyKind int

const (
	KeyOther KeyKind = iota
	KeyRune
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// String returns a short name for the key kind
func (k KeyKind) String() string {
	switch k {
	case KeyRune:
		return "rune"
	case KeyEnter:
		return "enter"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	case KeyEscape:
		return "esc"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "other"
	}
}

// Key is a single input event. Rune is only meaningful for KeyRune.
type Key struct {
	Kind KeyKind
	Rune rune
}

// RuneKey returns a character key event
func RuneKey(r rune) Key {
	return Key{Kind: KeyRune, Rune: r}
}

// SpecialKey returns a non-character key event
func SpecialKey(kind KeyKind) Key {
	return Key{Kind: kind}
}

// String returns the key as it would be typed
func (k Key) String() string {
	if k.Kind == KeyRune {
		return string(k.Rune)
	}
	return k.Kind.String()
}
