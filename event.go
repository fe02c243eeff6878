package cmdprompt

// Key identifies the kind of an input event.
type Key int

// Key constants define the events a prompt understands. Everything a
// KeyMap cannot classify arrives as KeyOther and is ignored.
const (
	KeyOther Key = iota
	KeyChar
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
)

// String returns a short name for the key.
func (k Key) String() string {
	switch k {
	case KeyChar:
		return "char"
	case KeyEnter:
		return "enter"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "other"
	}
}

// Event is a single discrete input event delivered to a prompt.
// Rune is only meaningful when Key is KeyChar.
type Event struct {
	Key  Key
	Rune rune
}

// CharEvent returns a KeyChar event carrying r.
func CharEvent(r rune) Event {
	return Event{Key: KeyChar, Rune: r}
}

// KeyEvent returns an event for a non-character key.
func KeyEvent(k Key) Event {
	return Event{Key: k}
}
