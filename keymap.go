package cmdprompt

// KeyMap holds the key binding configuration used to turn raw terminal
// input into Events.
type KeyMap struct {
	bindings  map[rune]Key
	sequences map[string]Key
}

// NewDefaultKeyMap creates the default key bindings for the prompt.
//
// Default key bindings:
//   - Enter/Return: Finalize
//   - Backspace, Ctrl+H: Delete character backwards
//   - Delete: Delete character forwards
//   - Left/Right arrows: Move cursor
//
// Printable characters need no binding; they always become KeyChar events
// unless explicitly rebound.
func NewDefaultKeyMap() *KeyMap {
	km := &KeyMap{
		bindings:  make(map[rune]Key),
		sequences: make(map[string]Key),
	}

	km.bindings['\r'] = KeyEnter
	km.bindings['\n'] = KeyEnter
	km.bindings['\x7f'] = KeyBackspace // Backspace
	km.bindings['\b'] = KeyBackspace   // Ctrl+H

	// Escape sequences, without the leading ESC
	km.sequences["[C"] = KeyRight
	km.sequences["[D"] = KeyLeft
	km.sequences["OC"] = KeyRight
	km.sequences["OD"] = KeyLeft
	km.sequences["[3~"] = KeyDelete

	return km
}

// Bind adds or updates a key binding for a single character.
//
// Example:
//
//	keyMap := cmdprompt.NewDefaultKeyMap()
//	// Ctrl+D deletes forwards
//	keyMap.Bind('\x04', cmdprompt.KeyDelete)
func (km *KeyMap) Bind(key rune, k Key) {
	km.bindings[key] = k
}

// BindSequence adds or updates an escape sequence binding.
// The sequence should not include the initial ESC character.
//
// Example:
//
//	keyMap := cmdprompt.NewDefaultKeyMap()
//	// Ctrl+Left / Ctrl+Right behave like the plain arrows
//	keyMap.BindSequence("[1;5D", cmdprompt.KeyLeft)
//	keyMap.BindSequence("[1;5C", cmdprompt.KeyRight)
func (km *KeyMap) BindSequence(seq string, k Key) {
	km.sequences[seq] = k
}

// Event classifies a single rune. Bound runes map to their key, other
// printable runes become KeyChar and remaining control runes KeyOther.
func (km *KeyMap) Event(r rune) Event {
	if km != nil && km.bindings != nil {
		if k, exists := km.bindings[r]; exists {
			if k == KeyChar {
				return CharEvent(r)
			}
			return KeyEvent(k)
		}
	}
	if isPrintable(r) {
		return CharEvent(r)
	}
	return KeyEvent(KeyOther)
}

// SequenceEvent classifies an escape sequence (without ESC). Unbound
// sequences yield KeyOther.
func (km *KeyMap) SequenceEvent(seq string) Event {
	if km == nil || km.sequences == nil {
		return KeyEvent(KeyOther)
	}
	if k, exists := km.sequences[seq]; exists && k != KeyChar {
		return KeyEvent(k)
	}
	return KeyEvent(KeyOther)
}

func isPrintable(r rune) bool {
	return r >= 32 && r != 127
}
