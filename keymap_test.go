package cmdprompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMapEvent(t *testing.T) {
	t.Parallel()

	km := NewDefaultKeyMap()

	tests := []struct {
		name string
		r    rune
		want Event
	}{
		{name: "carriage return", r: '\r', want: KeyEvent(KeyEnter)},
		{name: "line feed", r: '\n', want: KeyEvent(KeyEnter)},
		{name: "DEL", r: '\x7f', want: KeyEvent(KeyBackspace)},
		{name: "ctrl+h", r: '\b', want: KeyEvent(KeyBackspace)},
		{name: "letter", r: 'a', want: CharEvent('a')},
		{name: "space", r: ' ', want: CharEvent(' ')},
		{name: "colon", r: ':', want: CharEvent(':')},
		{name: "unicode", r: 'é', want: CharEvent('é')},
		{name: "tab is ignored", r: '\t', want: KeyEvent(KeyOther)},
		{name: "ctrl+a is ignored", r: '\x01', want: KeyEvent(KeyOther)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, km.Event(tt.r))
		})
	}
}

func TestDefaultKeyMapSequenceEvent(t *testing.T) {
	t.Parallel()

	km := NewDefaultKeyMap()

	tests := []struct {
		seq  string
		want Key
	}{
		{seq: "[C", want: KeyRight},
		{seq: "[D", want: KeyLeft},
		{seq: "OC", want: KeyRight},
		{seq: "OD", want: KeyLeft},
		{seq: "[3~", want: KeyDelete},
		{seq: "[A", want: KeyOther},
		{seq: "[H", want: KeyOther},
		{seq: "x", want: KeyOther},
	}

	for _, tt := range tests {
		t.Run(tt.seq, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, KeyEvent(tt.want), km.SequenceEvent(tt.seq))
		})
	}
}

func TestKeyMapBind(t *testing.T) {
	t.Parallel()

	km := NewDefaultKeyMap()
	km.Bind('\x04', KeyDelete)
	km.Bind('\t', KeyChar)
	km.Bind('q', KeyOther)
	km.BindSequence("[1;5D", KeyLeft)
	km.BindSequence("[C", KeyOther)

	assert.Equal(t, KeyEvent(KeyDelete), km.Event('\x04'))
	assert.Equal(t, CharEvent('\t'), km.Event('\t'))
	assert.Equal(t, KeyEvent(KeyOther), km.Event('q'))
	assert.Equal(t, KeyEvent(KeyLeft), km.SequenceEvent("[1;5D"))
	assert.Equal(t, KeyEvent(KeyOther), km.SequenceEvent("[C"))
}

func TestNilKeyMap(t *testing.T) {
	t.Parallel()

	var km *KeyMap
	assert.Equal(t, CharEvent('a'), km.Event('a'))
	assert.Equal(t, KeyEvent(KeyOther), km.Event('\r'))
	assert.Equal(t, KeyEvent(KeyOther), km.SequenceEvent("[D"))
}

func TestKeyAndModeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "char", KeyChar.String())
	assert.Equal(t, "enter", KeyEnter.String())
	assert.Equal(t, "backspace", KeyBackspace.String())
	assert.Equal(t, "delete", KeyDelete.String())
	assert.Equal(t, "left", KeyLeft.String())
	assert.Equal(t, "right", KeyRight.String())
	assert.Equal(t, "other", KeyOther.String())

	assert.Equal(t, "command", CommandMode.String())
	assert.Equal(t, "find", FindMode.String())
	assert.Equal(t, "unknown", Mode(42).String())
	assert.Empty(t, CommandMode.Indicator())
	assert.Equal(t, "find", FindMode.Indicator())
}
