package cmdprompt

// Mode is the interpretation discipline of a prompt. It is chosen when the
// prompt is created and never changes afterwards.
type Mode int

// Prompt modes
const (
	// CommandMode parses the entered text into a Command using the configured Parser.
	CommandMode Mode = iota
	// FindMode uses the entered text verbatim as a search query.
	FindMode
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case CommandMode:
		return "command"
	case FindMode:
		return "find"
	}
	return "unknown"
}

// Indicator returns the label rendered before the ':' separator.
// Command mode has no label, so its line starts with the separator.
func (m Mode) Indicator() string {
	switch m {
	case CommandMode:
		return ""
	case FindMode:
		return "find"
	}
	return ""
}
