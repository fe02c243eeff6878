package cmdprompt

import "fmt"

// Command is a value produced by a prompt: either a finalized command or
// query, or the Cancel signal emitted when backspacing out of an empty prompt.
//
// The set of commands is open. Hosts with their own grammar return their
// own types from a custom Parser.
type Command interface {
	String() string
}

// Cancel asks the host to leave the prompt without running anything.
type Cancel struct{}

// Find carries a search query.
type Find struct {
	Query string
}

// Quit asks the host to exit.
type Quit struct{}

// Save writes the current document, to Path when it is set.
type Save struct {
	Path string
}

// Open loads the document at Path.
type Open struct {
	Path string
}

// GotoLine moves to a 1-based line number.
type GotoLine struct {
	Line int
}

// NextBuffer switches to the next open buffer.
type NextBuffer struct{}

// PrevBuffer switches to the previous open buffer.
type PrevBuffer struct{}

func (Cancel) String() string { return "cancel" }

func (c Find) String() string { return "find " + c.Query }

func (Quit) String() string { return "quit" }

func (c Save) String() string {
	if c.Path == "" {
		return "save"
	}
	return "save " + c.Path
}

func (c Open) String() string { return "open " + c.Path }

func (c GotoLine) String() string { return fmt.Sprintf("goto %d", c.Line) }

func (NextBuffer) String() string { return "next-buffer" }

func (PrevBuffer) String() string { return "prev-buffer" }
