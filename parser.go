package cmdprompt

import (
	"strconv"
	"strings"
)

// Parser turns the text of a command prompt into a Command.
//
// Failures should be reported with *ExpectedArgumentError,
// *UnknownCommandError or *InvalidArgumentError, but a Prompt passes any
// error through to its caller untouched.
type Parser interface {
	ParseCommand(input string) (Command, error)
}

// ParserFunc adapts an ordinary function to the Parser interface.
type ParserFunc func(input string) (Command, error)

// ParseCommand calls f(input).
func (f ParserFunc) ParseCommand(input string) (Command, error) {
	return f(input)
}

// DefaultParser implements a small vi-like command grammar:
//
//	q, quit                   Quit
//	w, s, save [path]         Save
//	o, open <path>            Open
//	f, find <query>           Find
//	<n>, g <n>, goto <n>      GotoLine
//	bn, next-buffer           NextBuffer
//	bp, prev-buffer           PrevBuffer
//
// The first word selects the command; the remainder of the line (trimmed)
// is its argument, so queries and paths may contain spaces.
type DefaultParser struct{}

// ParseCommand implements Parser.
func (DefaultParser) ParseCommand(input string) (Command, error) {
	input = strings.TrimSpace(input)
	name, arg, _ := strings.Cut(input, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "":
		return nil, &UnknownCommandError{}
	case "q", "quit":
		return Quit{}, nil
	case "w", "s", "save":
		return Save{Path: arg}, nil
	case "o", "open":
		if arg == "" {
			return nil, &ExpectedArgumentError{Cmd: name}
		}
		return Open{Path: arg}, nil
	case "f", "find":
		if arg == "" {
			return nil, &ExpectedArgumentError{Cmd: name}
		}
		return Find{Query: arg}, nil
	case "g", "goto":
		if arg == "" {
			return nil, &ExpectedArgumentError{Cmd: name}
		}
		return parseLine(name, arg)
	case "bn", "next-buffer":
		return NextBuffer{}, nil
	case "bp", "prev-buffer":
		return PrevBuffer{}, nil
	}

	// A bare number jumps to that line.
	if arg == "" && isDigits(name) {
		return parseLine("goto", name)
	}
	return nil, &UnknownCommandError{Cmd: name}
}

func parseLine(cmd, arg string) (Command, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return nil, &InvalidArgumentError{Cmd: cmd, Arg: arg, Err: err}
	}
	if n < 1 {
		return nil, &InvalidArgumentError{Cmd: cmd, Arg: arg}
	}
	return GotoLine{Line: n}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
