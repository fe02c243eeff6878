package cmdprompt

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrEOF is returned by Run when the terminal input is exhausted.
	ErrEOF = errors.New("EOF")
	// ErrExpectedArgument matches any *ExpectedArgumentError.
	ErrExpectedArgument = errors.New("expected argument")
	// ErrUnknownCommand matches any *UnknownCommandError.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrInvalidArgument matches any *InvalidArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ExpectedArgumentError reports that Cmd needs an argument but none was given.
// A find prompt finalized with an empty buffer reports Cmd "find".
type ExpectedArgumentError struct {
	Cmd string
}

func (e *ExpectedArgumentError) Error() string {
	return fmt.Sprintf("%s: expected argument", e.Cmd)
}

func (e *ExpectedArgumentError) Unwrap() error {
	return ErrExpectedArgument
}

// UnknownCommandError reports a command name the parser does not recognize.
type UnknownCommandError struct {
	Cmd string
}

func (e *UnknownCommandError) Error() string {
	if e.Cmd == "" {
		return "no command given"
	}
	return fmt.Sprintf("unknown command %q", e.Cmd)
}

func (e *UnknownCommandError) Unwrap() error {
	return ErrUnknownCommand
}

// InvalidArgumentError reports a malformed argument to Cmd.
type InvalidArgumentError struct {
	Cmd string
	Arg string
	Err error // underlying conversion error, may be nil
}

func (e *InvalidArgumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: invalid argument %q: %v", e.Cmd, e.Arg, e.Err)
	}
	return fmt.Sprintf("%s: invalid argument %q", e.Cmd, e.Arg)
}

// Unwrap returns both the sentinel and the underlying cause.
func (e *InvalidArgumentError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidArgument}
	}
	return []error{ErrInvalidArgument, e.Err}
}
