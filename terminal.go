package cmdprompt

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// Terminal abstracts the terminal a prompt session reads keys from and
// draws on.
//
// Implementations:
//   - the value returned by OpenTerminal, backed by go-tty and golang.org/x/term
//   - a scripted mock used by the package tests
type Terminal interface {
	SetRaw() error                        // Enter raw mode for immediate key processing
	Restore() error                       // Restore original terminal settings
	Size() (width, height int, err error) // Get terminal dimensions with safe fallbacks
	ReadRune() (rune, int, error)         // Read a single Unicode character from input
	Output() io.Writer                    // Writer for rendered output
	Close() error                         // Clean up resources and prevent fd leaks
}

// realTerminal implements Terminal for production use.
//
// go-tty reads keys, golang.org/x/term switches raw mode on stdin and
// go-colorable translates ANSI sequences on Windows. Close is idempotent.
type realTerminal struct {
	tty           *tty.TTY    // TTY handle from go-tty for cross-platform terminal operations
	output        io.Writer   // Color-capable output writer (colorable on Windows, stdout elsewhere)
	closed        bool        // Track if terminal is already closed to prevent double-close panic on Windows
	stdinFd       int         // File descriptor for stdin for raw mode management
	originalState *term.State // Original terminal state to restore on exit
}

// OpenTerminal opens the controlling terminal.
func OpenTerminal() (Terminal, error) {
	t, err := newRealTerminal()
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	return t, nil
}

func newRealTerminal() (*realTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}

	var output io.Writer = os.Stdout
	if runtime.GOOS == "windows" {
		output = colorable.NewColorableStdout()
	}

	return &realTerminal{
		tty:     t,
		output:  output,
		stdinFd: int(os.Stdin.Fd()),
	}, nil
}

func (t *realTerminal) SetRaw() error {
	// Capture the current state on every call so repeated sessions restore
	// to the right baseline
	if term.IsTerminal(t.stdinFd) {
		state, err := term.GetState(t.stdinFd)
		if err != nil {
			return err
		}
		t.originalState = state

		if _, err := term.MakeRaw(t.stdinFd); err != nil {
			return err
		}
	}
	return nil
}

func (t *realTerminal) Restore() error {
	if t.originalState != nil && term.IsTerminal(t.stdinFd) {
		err := term.Restore(t.stdinFd, t.originalState)
		t.originalState = nil
		return err
	}
	return nil
}

func (t *realTerminal) Size() (width, height int, err error) {
	w, h, err := t.tty.Size()
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24, err
	}
	return w, h, nil
}

func (t *realTerminal) ReadRune() (rune, int, error) {
	r, err := t.tty.ReadRune()
	if err != nil {
		return 0, 0, err
	}
	return r, 1, nil
}

func (t *realTerminal) Output() io.Writer {
	return t.output
}

func (t *realTerminal) Close() error {
	if t.closed {
		return nil
	}
	if t.tty != nil {
		err := t.tty.Close()
		t.closed = true
		return err
	}
	return nil
}
