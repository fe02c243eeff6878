package cmdprompt

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Run drives the prompt from a terminal until it produces a value.
//
// This is a convenience method that calls RunWithContext with a background
// context.
func (p *Prompt) Run(t Terminal, row int) (Command, error) {
	return p.RunWithContext(context.Background(), t, row)
}

// RunWithContext puts the terminal in raw mode, draws the prompt on row and
// feeds decoded key events to HandleInput, redrawing after each one. It
// returns the first Command or error HandleInput reports; Cancel{} when the
// user backspaces out of an empty prompt.
//
// A row below 1 selects the bottom row of the terminal. ErrEOF is returned
// when input ends.
//
// The context is checked between key presses only. A blocked read is not
// interrupted, so cancellation takes effect after the next key press.
//
// Example:
//
//	t, err := cmdprompt.OpenTerminal()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer t.Close()
//
//	p := cmdprompt.New(cmdprompt.CommandMode)
//	cmd, err := p.Run(t, 0)
func (p *Prompt) RunWithContext(ctx context.Context, t Terminal, row int) (Command, error) {
	if row < 1 {
		_, height, sizeErr := t.Size()
		if sizeErr != nil {
			p.logger.Warn("failed to get terminal size", "err", sizeErr)
		}
		row = height
	}

	if err := t.SetRaw(); err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() {
		if restoreErr := t.Restore(); restoreErr != nil {
			p.logger.Warn("failed to restore terminal state", "err", restoreErr)
		}
	}()

	r := newRenderer(t.Output(), p.renderer.colorScheme, p.logger)
	draw := func() {
		r.render(p.mode.Indicator(), string(p.buffer), p.cursor, row)
	}
	draw()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		ev, err := p.readEvent(t)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrEOF
			}
			return nil, fmt.Errorf("failed to read input: %w", err)
		}

		cmd, err := p.HandleInput(ev)
		draw()
		if cmd != nil || err != nil {
			return cmd, err
		}
	}
}

// readEvent reads one key press and classifies it with the key map. A lone
// ESC is reported as KeyOther and the rune after it is kept for the next
// call.
func (p *Prompt) readEvent(t Terminal) (Event, error) {
	r, err := p.nextRune(t)
	if err != nil {
		return Event{}, err
	}
	if r != '\x1b' {
		return p.keyMap.Event(r), nil
	}

	intro, err := p.nextRune(t)
	if err != nil {
		return Event{}, err
	}
	if intro != '[' && intro != 'O' {
		p.pending, p.hasPending = intro, true
		return KeyEvent(KeyOther), nil
	}

	seq, err := readEscapeSequence(t, intro)
	if err != nil {
		return Event{}, err
	}
	return p.keyMap.SequenceEvent(seq), nil
}

func (p *Prompt) nextRune(t Terminal) (rune, error) {
	if p.hasPending {
		p.hasPending = false
		return p.pending, nil
	}
	r, _, err := t.ReadRune()
	return r, err
}

// readEscapeSequence reads the remainder of an ESC sequence whose
// introducer has already been read. CSI sequences ("[" ...) end at their
// final byte, SS3 sequences ("O" x) are two runes.
func readEscapeSequence(t Terminal, intro rune) (string, error) {
	seq := make([]rune, 1, 8)
	seq[0] = intro
	for len(seq) < 8 { // Limit to prevent reading forever on garbage
		r, _, err := t.ReadRune()
		if err != nil {
			return "", err
		}
		seq = append(seq, r)

		if intro == 'O' || (r >= 0x40 && r <= 0x7e) {
			break
		}
	}
	return string(seq), nil
}
