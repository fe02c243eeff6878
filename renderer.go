package cmdprompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// renderer draws a prompt onto one terminal row.
//
// The line layout is "<indicator>:<input>". The indicator comes from the
// prompt mode and is empty in CommandMode. Every render moves to column 1
// of the row and clears the whole row first, so a shorter line never leaves
// characters from a previous, longer one behind.
type renderer struct {
	output      io.Writer    // Target output writer (typically stdout or colorable wrapper)
	colorScheme *ColorScheme // nil renders plain text
	logger      *log.Logger  // Receives write failures
}

// newRenderer creates a new renderer with the given output and color scheme.
func newRenderer(output io.Writer, colorScheme *ColorScheme, logger *log.Logger) *renderer {
	return &renderer{
		output:      output,
		colorScheme: colorScheme,
		logger:      logger,
	}
}

// Line returns the text the prompt occupies on screen, without escape
// sequences.
func (p *Prompt) Line() string {
	return p.mode.Indicator() + ":" + string(p.buffer)
}

// CursorColumn returns the 1-based screen column of the cursor: the
// 1-based cursor position plus the ':' separator plus the indicator width.
func (p *Prompt) CursorColumn() int {
	return cursorColumn(p.mode.Indicator(), p.cursor)
}

func cursorColumn(indicator string, cursor int) int {
	return cursor + 2 + len([]rune(indicator))
}

// Render draws the prompt on the given 1-based terminal row and leaves the
// terminal cursor at CursorColumn on that row. Rows below 1 are treated as
// row 1.
//
// Output errors are logged and otherwise ignored; rendering never changes
// the prompt's state.
func (p *Prompt) Render(row int) {
	p.renderer.render(p.mode.Indicator(), string(p.buffer), p.cursor, row)
}

func (r *renderer) render(indicator, input string, cursor, row int) {
	if row < 1 {
		row = 1
	}

	var b strings.Builder
	// Move to the start of the row and clear it
	fmt.Fprintf(&b, "\x1b[%d;1H\x1b[2K", row)
	r.writeLine(&b, indicator, input)
	fmt.Fprintf(&b, "\x1b[%d;%dH", row, cursorColumn(indicator, cursor))

	if _, err := io.WriteString(r.output, b.String()); err != nil {
		r.logger.Error("failed to render prompt line", "row", row, "err", err)
	}
}

// writeLine writes the indicator, separator and input, colored when a
// color scheme is set. Color sequences take no screen columns, so the
// cursor arithmetic is the same either way.
func (r *renderer) writeLine(b *strings.Builder, indicator, input string) {
	if r.colorScheme == nil {
		b.WriteString(indicator)
		b.WriteString(":")
		b.WriteString(input)
		return
	}

	if indicator != "" {
		b.WriteString(r.colorScheme.Indicator.ToANSI())
		b.WriteString(indicator)
		b.WriteString(Reset())
	}
	b.WriteString(r.colorScheme.Separator.ToANSI())
	b.WriteString(":")
	b.WriteString(Reset())
	if input != "" {
		b.WriteString(r.colorScheme.Input.ToANSI())
		b.WriteString(input)
		b.WriteString(Reset())
	}
}
