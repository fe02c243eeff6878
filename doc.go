// Package cmdprompt provides a single-line command and search prompt for
// terminal applications, in the style of a vi ':' command line.
//
// A Prompt is created in one of two modes that never change afterwards:
//
//   - CommandMode: on Enter the text is handed to a Parser and the resulting
//     Command (or parse error) is returned.
//   - FindMode: on Enter the text is returned verbatim as a Find query. An
//     empty query is reported as an *ExpectedArgumentError for "find".
//
// The host application delivers one Event at a time to HandleInput and
// redraws with Render after each call:
//
//	p := cmdprompt.New(cmdprompt.CommandMode, cmdprompt.WithOutput(os.Stdout))
//	for ev := range events {
//		cmd, err := p.HandleInput(ev)
//		p.Render(statusRow)
//		if err != nil {
//			showError(err)
//			break
//		}
//		if cmd != nil {
//			execute(cmd)
//			break
//		}
//	}
//
// Editing:
//
//   - Printable characters are inserted at the cursor
//   - Left/Right move the cursor within the text and stop at either end
//   - Delete removes the character under the cursor
//   - Backspace removes the character before the cursor; on an empty prompt
//     it returns Cancel{} so the host can leave prompt mode
//
// The prompt line is drawn as "<indicator>:<text>" where the indicator is
// empty in CommandMode and "find" in FindMode. The terminal cursor is placed
// at CursorColumn, i.e. cursor+2+len(indicator).
//
// For hosts that do not have their own input loop, Run reads keys from a
// Terminal (see OpenTerminal) and returns the first value the prompt produces.
//
// Command grammar:
//
// DefaultParser understands a handful of vi-like commands (q, w, o, f,
// goto, bn, bp). Pass WithParser to use a different grammar; the prompt
// returns whatever the parser returns.
package cmdprompt
