package cmdprompt

import (
	"io"
	"os"
	"runtime"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-colorable"
)

// Prompt is a single-line command/find prompt.
//
// A Prompt owns its text buffer and cursor. Cursor is a rune index in
// [0, Len()] and denotes the insertion point. A Prompt is driven by one
// goroutine at a time and performs no blocking work in HandleInput.
type Prompt struct {
	mode     Mode
	buffer   []rune
	cursor   int
	parser   Parser
	keyMap   *KeyMap
	renderer *renderer
	logger   *log.Logger

	// Rune read after a lone ESC, replayed by the next readEvent.
	pending    rune
	hasPending bool
}

// Config holds the configuration for a prompt.
type Config struct {
	Parser      Parser       // Command grammar used in CommandMode (nil for DefaultParser)
	Output      io.Writer    // Render target (nil for stdout)
	ColorScheme *ColorScheme // Colors (nil for plain output)
	Logger      *log.Logger  // Diagnostic logger (nil for stderr at warn level)
	KeyMap      *KeyMap      // Key bindings used by Run (nil for default)
}

// Option represents a configuration option for prompt
type Option func(*Config)

// WithParser sets the command grammar used when finalizing in CommandMode.
func WithParser(parser Parser) Option {
	return func(c *Config) {
		c.Parser = parser
	}
}

// WithOutput sets the writer that Render writes to.
func WithOutput(w io.Writer) Option {
	return func(c *Config) {
		c.Output = w
	}
}

// WithColorScheme sets the color scheme
func WithColorScheme(colorScheme *ColorScheme) Option {
	return func(c *Config) {
		c.ColorScheme = colorScheme
	}
}

// WithLogger sets the logger that receives render diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithKeyMap sets the key bindings used to decode terminal input in Run.
func WithKeyMap(keyMap *KeyMap) Option {
	return func(c *Config) {
		c.KeyMap = keyMap
	}
}

// New creates an empty prompt in the given mode.
//
// Example:
//
//	p := cmdprompt.New(cmdprompt.FindMode)
//	p.HandleInput(cmdprompt.CharEvent('x'))
//	cmd, err := p.HandleInput(cmdprompt.KeyEvent(cmdprompt.KeyEnter))
//	// cmd == cmdprompt.Find{Query: "x"}, err == nil
func New(mode Mode, options ...Option) *Prompt {
	var config Config
	for _, option := range options {
		option(&config)
	}
	return newFromConfig(mode, config)
}

func newFromConfig(mode Mode, config Config) *Prompt {
	if config.Parser == nil {
		config.Parser = DefaultParser{}
	}
	if config.Output == nil {
		config.Output = defaultOutput()
	}
	if config.Logger == nil {
		config.Logger = defaultLogger()
	}
	if config.KeyMap == nil {
		config.KeyMap = NewDefaultKeyMap()
	}

	return &Prompt{
		mode:     mode,
		buffer:   []rune{},
		parser:   config.Parser,
		keyMap:   config.KeyMap,
		renderer: newRenderer(config.Output, config.ColorScheme, config.Logger),
		logger:   config.Logger,
	}
}

func defaultOutput() io.Writer {
	if runtime.GOOS == "windows" {
		// Use colorable for Windows ANSI escape support
		return colorable.NewColorableStdout()
	}
	return os.Stdout
}

func defaultLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "cmdprompt",
		Level:  log.WarnLevel,
	})
}

// HandleInput applies a single event to the prompt.
//
// It returns (nil, nil) when the event was an edit or was ignored, a
// Command when the prompt produced a value, or an error when finalizing
// failed. Backspace on an empty prompt returns Cancel{}. In CommandMode
// errors from the Parser are returned unchanged. KeyChar events carrying a
// control character or an invalid code point are ignored.
func (p *Prompt) HandleInput(ev Event) (Command, error) {
	switch ev.Key {
	case KeyEnter:
		return p.finalize()
	case KeyBackspace:
		return p.backspace(), nil
	case KeyDelete:
		p.deleteForward()
	case KeyLeft:
		p.moveLeft()
	case KeyRight:
		p.moveRight()
	case KeyChar:
		if isPrintable(ev.Rune) && utf8.ValidRune(ev.Rune) {
			p.insertRune(ev.Rune)
		}
	}
	return nil, nil
}

// Mode returns the mode the prompt was created with.
func (p *Prompt) Mode() Mode {
	return p.mode
}

// Text returns the current buffer contents.
func (p *Prompt) Text() string {
	return string(p.buffer)
}

// Cursor returns the cursor position as a rune index.
func (p *Prompt) Cursor() int {
	return p.cursor
}

// Len returns the buffer length in runes.
func (p *Prompt) Len() int {
	return len(p.buffer)
}

// Reset empties the buffer, for hosts that re-arm the prompt after a
// failed finalize.
func (p *Prompt) Reset() {
	p.buffer = p.buffer[:0]
	p.cursor = 0
}

// Edit operations

func (p *Prompt) insertRune(r rune) {
	p.buffer = append(p.buffer[:p.cursor], append([]rune{r}, p.buffer[p.cursor:]...)...)
	p.cursor++
}

func (p *Prompt) moveLeft() {
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *Prompt) moveRight() {
	if p.cursor < len(p.buffer) {
		p.cursor++
	}
}

func (p *Prompt) deleteForward() {
	if p.cursor < len(p.buffer) {
		p.buffer = append(p.buffer[:p.cursor], p.buffer[p.cursor+1:]...)
	}
}

// backspace removes the rune left of the cursor. On an empty buffer it
// returns Cancel instead; with the cursor at 0 and text to its right it
// does nothing.
func (p *Prompt) backspace() Command {
	switch {
	case p.cursor > 0:
		p.buffer = append(p.buffer[:p.cursor-1], p.buffer[p.cursor:]...)
		p.cursor--
	case len(p.buffer) == 0:
		return Cancel{}
	}
	return nil
}

func (p *Prompt) finalize() (Command, error) {
	switch p.mode {
	case FindMode:
		if len(p.buffer) == 0 {
			return nil, &ExpectedArgumentError{Cmd: "find"}
		}
		return Find{Query: string(p.buffer)}, nil
	case CommandMode:
		return p.parser.ParseCommand(string(p.buffer))
	}
	return nil, nil
}
