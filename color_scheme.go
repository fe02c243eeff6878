package cmdprompt

import (
	"fmt"
	"strings"
)

// ColorScheme defines the color configuration for the prompt line.
type ColorScheme struct {
	Name      string `json:"name"`
	Indicator Color  `json:"indicator"` // Mode label, e.g. "find"
	Separator Color  `json:"separator"` // The ':' before the input
	Input     Color  `json:"input"`
}

// Color represents an RGB color with optional formatting.
type Color struct {
	R    uint8 `json:"r"`
	G    uint8 `json:"g"`
	B    uint8 `json:"b"`
	Bold bool  `json:"bold"`
}

// ThemeDefault is the default color scheme with a green indicator and white text
var ThemeDefault = &ColorScheme{
	Name:      "default",
	Indicator: Color{R: 0, G: 255, B: 0, Bold: true},
	Separator: Color{R: 0, G: 255, B: 0, Bold: true},
	Input:     Color{R: 255, G: 255, B: 255, Bold: true},
}

// ThemeDark is a dark theme with light blue indicator and off-white text
var ThemeDark = &ColorScheme{
	Name:      "Dark",
	Indicator: Color{R: 102, G: 217, B: 239, Bold: true},
	Separator: Color{R: 98, G: 114, B: 164, Bold: false},
	Input:     Color{R: 248, G: 248, B: 242, Bold: false},
}

// ThemeLight is a light theme with blue indicator and dark gray text
var ThemeLight = &ColorScheme{
	Name:      "Light",
	Indicator: Color{R: 0, G: 119, B: 187, Bold: true},
	Separator: Color{R: 149, G: 157, B: 165, Bold: false},
	Input:     Color{R: 36, G: 41, B: 46, Bold: false},
}

// ThemeSolarizedDark is the Solarized Dark color scheme
var ThemeSolarizedDark = &ColorScheme{
	Name:      "Solarized Dark",
	Indicator: Color{R: 133, G: 153, B: 0, Bold: true},
	Separator: Color{R: 88, G: 110, B: 117, Bold: false},
	Input:     Color{R: 147, G: 161, B: 161, Bold: false},
}

// ThemeDracula is the Dracula color scheme
var ThemeDracula = &ColorScheme{
	Name:      "Dracula",
	Indicator: Color{R: 255, G: 121, B: 198, Bold: true},
	Separator: Color{R: 98, G: 114, B: 164, Bold: false},
	Input:     Color{R: 248, G: 248, B: 242, Bold: false},
}

// ToANSI converts a Color to an ANSI escape sequence.
func (c Color) ToANSI() string {
	var codes []string

	// Bold formatting comes first
	if c.Bold {
		codes = append(codes, "1")
	}

	// RGB color (true color support)
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))

	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}
