// Package colours holds the display styles used by the shell and the
// styled-error channel every component reports recoverable failures to.
package colours

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
)

// TextStyle is one of a fixed set of terminal display styles.
type TextStyle int

const (
	Black TextStyle = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	Grey
	LightRed
	LightGreen
	LightYellow
	LightBlue
	LightMagenta
	LightCyan
	LightWhite
	Bold
	Faint
	Italic
	Underline
	Blink
	Reverse
)

type styleInfo struct {
	name string
	attr color.Attribute
}

var styles = map[TextStyle]styleInfo{
	Black:        {"BLACK", color.FgBlack},
	Red:          {"RED", color.FgRed},
	Green:        {"GREEN", color.FgGreen},
	Yellow:       {"YELLOW", color.FgYellow},
	Blue:         {"BLUE", color.FgBlue},
	Magenta:      {"MAGENTA", color.FgMagenta},
	Cyan:         {"CYAN", color.FgCyan},
	White:        {"WHITE", color.FgWhite},
	Grey:         {"GREY", color.FgHiBlack},
	LightRed:     {"LIGHT_RED", color.FgHiRed},
	LightGreen:   {"LIGHT_GREEN", color.FgHiGreen},
	LightYellow:  {"LIGHT_YELLOW", color.FgHiYellow},
	LightBlue:    {"LIGHT_BLUE", color.FgHiBlue},
	LightMagenta: {"LIGHT_MAGENTA", color.FgHiMagenta},
	LightCyan:    {"LIGHT_CYAN", color.FgHiCyan},
	LightWhite:   {"LIGHT_WHITE", color.FgHiWhite},
	Bold:         {"BOLD", color.Bold},
	Faint:        {"FAINT", color.Faint},
	Italic:       {"ITALIC", color.Italic},
	Underline:    {"UNDERLINE", color.Underline},
	Blink:        {"BLINK", color.BlinkSlow},
	Reverse:      {"REVERSE", color.ReverseVideo},
}

var byName = func() map[string]TextStyle {
	out := make(map[string]TextStyle, len(styles))
	for style, info := range styles {
		out[info.name] = style
	}
	return out
}()

// Lookup finds the style with the given name, e.g. "LIGHT_BLUE".
func Lookup(name string) (TextStyle, bool) {
	style, ok := byName[name]
	return style, ok
}

// Names returns all known style names, sorted.
func Names() []string {
	var out []string
	for name := range byName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// String implements fmt.Stringer, returning the persisted style name.
func (s TextStyle) String() string {
	if info, ok := styles[s]; ok {
		return info.name
	}
	return fmt.Sprintf("TextStyle(%d)", int(s))
}

func newColor(s []TextStyle) *color.Color {
	var attrs []color.Attribute
	for _, style := range s {
		if info, ok := styles[style]; ok {
			attrs = append(attrs, info.attr)
		}
	}
	return color.New(attrs...)
}

// AddStyles wraps message with the terminal codes for the given styles.
// Output is unstyled when colour is disabled.
func AddStyles(message string, s ...TextStyle) string {
	return newColor(s).Sprint(message)
}

// ForceStyles is like AddStyles but styles message even if colour output
// is disabled.
func ForceStyles(message string, s ...TextStyle) string {
	c := newColor(s)
	c.EnableColor()
	return c.Sprint(message)
}

const (
	ModeAlways = "always"
	ModeAuto   = "auto"
	ModeNever  = "never"
)

// SetMode switches colour output on or off process-wide. Auto keeps the
// terminal detection done by fatih/color at startup.
func SetMode(mode string) error {
	switch mode {
	case ModeAlways:
		color.NoColor = false
	case ModeNever:
		color.NoColor = true
	case ModeAuto:
	default:
		return fmt.Errorf("unknown color mode %q, expected %s|%s|%s", mode, ModeAlways, ModeAuto, ModeNever)
	}
	return nil
}

// Reporter receives recoverable errors meant for the user.
type Reporter interface {
	ReportError(format string, a ...interface{})
}

// ErrorPrinter is a Reporter that writes one styled line per error.
type ErrorPrinter struct {
	W     io.Writer
	Style TextStyle
}

var _ Reporter = (*ErrorPrinter)(nil)

// ReportError implements Reporter.
func (p *ErrorPrinter) ReportError(format string, a ...interface{}) {
	fmt.Fprintln(p.W, AddStyles(fmt.Sprintf(format, a...), p.Style))
}
