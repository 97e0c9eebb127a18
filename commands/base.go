package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"

	getopt "github.com/pborman/getopt/v2"

	"github.com/josephlewis42/posh/core/colours"
	"github.com/josephlewis42/posh/core/interpreter"
)

// Builtin is a registered command.
type Builtin struct {
	Name  string
	Short string
	Main  interpreter.HandlerFunc
}

// allBuiltins holds every registered builtin by name.
var allBuiltins = make(map[string]Builtin)

func addBuiltin(name, short string, main interpreter.HandlerFunc) {
	if _, ok := allBuiltins[name]; ok {
		panic(fmt.Sprintf("builtin %q registered twice", name))
	}
	allBuiltins[name] = Builtin{Name: name, Short: short, Main: main}
}

// ListBuiltins returns every builtin sorted by name.
func ListBuiltins() []Builtin {
	var out []Builtin
	for _, b := range allBuiltins {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Catalogue returns a factory for each builtin, keyed by name.
func Catalogue() map[string]interpreter.Factory {
	out := make(map[string]interpreter.Factory, len(allBuiltins))
	for name, b := range allBuiltins {
		main := b.Main
		out[name] = func() interpreter.Handler { return main }
	}
	return out
}

type SimpleCommand struct {
	// Use holds a one line usage string, the first word is the command name.
	Use string
	// Short holds a one line description of the command.
	Short string
	// ShowHelp sets whether help is displayed or not.
	// If this is non-nil when Run() is called, then the default help flag isn't
	// added.
	ShowHelp *bool

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// Name returns the command name from the usage string.
func (s *SimpleCommand) Name() string {
	fields := strings.Fields(s.Use)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run parses args, if flag parsing was successful call the callback with
// the remaining operands.
func (s *SimpleCommand) Run(in *interpreter.Interpreter, args []string, callback func(operands []string) error) error {
	opts := s.Flags()

	// Add help flag if not overridden.
	if s.ShowHelp == nil {
		s.ShowHelp = opts.BoolLong("help", 'h', "show this help and exit")
	}

	argv := append([]string{s.Name()}, args...)
	if err := opts.Getopt(argv, nil); err != nil {
		in.Logger().Printf("invalid invocation of %s: %v", s.Name(), err)
		return interpreter.Usagef(s.Name(), "%v", err)
	}

	if *s.ShowHelp {
		s.PrintHelp(in.Stdout)
		return nil
	}

	return callback(opts.Args())
}

const (
	colorAlways = "always"
	colorAuto   = "auto"
	colorNever  = "never"
)

// ColorPrinter styles listing output according to a --color flag.
type ColorPrinter struct {
	value *string
}

// Init sets up the flag to determine the color output.
func (c *ColorPrinter) Init(flags *getopt.Set) {
	c.value = flags.EnumLong(
		"color",
		rune(0), // No short flag.
		[]string{colorAlways, colorAuto, colorNever},
		colorAuto,
		"colorize the output (always|auto|never)")
}

// Sprint styles s, auto defers to the process-wide colour mode.
func (c *ColorPrinter) Sprint(style colours.TextStyle, s string) string {
	switch *c.value {
	case colorNever:
		return s
	case colorAlways:
		return colours.ForceStyles(s, style)
	default:
		return colours.AddStyles(s, style)
	}
}

// requireOperands fails with a usage error if fewer than n operands exist.
func requireOperands(name string, operands []string, n int) error {
	if len(operands) < n {
		return interpreter.Usagef(name, "missing operand")
	}
	return nil
}
