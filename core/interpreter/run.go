package interpreter

import (
	"io"
	"strings"

	"github.com/abiosoft/readline"
)

// LineReader supplies input lines, *readline.Instance implements it.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

var _ LineReader = (*readline.Instance)(nil)

// Run reads and interprets lines until the input closes or a command sets
// Quit. Command errors are printed and never end the session.
func (in *Interpreter) Run(r LineReader) error {
	for !in.Quit {
		r.SetPrompt(in.Prompt())
		line, err := r.Readline()

		switch {
		case err == io.EOF:
			return nil // Input closed, quit.

		case err == readline.ErrInterrupt:
			continue // Interrupt clears the line.

		case err != nil:
			in.logger.Printf("Error readline: %v", err)
			return err

		case strings.TrimSpace(line) == "":
			continue

		default:
			in.RunLine(line)
		}
	}
	return nil
}

// RunLine records line in the history and interprets it, printing any error.
// It reports whether the line succeeded.
func (in *Interpreter) RunLine(line string) bool {
	in.WriteHistory(line)

	if err := in.InterpretCommand(line); err != nil {
		in.logger.Printf("command %q failed: %v", line, err)
		in.ReportError("Error: %v", err)
		return false
	}
	return true
}
