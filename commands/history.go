package commands

import (
	"errors"
	"fmt"

	"github.com/josephlewis42/posh/core/interpreter"
)

var errNoHistory = errors.New("no history file is available")

// History prints the recorded command lines or clears them.
func History(in *interpreter.Interpreter, args []string) error {
	cmd := &SimpleCommand{
		Use:   "history [-c]",
		Short: "Display the history list with line numbers.",
	}

	opts := cmd.Flags()
	clearAll := opts.Bool('c', "clear the history by deleting all entries")

	return cmd.Run(in, args, func([]string) error {
		if in.History == nil {
			return fmt.Errorf("%s: %w", cmd.Name(), errNoHistory)
		}

		if *clearAll {
			if err := in.History.Clear(); err != nil {
				return fmt.Errorf("%s: %w", cmd.Name(), err)
			}
			return nil
		}

		lines, err := in.History.Lines()
		if err != nil {
			return fmt.Errorf("%s: %w", cmd.Name(), err)
		}
		for i, line := range lines {
			fmt.Fprintf(in.Stdout, "% 5d  %s\n", i+1, line)
		}
		return nil
	})
}

func init() {
	addBuiltin("history", "Display or clear the command history.", History)
}
