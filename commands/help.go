package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/josephlewis42/posh/core/interpreter"
)

// Help lists the available commands, or shows the help of one.
func Help(in *interpreter.Interpreter, args []string) error {
	cmd := &SimpleCommand{
		Use:   "help [COMMAND]",
		Short: "Display information about builtin commands.",
	}

	return cmd.Run(in, args, func(operands []string) error {
		switch len(operands) {
		case 0:
		case 1:
			factory, ok := in.Registry().Resolve(operands[0])
			if !ok {
				return &interpreter.UnknownCommandError{Name: operands[0]}
			}
			return factory().Execute(in, []string{"--help"})
		default:
			return interpreter.Usagef(cmd.Name(), "too many arguments")
		}

		w := in.Stdout
		fmt.Fprintln(w, "These shell commands are defined internally.  Type `help' to see this list.")
		fmt.Fprintln(w, "Type `help name' to find out more about the command `name'.")
		fmt.Fprintln(w)

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, name := range in.Registry().Names() {
			fmt.Fprintf(tw, "  %s\t%s\n", name, allBuiltins[name].Short)
		}
		tw.Flush()

		if aliases := in.Config.AliasNames(); len(aliases) > 0 {
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Aliases:")
			fmt.Fprintln(w)
			for _, name := range aliases {
				fmt.Fprintf(tw, "  %s\t%s\n", name, in.Config.Aliases[name])
			}
			tw.Flush()
		}
		return nil
	})
}

// Exit quits the shell.
func Exit(in *interpreter.Interpreter, args []string) error {
	in.Quit = true
	return nil
}

func init() {
	addBuiltin("help", "Display information about builtin commands.", Help)
	addBuiltin("exit", "Exit the shell.", Exit)
}
