package commands

import (
	"fmt"

	"github.com/josephlewis42/posh/core/interpreter"
)

// Cd changes the working directory, defaulting to home. "cd -" returns to
// the previous directory.
func Cd(in *interpreter.Interpreter, args []string) error {
	cmd := &SimpleCommand{
		Use:   "cd [DIR]",
		Short: "Change the shell working directory.",
	}

	return cmd.Run(in, args, func(operands []string) error {
		target := "~"
		switch len(operands) {
		case 0:
		case 1:
			target = operands[0]
		default:
			return interpreter.Usagef(cmd.Name(), "too many arguments")
		}

		if target == "-" {
			prev, ok := in.Variables["OLDPWD"]
			if !ok || prev == "" {
				return interpreter.Usagef(cmd.Name(), "OLDPWD not set")
			}
			target = prev
		}

		if err := in.Chdir(target); err != nil {
			return fmt.Errorf("%s: %w", cmd.Name(), err)
		}
		return nil
	})
}

// Pwd prints the working directory.
func Pwd(in *interpreter.Interpreter, args []string) error {
	cmd := &SimpleCommand{
		Use:   "pwd",
		Short: "Print the name of the current working directory.",
	}

	return cmd.Run(in, args, func([]string) error {
		fmt.Fprintln(in.Stdout, in.Cwd)
		return nil
	})
}

var _ interpreter.HandlerFunc = Cd

func init() {
	addBuiltin("cd", "Change the shell working directory.", Cd)
	addBuiltin("pwd", "Print the name of the current working directory.", Pwd)
}
