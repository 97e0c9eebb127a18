package commands

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/josephlewis42/posh/core/interpreter"
)

var variableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Set prints the session variables or assigns one.
func Set(in *interpreter.Interpreter, args []string) error {
	cmd := &SimpleCommand{
		Use:   "set [NAME [VALUE]]",
		Short: "Display all variables, or set NAME to VALUE (empty by default).",
	}

	return cmd.Run(in, args, func(operands []string) error {
		switch len(operands) {
		case 0:
			var names []string
			for name := range in.Variables {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				fmt.Fprintf(in.Stdout, "%s=%s\n", name, in.Variables[name])
			}
			return nil

		case 1, 2:
			name := operands[0]
			if !variableName.MatchString(name) {
				return interpreter.Usagef(cmd.Name(), "%q is not a valid variable name", name)
			}
			value := ""
			if len(operands) == 2 {
				value = operands[1]
			}
			in.Variables[name] = value
			return nil

		default:
			return interpreter.Usagef(cmd.Name(), "too many arguments")
		}
	})
}

// Unset removes session variables.
func Unset(in *interpreter.Interpreter, args []string) error {
	cmd := &SimpleCommand{
		Use:   "unset NAME...",
		Short: "Remove each variable NAME.",
	}

	return cmd.Run(in, args, func(names []string) error {
		for _, name := range names {
			delete(in.Variables, name)
		}
		return nil
	})
}

func init() {
	addBuiltin("set", "Set or display shell variables.", Set)
	addBuiltin("unset", "Unset shell variables.", Unset)
}
