package commands

import (
	"fmt"
	"strings"

	"github.com/josephlewis42/posh/core/interpreter"
)

// Alias lists, shows or defines aliases. Definitions accept either
// "NAME TARGET" or "NAME=TARGET". Changes last until the config is saved.
func Alias(in *interpreter.Interpreter, args []string) error {
	cmd := &SimpleCommand{
		Use:   "alias [NAME [TARGET]]",
		Short: "Define or display aliases, TARGET must be a command name.",
	}

	return cmd.Run(in, args, func(operands []string) error {
		if len(operands) == 1 {
			if name, target, ok := strings.Cut(operands[0], "="); ok {
				operands = []string{name, target}
			}
		}

		switch len(operands) {
		case 0:
			for _, name := range in.Config.AliasNames() {
				printAlias(in, name)
			}
			return nil

		case 1:
			if _, ok := in.Config.Aliases[operands[0]]; !ok {
				return fmt.Errorf("%s: %s: not found", cmd.Name(), operands[0])
			}
			printAlias(in, operands[0])
			return nil

		case 2:
			name, target := operands[0], operands[1]
			if name == "" || target == "" {
				return interpreter.Usagef(cmd.Name(), "NAME and TARGET can't be empty")
			}
			in.SetAlias(name, target)
			return nil

		default:
			return interpreter.Usagef(cmd.Name(), "too many arguments")
		}
	})
}

func printAlias(in *interpreter.Interpreter, name string) {
	fmt.Fprintf(in.Stdout, "alias %s='%s'\n", name, in.Config.Aliases[name])
}

// Unalias removes aliases.
func Unalias(in *interpreter.Interpreter, args []string) error {
	cmd := &SimpleCommand{
		Use:   "unalias NAME...",
		Short: "Remove each alias NAME.",
	}

	return cmd.Run(in, args, func(names []string) error {
		if err := requireOperands(cmd.Name(), names, 1); err != nil {
			return err
		}

		for _, name := range names {
			if !in.RemoveAlias(name) {
				return fmt.Errorf("%s: %s: not found", cmd.Name(), name)
			}
		}
		return nil
	})
}

func init() {
	addBuiltin("alias", "Define or display aliases.", Alias)
	addBuiltin("unalias", "Remove aliases.", Unalias)
}
