package commands

import (
	"fmt"

	"github.com/josephlewis42/posh/core/config"
	"github.com/josephlewis42/posh/core/interpreter"
)

const configUse = `config [show | get KEY | set KEY VALUE | reload | save]`

// Config inspects and edits the session configuration.
func Config(in *interpreter.Interpreter, args []string) error {
	cmd := &SimpleCommand{
		Use:   configUse,
		Short: "Show or change settings, set only lasts until reload unless saved.",
	}

	return cmd.Run(in, args, func(operands []string) error {
		if len(operands) == 0 {
			operands = []string{"show"}
		}

		sub, rest := operands[0], operands[1:]
		expect := func(n int) error {
			if len(rest) != n {
				return interpreter.Usagef(cmd.Name(), "usage: %s", configUse)
			}
			return nil
		}

		switch sub {
		case "show":
			if err := expect(0); err != nil {
				return err
			}
			showConfig(in)

		case "get":
			if err := expect(1); err != nil {
				return err
			}
			value, err := in.Config.Get(rest[0])
			if err != nil {
				return fmt.Errorf("%s: %w", cmd.Name(), err)
			}
			fmt.Fprintln(in.Stdout, value)

		case "set":
			if err := expect(2); err != nil {
				return err
			}
			if err := in.Config.Set(rest[0], rest[1]); err != nil {
				return fmt.Errorf("%s: %w", cmd.Name(), err)
			}

		case "reload":
			if err := expect(0); err != nil {
				return err
			}
			in.ReloadConfig()

		case "save":
			if err := expect(0); err != nil {
				return err
			}
			in.SaveConfig()

		default:
			return interpreter.Usagef(cmd.Name(), "unknown subcommand %q", sub)
		}
		return nil
	})
}

func showConfig(in *interpreter.Interpreter) {
	fmt.Fprintf(in.Stdout, "# %s\n", in.Config.Location)
	for _, key := range config.Keys() {
		value, _ := in.Config.Get(key)
		fmt.Fprintf(in.Stdout, "%s = %s\n", key, value)
	}
	for _, name := range in.Config.AliasNames() {
		fmt.Fprintf(in.Stdout, "aliases.%s = %s\n", name, in.Config.Aliases[name])
	}
}

func init() {
	addBuiltin("config", "Show, change, reload or save the configuration.", Config)
}
