package commands

import (
	"fmt"

	"github.com/josephlewis42/posh/core/interpreter"
)

// Backup copies each path to a free <path>.backup name beside it.
func Backup(in *interpreter.Interpreter, args []string) error {
	cmd := &SimpleCommand{
		Use:   "backup PATH...",
		Short: "Copy each PATH to PATH.backup, or PATH.backup_N if that is taken.",
	}

	return cmd.Run(in, args, func(targets []string) error {
		if err := requireOperands(cmd.Name(), targets, 1); err != nil {
			return err
		}

		for _, arg := range targets {
			p, err := in.Lookup(arg)
			if err != nil {
				return fmt.Errorf("%s: %w", cmd.Name(), err)
			}

			saved, ok := in.Resolver().Backup(p, in)
			if !ok {
				return fmt.Errorf("%s: %q was not backed up", cmd.Name(), arg)
			}
			fmt.Fprintf(in.Stdout, "%s -> %s\n", p, saved)
		}
		return nil
	})
}

func init() {
	addBuiltin("backup", "Back up files and directories.", Backup)
}
