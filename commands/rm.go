package commands

import (
	"fmt"

	"github.com/josephlewis42/posh/core/interpreter"
)

// Rm removes files and, with -r, directories. With -b each path is
// backed up first and left alone if the backup fails.
func Rm(in *interpreter.Interpreter, args []string) error {
	cmd := &SimpleCommand{
		Use:   "rm [-rb] PATH...",
		Short: "Remove (unlink) the PATH(s).",
	}

	opts := cmd.Flags()
	recursive := opts.Bool('r', "remove directories and their contents recursively")
	backup := opts.Bool('b', "make a backup of each path before removing it")

	return cmd.Run(in, args, func(targets []string) error {
		if err := requireOperands(cmd.Name(), targets, 1); err != nil {
			return err
		}

		fsys := in.Fs()
		for _, arg := range targets {
			p, err := in.Lookup(arg)
			if err != nil {
				return fmt.Errorf("%s: %w", cmd.Name(), err)
			}
			info, err := fsys.Stat(p.OSPath())
			if err != nil {
				return fmt.Errorf("%s: %w", cmd.Name(), err)
			}
			if info.IsDir() && !*recursive {
				return fmt.Errorf("%s: cannot remove %q: is a directory", cmd.Name(), arg)
			}

			if *backup {
				if _, ok := in.Resolver().Backup(p, in); !ok {
					return fmt.Errorf("%s: not removing %q without a backup", cmd.Name(), arg)
				}
			}

			if info.IsDir() {
				err = fsys.RemoveAll(p.OSPath())
			} else {
				err = fsys.Remove(p.OSPath())
			}
			if err != nil {
				return fmt.Errorf("%s: %w", cmd.Name(), err)
			}
			in.Logger().Printf("removed %s", p)
		}
		return nil
	})
}

func init() {
	addBuiltin("rm", "Remove files or directories.", Rm)
}
