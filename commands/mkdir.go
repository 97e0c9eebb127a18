package commands

import (
	"fmt"
	"os"

	"github.com/josephlewis42/posh/core/interpreter"
	"github.com/josephlewis42/posh/core/paths"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// requireParent checks that the directory containing p exists.
func requireParent(in *interpreter.Interpreter, p paths.Path) error {
	parent := p.Parent()
	info, err := in.Fs().Stat(parent.OSPath())
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%s: %w", parent, paths.ErrNotFound)
	case err != nil:
		return err
	case !info.IsDir():
		return fmt.Errorf("%s: not a directory", parent)
	}
	return nil
}

// Mkdir creates directories.
func Mkdir(in *interpreter.Interpreter, args []string) error {
	cmd := &SimpleCommand{
		Use:   "mkdir [-p] DIRECTORY...",
		Short: "Create the DIRECTORY(ies), if they do not already exist.",
	}

	opts := cmd.Flags()
	parents := opts.Bool('p', "no error if existing, make parent directories as needed")

	return cmd.Run(in, args, func(dirs []string) error {
		if err := requireOperands(cmd.Name(), dirs, 1); err != nil {
			return err
		}

		for _, arg := range dirs {
			if err := mkdir(in, in.Abs(arg), *parents); err != nil {
				return fmt.Errorf("%s: cannot create directory %q: %w", cmd.Name(), arg, err)
			}
		}
		return nil
	})
}

func mkdir(in *interpreter.Interpreter, p paths.Path, parents bool) error {
	fsys := in.Fs()
	if parents {
		return fsys.MkdirAll(p.OSPath(), dirPerm)
	}

	if _, err := fsys.Stat(p.OSPath()); err == nil {
		return os.ErrExist
	}
	if err := requireParent(in, p); err != nil {
		return err
	}
	return fsys.Mkdir(p.OSPath(), dirPerm)
}

func init() {
	addBuiltin("mkdir", "Create directories.", Mkdir)
}
