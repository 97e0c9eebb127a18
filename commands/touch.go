package commands

import (
	"fmt"
	"time"

	"github.com/josephlewis42/posh/core/interpreter"
)

// Touch updates modification times, creating missing files.
func Touch(in *interpreter.Interpreter, args []string) error {
	cmd := &SimpleCommand{
		Use:   "touch FILE...",
		Short: "Update the access and modification times of each FILE to the current time.",
	}

	return cmd.Run(in, args, func(files []string) error {
		if err := requireOperands(cmd.Name(), files, 1); err != nil {
			return err
		}

		fsys := in.Fs()
		for _, arg := range files {
			p := in.Abs(arg)

			if _, err := fsys.Stat(p.OSPath()); err == nil {
				now := time.Now()
				if err := fsys.Chtimes(p.OSPath(), now, now); err != nil {
					return fmt.Errorf("%s: %w", cmd.Name(), err)
				}
				continue
			}

			if err := requireParent(in, p); err != nil {
				return fmt.Errorf("%s: cannot touch %q: %w", cmd.Name(), arg, err)
			}
			fd, err := fsys.OpenFile(p.OSPath(), createFlags, filePerm)
			if err != nil {
				return fmt.Errorf("%s: %w", cmd.Name(), err)
			}
			fd.Close()
		}
		return nil
	})
}

func init() {
	addBuiltin("touch", "Change file timestamps.", Touch)
}
