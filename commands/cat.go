package commands

import (
	"fmt"
	"io"

	"github.com/josephlewis42/posh/core/interpreter"
)

// Cat implements the UNIX cat command.
func Cat(in *interpreter.Interpreter, args []string) error {
	cmd := &SimpleCommand{
		Use:   "cat FILE...",
		Short: "Concatenate FILE(s) to standard output.",
	}

	return cmd.Run(in, args, func(files []string) error {
		if err := requireOperands(cmd.Name(), files, 1); err != nil {
			return err
		}

		for _, arg := range files {
			if err := catFile(in, arg); err != nil {
				return fmt.Errorf("%s: %w", cmd.Name(), err)
			}
		}
		return nil
	})
}

func catFile(in *interpreter.Interpreter, arg string) error {
	p, err := in.Lookup(arg)
	if err != nil {
		return err
	}

	fd, err := in.Fs().Open(p.OSPath())
	if err != nil {
		return err
	}
	defer fd.Close()

	if info, err := fd.Stat(); err == nil && info.IsDir() {
		return fmt.Errorf("%s: is a directory", arg)
	}

	_, err = io.Copy(in.Stdout, fd)
	return err
}

func init() {
	addBuiltin("cat", "Concatenate FILE(s) to standard output.", Cat)
}
