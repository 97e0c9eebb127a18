package commands

import (
	"fmt"
	"os"

	"github.com/josephlewis42/posh/core/interpreter"
	"github.com/josephlewis42/posh/core/paths"
)

const createFlags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC

// resolveTransfer finds the existing source and the destination for cp and
// mv. A destination that is an existing directory receives the source by
// name.
func resolveTransfer(in *interpreter.Interpreter, srcArg, dstArg string) (src, dst paths.Path, srcInfo os.FileInfo, err error) {
	src, err = in.Lookup(srcArg)
	if err != nil {
		return
	}
	srcInfo, err = in.Fs().Stat(src.OSPath())
	if err != nil {
		return
	}

	dst = in.Abs(dstArg)
	if info, statErr := in.Fs().Stat(dst.OSPath()); statErr == nil && info.IsDir() {
		dst = dst.Child(src.Name())
	}
	if src.Equal(dst) || dst.HasPrefix(src) && srcInfo.IsDir() {
		err = fmt.Errorf("cannot move or copy %q into itself", srcArg)
		return
	}
	err = requireParent(in, dst)
	return
}

// Cp copies a file or, with -r, a directory tree.
func Cp(in *interpreter.Interpreter, args []string) error {
	cmd := &SimpleCommand{
		Use:   "cp [-r] SOURCE DEST",
		Short: "Copy SOURCE to DEST, or into DEST if it is a directory.",
	}

	opts := cmd.Flags()
	recursive := opts.Bool('r', "copy directories recursively")

	return cmd.Run(in, args, func(operands []string) error {
		if len(operands) != 2 {
			return interpreter.Usagef(cmd.Name(), "expected SOURCE and DEST")
		}

		src, dst, info, err := resolveTransfer(in, operands[0], operands[1])
		if err != nil {
			return fmt.Errorf("%s: %w", cmd.Name(), err)
		}
		if info.IsDir() && !*recursive {
			return fmt.Errorf("%s: -r not specified; omitting directory %q", cmd.Name(), operands[0])
		}

		if err := paths.Copy(in.Fs(), src.OSPath(), dst.OSPath()); err != nil {
			return fmt.Errorf("%s: %w", cmd.Name(), err)
		}
		return nil
	})
}

// Mv renames a file or directory.
func Mv(in *interpreter.Interpreter, args []string) error {
	cmd := &SimpleCommand{
		Use:   "mv SOURCE DEST",
		Short: "Rename SOURCE to DEST, or move SOURCE into DEST if it is a directory.",
	}

	return cmd.Run(in, args, func(operands []string) error {
		if len(operands) != 2 {
			return interpreter.Usagef(cmd.Name(), "expected SOURCE and DEST")
		}

		src, dst, _, err := resolveTransfer(in, operands[0], operands[1])
		if err != nil {
			return fmt.Errorf("%s: %w", cmd.Name(), err)
		}

		if err := in.Fs().Rename(src.OSPath(), dst.OSPath()); err != nil {
			return fmt.Errorf("%s: %w", cmd.Name(), err)
		}
		return nil
	})
}

func init() {
	addBuiltin("cp", "Copy files and directories.", Cp)
	addBuiltin("mv", "Move (rename) files.", Mv)
}
