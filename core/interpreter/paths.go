package interpreter

import (
	"fmt"

	"github.com/josephlewis42/posh/core/paths"
)

// Normalize expands raw relative to the working directory.
func (in *Interpreter) Normalize(raw string) paths.Path {
	return in.resolver.Normalize(raw, in.Cwd)
}

// Abs normalizes raw and anchors it at the working directory, for paths
// that may not exist yet.
func (in *Interpreter) Abs(raw string) paths.Path {
	return in.Cwd.Join(in.Normalize(raw))
}

// Lookup normalizes raw and finds it on disk, trying it relative to the
// working directory if needed.
func (in *Interpreter) Lookup(raw string) (paths.Path, error) {
	return in.resolver.ExistsOrPrefixed(in.Normalize(raw), in.Cwd)
}

// Chdir changes the working directory to the directory at raw.
func (in *Interpreter) Chdir(raw string) error {
	target, err := in.Lookup(raw)
	if err != nil {
		return err
	}

	info, err := in.fs.Stat(target.OSPath())
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: not a directory", target)
	}

	in.Cwd = in.Cwd.Join(target)
	in.Variables["OLDPWD"] = in.Variables["PWD"]
	in.Variables["PWD"] = in.Cwd.String()
	return nil
}
