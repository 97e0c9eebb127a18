//go:build windows

package paths

import "syscall"

// IsHidden reports whether p has the hidden file attribute set.
func (r *Resolver) IsHidden(p Path) bool {
	info, err := r.fs.Stat(p.OSPath())
	if err != nil {
		return false
	}
	attrs, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return false
	}
	return attrs.FileAttributes&syscall.FILE_ATTRIBUTE_HIDDEN != 0
}
