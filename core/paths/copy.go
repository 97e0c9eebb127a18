package paths

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/josephlewis42/posh/core/colours"
)

const backupSuffix = ".backup"

// CopyFile copies a regular file's contents, permissions and modification
// time. dst must not already exist.
func CopyFile(fsys afero.Fs, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}

	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return fsys.Chtimes(dst, info.ModTime(), info.ModTime())
}

// CopyTree recursively copies the directory src to dst, which must not
// already exist.
func CopyTree(fsys afero.Fs, src, dst string) error {
	if _, err := fsys.Stat(dst); err == nil {
		return fmt.Errorf("%s: %w", dst, os.ErrExist)
	}

	return afero.Walk(fsys, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if info.IsDir() {
			return fsys.MkdirAll(target, info.Mode().Perm())
		}
		return CopyFile(fsys, path, target)
	})
}

// Copy copies a file or directory tree.
func Copy(fsys afero.Fs, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return CopyTree(fsys, src, dst)
	}
	return CopyFile(fsys, src, dst)
}

// BackupName picks the first free name of <p>.backup, <p>.backup_1,
// <p>.backup_2, ...
func (r *Resolver) BackupName(p Path) Path {
	base := p.String() + backupSuffix
	candidate := Parse(base)
	for i := 1; r.exists(candidate); i++ {
		candidate = Parse(fmt.Sprintf("%s_%d", base, i))
	}
	return candidate
}

// Backup copies p next to itself under a free backup name. It is best
// effort: failures are sent to report and ok is false.
func (r *Resolver) Backup(p Path, report colours.Reporter) (backup Path, ok bool) {
	backup = r.BackupName(p)
	if err := Copy(r.fs, p.OSPath(), backup.OSPath()); err != nil {
		report.ReportError("Error: failed to create backup, %v", err)
		return backup, false
	}
	return backup, true
}
