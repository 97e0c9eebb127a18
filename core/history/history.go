// Package history records executed command lines in an append-only file.
package history

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// Log is an append-only record of command lines, one per line.
type Log struct {
	fs   afero.Fs
	path string
}

// Open attaches to the history file at path, creating it if needed.
func Open(fsys afero.Fs, path string) (*Log, error) {
	fd, err := fsys.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("couldn't create history file: %w", err)
	}
	if err := fd.Close(); err != nil {
		return nil, err
	}
	return &Log{fs: fsys, path: path}, nil
}

// Path returns the location of the history file.
func (l *Log) Path() string {
	return l.path
}

// Add appends a line. Embedded newlines are replaced so each record stays
// on one line.
func (l *Log) Add(line string) error {
	line = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(line)

	fd, err := l.fs.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(fd, line); err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

// Lines reads every recorded line in order.
func (l *Log) Lines() ([]string, error) {
	fd, err := l.fs.Open(l.path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	var out []string
	scanner := bufio.NewScanner(fd)
	for scanner.Scan() {
		out = append(out, scanner.Text())
	}
	return out, scanner.Err()
}

// Clear removes every recorded line.
func (l *Log) Clear() error {
	fd, err := l.fs.OpenFile(l.path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	return fd.Close()
}
