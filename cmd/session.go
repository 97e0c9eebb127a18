package cmd

import (
	"crypto/rand"
	"fmt"
	"io"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"github.com/abiosoft/readline"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/josephlewis42/posh/commands"
	"github.com/josephlewis42/posh/core/config"
	"github.com/josephlewis42/posh/core/interpreter"
	"github.com/josephlewis42/posh/core/paths"
)

// session is a shell bound to the local OS.
type session struct {
	interp *interpreter.Interpreter
	appLog afero.File
}

// openAppLog opens the application log in an append only state. If the data
// directory doesn't exist the log is discarded.
func openAppLog(fsys afero.Fs, dir string) (afero.File, error) {
	if _, err := fsys.Stat(dir); err != nil {
		return nil, nil
	}
	return fsys.OpenFile(filepath.Join(dir, config.AppLogName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// newSessionID returns a sortable unique ID for tagging log lines.
func newSessionID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

func currentUsername() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}

// newFs returns the filesystem for a session. In sandbox mode the OS is
// read only and writes land in memory.
func newFs() afero.Fs {
	base := afero.NewOsFs()
	if !sandbox {
		return base
	}
	return afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(base), afero.NewMemMapFs())
}

func openSession(cmd *cobra.Command) (*session, error) {
	fsys := newFs()

	appLog, err := openAppLog(fsys, dataDir)
	if err != nil {
		return nil, fmt.Errorf("couldn't open app log: %w", err)
	}

	logger := log.New(io.Discard, "", 0)
	if appLog != nil {
		logger = log.New(appLog, fmt.Sprintf("[%s] ", newSessionID()), log.LstdFlags)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	interp, err := interpreter.New(interpreter.Options{
		Fs:        fsys,
		StartDir:  paths.FromOS(wd),
		Home:      paths.FromOS(home),
		DataDir:   dataDir,
		Catalogue: commands.Catalogue(),
		Stdout:    cmd.OutOrStdout(),
		Stderr:    cmd.ErrOrStderr(),
		Logger:    logger,
		Username:  currentUsername(),
	})
	if err != nil {
		return nil, err
	}
	logger.Printf("session started: %s", interp)

	return &session{interp: interp, appLog: appLog}, nil
}

// interactive runs the read loop on the terminal.
func (s *session) interactive(cmd *cobra.Command) error {
	var completions []readline.PrefixCompleterInterface
	for _, name := range s.interp.Registry().Names() {
		completions = append(completions, readline.PcItem(name))
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 s.interp.Prompt(),
		AutoComplete:           readline.NewPrefixCompleter(completions...),
		DisableAutoSaveHistory: true,
		InterruptPrompt:        "^C",
		EOFPrompt:              "exit",
		Stdout:                 cmd.OutOrStdout(),
		Stderr:                 cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	// Seed the line editor with previous sessions.
	if s.interp.History != nil {
		lines, err := s.interp.History.Lines()
		if err != nil {
			s.interp.Logger().Printf("couldn't read history: %v", err)
		}
		for _, line := range lines {
			rl.SaveHistory(line)
		}
	}

	return s.interp.Run(&recordingReader{Instance: rl})
}

// Close releases the app log.
func (s *session) Close() error {
	s.interp.Logger().Print("session ended")
	if s.appLog == nil {
		return nil
	}
	return s.appLog.Close()
}

// recordingReader adds each line read to the line editor's in-memory history.
type recordingReader struct {
	*readline.Instance
}

func (r *recordingReader) Readline() (string, error) {
	line, err := r.Instance.Readline()
	if err == nil && line != "" {
		r.Instance.SaveHistory(line)
	}
	return line, err
}

var _ interpreter.LineReader = (*recordingReader)(nil)
