package interpreter

import (
	"bytes"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephlewis42/posh/core/config"
	"github.com/josephlewis42/posh/core/paths"
	"github.com/josephlewis42/posh/core/shell"
)

const testDataDir = "/data"

var errBoom = errors.New("boom")

func init() {
	color.NoColor = true
}

// recorder collects the names of executed commands.
type recorder struct {
	calls []string
}

func (r *recorder) factory(name string, err error) Factory {
	return func() Handler {
		return HandlerFunc(func(in *Interpreter, args []string) error {
			r.calls = append(r.calls, name)
			return err
		})
	}
}

func (r *recorder) catalogue() map[string]Factory {
	return map[string]Factory{
		"ok":   r.factory("ok", nil),
		"ok2":  r.factory("ok2", nil),
		"fail": r.factory("fail", errBoom),
		"list": r.factory("list", nil),
		"quit": func() Handler {
			return HandlerFunc(func(in *Interpreter, args []string) error {
				r.calls = append(r.calls, "quit")
				in.Quit = true
				return nil
			})
		},
	}
}

type testSession struct {
	*Interpreter
	fs     afero.Fs
	rec    *recorder
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestSession(t *testing.T, configJSON string) *testSession {
	t.Helper()

	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll(testDataDir, 0700))
	require.NoError(t, fsys.MkdirAll("/home/user/projects", 0755))
	if configJSON != "" {
		require.NoError(t, afero.WriteFile(fsys, testDataDir+"/"+config.ConfigurationName, []byte(configJSON), 0600))
	}

	rec := &recorder{}
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	in, err := New(Options{
		Fs:        fsys,
		StartDir:  paths.Parse("/home/user"),
		Home:      paths.Parse("/home/user"),
		DataDir:   testDataDir,
		Catalogue: rec.catalogue(),
		Stdout:    stdout,
		Stderr:    stderr,
		Logger:    log.New(io.Discard, "", 0),
		Username:  "user",
		Now: func() time.Time {
			return time.Date(2006, 1, 2, 3, 4, 5, 0, time.UTC)
		},
	})
	require.NoError(t, err)

	return &testSession{Interpreter: in, fs: fsys, rec: rec, stdout: stdout, stderr: stderr}
}

func TestNewRejectsRelativeDirs(t *testing.T) {
	_, err := New(Options{Fs: afero.NewMemMapFs(), StartDir: paths.Parse("here"), Home: paths.Parse("/home")})
	assert.Error(t, err)

	_, err = New(Options{Fs: afero.NewMemMapFs(), StartDir: paths.Parse("/"), Home: paths.Parse("home")})
	assert.Error(t, err)
}

func TestInterpretCommand(t *testing.T) {
	cases := []struct {
		line     string
		calls    []string
		checkErr func(t *testing.T, err error)
	}{
		{"", nil, nil},
		{"ok", []string{"ok"}, nil},
		{"ok ; ok2", []string{"ok", "ok2"}, nil},
		{"fail ; ok", []string{"fail"}, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, errBoom)
		}},
		{"ok; fail; ok2", []string{"ok", "fail"}, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, errBoom)
		}},
		{"ok; nope; ok2", []string{"ok"}, func(t *testing.T, err error) {
			var unknown *UnknownCommandError
			if assert.True(t, errors.As(err, &unknown)) {
				assert.Equal(t, "nope", unknown.Name)
			}
		}},
		{`ok; ok2 "unterminated`, nil, func(t *testing.T, err error) {
			var parseErr *shell.ParseError
			assert.True(t, errors.As(err, &parseErr))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			s := newTestSession(t, "")
			err := s.InterpretCommand(tc.line)

			if tc.checkErr == nil {
				assert.NoError(t, err)
			} else {
				tc.checkErr(t, err)
			}
			assert.Equal(t, tc.calls, s.rec.calls)
		})
	}
}

func TestHandlerReceivesArgs(t *testing.T) {
	s := newTestSession(t, "")

	var got []string
	s.catalogue["args"] = func() Handler {
		return HandlerFunc(func(in *Interpreter, args []string) error {
			got = args
			return nil
		})
	}

	assert.NoError(t, s.InterpretCommand(`args a "b c"`))
	assert.Equal(t, []string{"a", "b c"}, got)
}

func TestAliases(t *testing.T) {
	s := newTestSession(t, `{"aliases": {"ll": "list", "a": "ll"}}`)

	assert.NoError(t, s.InterpretCommand("ll"))
	assert.Equal(t, []string{"list"}, s.rec.calls)

	var unknown *UnknownCommandError
	assert.True(t, errors.As(s.InterpretCommand("a"), &unknown), "aliases don't chain")

	s.SetAlias("go", "ok")
	assert.NoError(t, s.InterpretCommand("go"))
	assert.True(t, s.RemoveAlias("go"))
	assert.False(t, s.RemoveAlias("go"))
	assert.Error(t, s.InterpretCommand("go"))
}

func TestReloadConfigRebuildsRegistry(t *testing.T) {
	s := newTestSession(t, `{"aliases": {"x": "ok"}}`)
	assert.NoError(t, s.InterpretCommand("x"))

	require.NoError(t, afero.WriteFile(s.fs, testDataDir+"/config.json", []byte(`{"aliases": {"y": "ok2"}}`), 0600))
	s.ReloadConfig()

	assert.Error(t, s.InterpretCommand("x"))
	assert.NoError(t, s.InterpretCommand("y"))
	assert.Equal(t, []string{"ok", "ok2"}, s.rec.calls)
}

func TestReloadConfigWithoutLocation(t *testing.T) {
	s := newTestSession(t, "")
	s.Config = config.Defaults()
	s.SetAlias("x", "ok")
	s.Config.ShowTime = false

	s.ReloadConfig()

	assert.Equal(t, config.Defaults(), s.Config)
	assert.Error(t, s.InterpretCommand("x"))
}

func TestSaveConfig(t *testing.T) {
	s := newTestSession(t, "")
	s.Config.ShowTime = false
	s.SaveConfig()

	s.Config.ShowTime = true
	s.ReloadConfig()
	assert.False(t, s.Config.ShowTime)
}

func TestWriteHistory(t *testing.T) {
	s := newTestSession(t, "")
	require.NotNil(t, s.History)

	s.WriteHistory("ok")
	s.Config.RecordHistory = false
	s.WriteHistory("not recorded")
	s.Config.RecordHistory = true
	s.WriteHistory("ok2")

	lines, err := s.History.Lines()
	assert.NoError(t, err)
	assert.Equal(t, []string{"ok", "ok2"}, lines)

	s.History = nil
	s.WriteHistory("no log attached")
}

func TestMissingDataDir(t *testing.T) {
	for name, dir := range map[string]string{"unset": "", "missing": "/does/not/exist"} {
		t.Run(name, func(t *testing.T) {
			in, err := New(Options{
				Fs:       afero.NewMemMapFs(),
				StartDir: paths.Parse("/"),
				Home:     paths.Parse("/home/user"),
				DataDir:  dir,
				Stderr:   io.Discard,
			})
			require.NoError(t, err)

			assert.Nil(t, in.History)
			assert.Equal(t, config.Defaults(), in.Config)
			_, ok := in.Config.Location.Get()
			assert.False(t, ok)
		})
	}
}

func TestReportError(t *testing.T) {
	s := newTestSession(t, "")
	s.ReportError("Error: %s", "bad")
	assert.Equal(t, "Error: bad\n", s.stderr.String())
}

func TestChdir(t *testing.T) {
	s := newTestSession(t, "")
	require.NoError(t, afero.WriteFile(s.fs, "/home/user/file.txt", nil, 0644))

	assert.NoError(t, s.Chdir("projects"))
	assert.Equal(t, "/home/user/projects", s.Cwd.String())
	assert.Equal(t, "/home/user/projects", s.Variables["PWD"])

	assert.NoError(t, s.Chdir(".."))
	assert.Equal(t, "/home/user", s.Cwd.String())

	assert.Error(t, s.Chdir("file.txt"))
	assert.True(t, paths.IsNotFound(s.Chdir("missing")))
	assert.Equal(t, "/home/user", s.Cwd.String())

	assert.NoError(t, s.Chdir("/"))
	assert.Equal(t, "/", s.Cwd.String())
	assert.NoError(t, s.Chdir("~/projects"))
	assert.Equal(t, "/home/user/projects", s.Cwd.String())
}

func TestExpandVariables(t *testing.T) {
	s := newTestSession(t, "")
	s.Variables["NAME"] = "posh"

	assert.Equal(t, "hi posh posh !", s.ExpandVariables("hi $NAME ${NAME} $MISSING!"))
}

func TestPrompt(t *testing.T) {
	s := newTestSession(t, "")
	assert.Equal(t, "03:04:05 user ~ $ ", s.Prompt())

	s.Config.ShowTime = false
	s.Config.ShowUsername = false
	s.Cwd = paths.Parse("/home/user/projects/posh")
	assert.Equal(t, "~/projects/posh $ ", s.Prompt())

	s.Config.ShortenedPathLength = 8
	assert.Equal(t, "…ts/posh $ ", s.Prompt())

	s.Config.ShortenPath = false
	s.Cwd = paths.Parse("/usr/local/share")
	assert.Equal(t, "/usr/local/share $ ", s.Prompt())
}

func TestShortenLeft(t *testing.T) {
	cases := []struct {
		in       string
		width    int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"~/aaaa/bbbb/cccc", 10, "…bbbb/cccc"},
		{"~/日本語/ディレクトリ", 9, "…レクトリ"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.expected, shortenLeft(tc.in, tc.width))
		})
	}
}

type fakeReader struct {
	lines   []string
	errs    []error
	prompts []string
}

func (f *fakeReader) SetPrompt(prompt string) {
	f.prompts = append(f.prompts, prompt)
}

func (f *fakeReader) Readline() (string, error) {
	if len(f.lines) == 0 {
		return "", io.EOF
	}
	line, err := f.lines[0], f.errs[0]
	f.lines, f.errs = f.lines[1:], f.errs[1:]
	return line, err
}

func TestRun(t *testing.T) {
	s := newTestSession(t, "")
	reader := &fakeReader{
		lines: []string{"ok", "  ", "half typed", "fail; ok2", "nope", "ok2"},
		errs:  []error{nil, nil, readline.ErrInterrupt, nil, nil, nil},
	}

	assert.NoError(t, s.Run(reader))
	assert.Equal(t, []string{"ok", "fail", "ok2"}, s.rec.calls)
	assert.Equal(t, "Error: boom\nError: unknown command \"nope\"\n", s.stderr.String())
	assert.Len(t, reader.prompts, 7)

	lines, err := s.History.Lines()
	assert.NoError(t, err)
	assert.Equal(t, []string{"ok", "fail; ok2", "nope", "ok2"}, lines)
}

func TestRunStopsOnQuit(t *testing.T) {
	s := newTestSession(t, "")
	reader := &fakeReader{
		lines: []string{"ok; quit; ok2", "ok"},
		errs:  []error{nil, nil},
	}

	assert.NoError(t, s.Run(reader))
	assert.Equal(t, []string{"ok", "quit", "ok2"}, s.rec.calls)
	assert.Len(t, reader.lines, 1)
}

func TestRunReaderFailure(t *testing.T) {
	s := newTestSession(t, "")
	readErr := errors.New("tty gone")
	reader := &fakeReader{lines: []string{""}, errs: []error{readErr}}

	assert.ErrorIs(t, s.Run(reader), readErr)
}
