// Package interpreter owns the state of a shell session and drives each
// input line through parsing, alias resolution and execution.
package interpreter

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/josephlewis42/posh/core/colours"
	"github.com/josephlewis42/posh/core/config"
	"github.com/josephlewis42/posh/core/history"
	"github.com/josephlewis42/posh/core/paths"
	"github.com/josephlewis42/posh/core/shell"
)

// Options configure a new Interpreter.
type Options struct {
	// Fs is the filesystem commands operate on.
	Fs afero.Fs
	// StartDir is the initial working directory, it must be absolute.
	StartDir paths.Path
	// Home is the user's home directory, it must be absolute.
	Home paths.Path
	// DataDir holds config.json and history.txt. If it's empty or doesn't
	// exist the session uses defaults and records no history.
	DataDir string
	// Catalogue holds the available commands by canonical name.
	Catalogue map[string]Factory

	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger

	// Username is shown in the prompt.
	Username string
	// Now is the prompt's time source, defaults to time.Now.
	Now func() time.Time
}

// Interpreter holds the mutable state of a single shell session. Handlers
// receive it directly and may change any exported field.
type Interpreter struct {
	Cwd       paths.Path
	Variables map[string]string
	Config    *config.Config
	History   *history.Log

	Stdout io.Writer
	Stderr io.Writer

	// Quit ends the session loop after the current line.
	Quit bool

	fs        afero.Fs
	resolver  *paths.Resolver
	store     *config.Store
	catalogue map[string]Factory
	registry  *Registry
	logger    *log.Logger
	username  string
	now       func() time.Time
}

var _ colours.Reporter = (*Interpreter)(nil)

// New creates an interpreter, loading configuration and history from the
// data directory when one is available.
func New(opts Options) (*Interpreter, error) {
	if !opts.StartDir.IsAbs() {
		return nil, fmt.Errorf("starting directory %q is not absolute", opts.StartDir)
	}
	resolver, err := paths.NewResolver(opts.Fs, opts.Home, paths.DefaultCacheSize)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	in := &Interpreter{
		Cwd:       opts.StartDir.Clone(),
		Variables: make(map[string]string),
		Stdout:    opts.Stdout,
		Stderr:    opts.Stderr,
		fs:        opts.Fs,
		resolver:  resolver,
		store:     config.NewStore(opts.Fs, logger, opts.Stderr),
		catalogue: opts.Catalogue,
		logger:    logger,
		username:  opts.Username,
		now:       now,
	}

	in.Config, in.History = in.openDataDir(opts.DataDir)
	in.rebuildRegistry()
	return in, nil
}

func (in *Interpreter) openDataDir(dir string) (*config.Config, *history.Log) {
	if dir == "" {
		in.logger.Println("no data directory, using default config")
		return config.Defaults(), nil
	}
	if _, err := in.fs.Stat(dir); err != nil {
		in.logger.Printf("data directory couldn't be found: %v", err)
		return config.Defaults(), nil
	}

	cfg := in.store.Load(filepath.Join(dir, config.ConfigurationName))

	hist, err := history.Open(in.fs, filepath.Join(dir, config.HistoryName))
	if err != nil {
		in.logger.Printf("history disabled: %v", err)
		return cfg, nil
	}
	return cfg, hist
}

func (in *Interpreter) String() string {
	return fmt.Sprintf("Interpreter{pid: %d, cwd: %q}", os.Getpid(), in.Cwd.String())
}

// Fs returns the filesystem commands operate on.
func (in *Interpreter) Fs() afero.Fs {
	return in.fs
}

// Resolver returns the session's path resolver.
func (in *Interpreter) Resolver() *paths.Resolver {
	return in.resolver
}

// Registry returns the command registry for the active aliases.
func (in *Interpreter) Registry() *Registry {
	return in.registry
}

// Logger returns the application log.
func (in *Interpreter) Logger() *log.Logger {
	return in.logger
}

func (in *Interpreter) rebuildRegistry() {
	in.registry = NewRegistry(in.catalogue, in.Config.Aliases)
}

// InterpretCommand parses line and runs each chained command in order. The
// first failure stops the rest of the line and is returned.
func (in *Interpreter) InterpretCommand(line string) error {
	commands, err := shell.Parse(line)
	if err != nil {
		return err
	}

	for _, cmd := range commands {
		factory, ok := in.registry.Resolve(cmd.Name())
		if !ok {
			return &UnknownCommandError{Name: cmd.Name()}
		}

		if err := factory().Execute(in, cmd.Args()); err != nil {
			return err
		}
	}

	return nil
}

// WriteHistory records line if history is enabled and available.
func (in *Interpreter) WriteHistory(line string) {
	if !in.Config.RecordHistory || in.History == nil {
		return
	}
	if err := in.History.Add(line); err != nil {
		in.logger.Printf("couldn't write history: %v", err)
	}
}

// ReloadConfig reads the config from its backing file, or resets it to the
// defaults if there is none, and rebuilds alias resolution.
func (in *Interpreter) ReloadConfig() {
	if path, ok := in.Config.Location.Get(); ok {
		in.Config = in.store.Load(path)
	} else {
		in.Config = config.Defaults()
	}
	in.rebuildRegistry()
}

// SaveConfig writes the active config to its backing file, if any.
func (in *Interpreter) SaveConfig() {
	in.store.Save(in.Config)
}

// SetAlias makes name run target.
func (in *Interpreter) SetAlias(name, target string) {
	in.Config.Aliases[name] = target
	in.rebuildRegistry()
}

// RemoveAlias deletes an alias, reporting whether it existed.
func (in *Interpreter) RemoveAlias(name string) bool {
	if _, ok := in.Config.Aliases[name]; !ok {
		return false
	}
	delete(in.Config.Aliases, name)
	in.rebuildRegistry()
	return true
}

// ReportError prints a recoverable error in the configured error style.
func (in *Interpreter) ReportError(format string, a ...interface{}) {
	(&colours.ErrorPrinter{W: in.Stderr, Style: in.Config.Colours.Errors}).ReportError(format, a...)
}

// ExpandVariables replaces $NAME and ${NAME} with session variables.
func (in *Interpreter) ExpandVariables(s string) string {
	return os.Expand(s, func(key string) string {
		return in.Variables[key]
	})
}
