package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	"github.com/josephlewis42/posh/core/colours"
)

//go:embed default/config.json
var defaultConfigData []byte

// Store loads and saves configurations. Failures are never returned: they
// are logged and reported to the user, and a safe default is used.
type Store struct {
	fs     afero.Fs
	logger *log.Logger
	errw   io.Writer
}

// NewStore creates a Store. User facing errors are written to errw.
func NewStore(fsys afero.Fs, logger *log.Logger, errw io.Writer) *Store {
	return &Store{fs: fsys, logger: logger, errw: errw}
}

func (s *Store) report(style colours.TextStyle, format string, a ...interface{}) {
	(&colours.ErrorPrinter{W: s.errw, Style: style}).ReportError(format, a...)
}

// Load reads the configuration at path. The path is recorded even when the
// file can't be read so a later Save creates it.
func (s *Store) Load(path string) *Config {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		s.logger.Printf("failed to open config file @ %q: %v", path, err)
		return DefaultsAt(path)
	}

	var file fileConfig
	err = yaml.UnmarshalStrict(data, &file)
	if err == nil {
		err = file.Validate()
	}
	if err != nil {
		s.logger.Printf("failed to create config from %q: %v", path, err)
		cfg := DefaultsAt(path)
		s.report(cfg.Colours.Errors, "Error: invalid config")
		return cfg
	}

	return file.toConfig(At(path), s.report)
}

// Save writes the full schema to the config's location, if it has one.
func (s *Store) Save(c *Config) {
	path, ok := c.Location.Get()
	if !ok {
		return
	}

	if err := s.write(path, c); err != nil {
		s.logger.Printf("failed to save config: %v", err)
		s.report(c.Colours.Errors, "failed to save config")
	}
}

func (s *Store) write(path string, c *Config) error {
	data, err := json.MarshalIndent(toSaved(c), "", "    ")
	if err != nil {
		return err
	}
	return afero.WriteFile(s.fs, path, append(data, '\n'), 0600)
}

// Initialize creates the data directory and writes the default
// configuration if none exists yet.
func Initialize(fsys afero.Fs, dir string, logger *log.Logger) error {
	if err := fsys.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("couldn't create data directory: %w", err)
	}

	configPath := filepath.Join(dir, ConfigurationName)
	switch _, err := fsys.Stat(configPath); {
	case err == nil:
		logger.Printf("Config already exists: %s", configPath)
		return nil
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	logger.Printf("Writing default config: %s", configPath)
	if err := afero.WriteFile(fsys, configPath, defaultConfigData, 0600); err != nil {
		return err
	}

	historyPath := filepath.Join(dir, HistoryName)
	fd, err := fsys.OpenFile(historyPath, os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	return fd.Close()
}
