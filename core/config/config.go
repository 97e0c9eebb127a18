package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/josephlewis42/posh/core/colours"
)

const (
	ConfigurationName = "config.json"
	HistoryName       = "history.txt"
	AppLogName        = "posh.log"

	defaultShortenedPathLength = 40
)

// Location is the optional file backing a Config. The zero value is no
// location: the config holds defaults only and is never saved.
type Location struct {
	path string
	set  bool
}

// NoLocation returns an empty Location.
func NoLocation() Location {
	return Location{}
}

// At returns a Location backed by the file at path.
func At(path string) Location {
	return Location{path: path, set: true}
}

// Get returns the backing path and whether one is set.
func (l Location) Get() (string, bool) {
	return l.path, l.set
}

func (l Location) String() string {
	if !l.set {
		return "<none>"
	}
	return l.path
}

// ColourConfig holds the display style of each prompt and listing element.
type ColourConfig struct {
	Time          colours.TextStyle
	CurrentPath   colours.TextStyle
	Username      colours.TextStyle
	DirectoryPath colours.TextStyle
	FilePath      colours.TextStyle
	Errors        colours.TextStyle
}

// DefaultColours returns the default style for every slot.
func DefaultColours() ColourConfig {
	return ColourConfig{
		Time:          colours.White,
		CurrentPath:   colours.LightBlue,
		Username:      colours.White,
		DirectoryPath: colours.LightCyan,
		FilePath:      colours.Green,
		Errors:        colours.LightRed,
	}
}

// slots maps persisted colour keys to their fields.
func (c *ColourConfig) slots() map[string]*colours.TextStyle {
	return map[string]*colours.TextStyle{
		"time":           &c.Time,
		"current_path":   &c.CurrentPath,
		"user_name":      &c.Username,
		"directory_path": &c.DirectoryPath,
		"file_path":      &c.FilePath,
		"errors":         &c.Errors,
	}
}

// Config holds the session-wide shell settings.
type Config struct {
	Location Location

	ShowTime            bool
	ShowUsername        bool
	RecordHistory       bool
	ShortenPath         bool
	ShortenedPathLength int

	Colours ColourConfig

	// Aliases maps an alias to the canonical command name it runs.
	Aliases map[string]string
}

// Defaults returns the default configuration with no backing location.
func Defaults() *Config {
	return &Config{
		ShowTime:            true,
		ShowUsername:        true,
		RecordHistory:       true,
		ShortenPath:         true,
		ShortenedPathLength: defaultShortenedPathLength,
		Colours:             DefaultColours(),
		Aliases:             make(map[string]string),
	}
}

// DefaultsAt returns the default configuration backed by path.
func DefaultsAt(path string) *Config {
	cfg := Defaults()
	cfg.Location = At(path)
	return cfg
}

// Clone returns a deep copy of the config.
func (c *Config) Clone() *Config {
	out := *c
	out.Aliases = make(map[string]string, len(c.Aliases))
	for k, v := range c.Aliases {
		out.Aliases[k] = v
	}
	return &out
}

// Keys lists the settable keys in persisted order.
func Keys() []string {
	return []string{
		"show_time",
		"show_username",
		"record_history",
		"shorten_path",
		"shortened_path_length",
		"colours.time",
		"colours.current_path",
		"colours.user_name",
		"colours.directory_path",
		"colours.file_path",
		"colours.errors",
	}
}

// Get returns the display value of a key from Keys.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "show_time":
		return strconv.FormatBool(c.ShowTime), nil
	case "show_username":
		return strconv.FormatBool(c.ShowUsername), nil
	case "record_history":
		return strconv.FormatBool(c.RecordHistory), nil
	case "shorten_path":
		return strconv.FormatBool(c.ShortenPath), nil
	case "shortened_path_length":
		return strconv.Itoa(c.ShortenedPathLength), nil
	}

	if slot, ok := c.colourSlot(key); ok {
		return slot.String(), nil
	}
	return "", fmt.Errorf("unknown config key %q", key)
}

// Set parses value and assigns it to a key from Keys.
func (c *Config) Set(key, value string) error {
	var flag *bool
	switch key {
	case "show_time":
		flag = &c.ShowTime
	case "show_username":
		flag = &c.ShowUsername
	case "record_history":
		flag = &c.RecordHistory
	case "shorten_path":
		flag = &c.ShortenPath
	case "shortened_path_length":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive integer, got %q", key, value)
		}
		c.ShortenedPathLength = n
		return nil
	}

	if flag != nil {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false, got %q", key, value)
		}
		*flag = b
		return nil
	}

	slot, ok := c.colourSlot(key)
	if !ok {
		return fmt.Errorf("unknown config key %q", key)
	}
	style, ok := colours.Lookup(value)
	if !ok {
		return fmt.Errorf("invalid colour %q, expected one of: %s", value, strings.Join(colours.Names(), ", "))
	}
	*slot = style
	return nil
}

func (c *Config) colourSlot(key string) (*colours.TextStyle, bool) {
	name := strings.TrimPrefix(key, "colours.")
	if name == key {
		return nil, false
	}
	slot, ok := c.Colours.slots()[name]
	return slot, ok
}

// AliasNames returns the configured aliases, sorted.
func (c *Config) AliasNames() []string {
	var out []string
	for k := range c.Aliases {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
