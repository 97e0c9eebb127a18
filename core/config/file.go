package config

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/josephlewis42/posh/core/colours"
)

// fileConfig is the persisted schema. Pointer fields distinguish a
// missing key from a zero value.
type fileConfig struct {
	ShowTime            *bool             `json:"show_time"`
	ShowUsername        *bool             `json:"show_username"`
	RecordHistory       *bool             `json:"record_history"`
	ShortenPath         *bool             `json:"shorten_path"`
	ShortenedPathLength *int              `json:"shortened_path_length" validate:"omitempty,gt=0"`
	Colours             *fileColours      `json:"colours"`
	Aliases             map[string]string `json:"aliases" validate:"dive,keys,required,endkeys,required"`
}

type fileColours struct {
	Time          *string `json:"time"`
	CurrentPath   *string `json:"current_path"`
	UserName      *string `json:"user_name"`
	DirectoryPath *string `json:"directory_path"`
	FilePath      *string `json:"file_path"`
	Errors        *string `json:"errors"`
}

// savedConfig is the shape written back to disk, every key present.
type savedConfig struct {
	ShowTime            bool              `json:"show_time"`
	ShowUsername        bool              `json:"show_username"`
	RecordHistory       bool              `json:"record_history"`
	ShortenPath         bool              `json:"shorten_path"`
	ShortenedPathLength int               `json:"shortened_path_length"`
	Colours             savedColours      `json:"colours"`
	Aliases             map[string]string `json:"aliases"`
}

type savedColours struct {
	Time          string `json:"time"`
	CurrentPath   string `json:"current_path"`
	UserName      string `json:"user_name"`
	DirectoryPath string `json:"directory_path"`
	FilePath      string `json:"file_path"`
	Errors        string `json:"errors"`
}

// Validate the file for semantic errors the decoder can't catch.
func (f *fileConfig) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	return validate.Struct(f)
}

// toConfig fills unset keys with defaults. Unknown colour names are
// reported and replaced with that slot's default.
func (f *fileConfig) toConfig(loc Location, errLine func(style colours.TextStyle, format string, a ...interface{})) *Config {
	cfg := Defaults()
	cfg.Location = loc

	setBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	setBool(&cfg.ShowTime, f.ShowTime)
	setBool(&cfg.ShowUsername, f.ShowUsername)
	setBool(&cfg.RecordHistory, f.RecordHistory)
	setBool(&cfg.ShortenPath, f.ShortenPath)
	if f.ShortenedPathLength != nil {
		cfg.ShortenedPathLength = *f.ShortenedPathLength
	}

	if f.Colours != nil {
		// Errors goes first so the rest are reported in the configured style.
		parseColour(&cfg.Colours.Errors, f.Colours.Errors, cfg.Colours.Errors, errLine)
		for _, slot := range []struct {
			dst *colours.TextStyle
			src *string
		}{
			{&cfg.Colours.Time, f.Colours.Time},
			{&cfg.Colours.CurrentPath, f.Colours.CurrentPath},
			{&cfg.Colours.Username, f.Colours.UserName},
			{&cfg.Colours.DirectoryPath, f.Colours.DirectoryPath},
			{&cfg.Colours.FilePath, f.Colours.FilePath},
		} {
			parseColour(slot.dst, slot.src, cfg.Colours.Errors, errLine)
		}
	}

	for k, v := range f.Aliases {
		cfg.Aliases[k] = v
	}

	return cfg
}

// parseColour leaves dst at its default when name is missing or unknown.
func parseColour(dst *colours.TextStyle, name *string, errStyle colours.TextStyle, errLine func(style colours.TextStyle, format string, a ...interface{})) {
	if name == nil {
		return
	}
	style, ok := colours.Lookup(*name)
	if !ok {
		errLine(errStyle, "Error: invalid colour %q", *name)
		return
	}
	*dst = style
}

func toSaved(c *Config) savedConfig {
	aliases := make(map[string]string, len(c.Aliases))
	for k, v := range c.Aliases {
		aliases[k] = v
	}

	return savedConfig{
		ShowTime:            c.ShowTime,
		ShowUsername:        c.ShowUsername,
		RecordHistory:       c.RecordHistory,
		ShortenPath:         c.ShortenPath,
		ShortenedPathLength: c.ShortenedPathLength,
		Colours: savedColours{
			Time:          c.Colours.Time.String(),
			CurrentPath:   c.Colours.CurrentPath.String(),
			UserName:      c.Colours.Username.String(),
			DirectoryPath: c.Colours.DirectoryPath.String(),
			FilePath:      c.Colours.FilePath.String(),
			Errors:        c.Colours.Errors.String(),
		},
		Aliases: aliases,
	}
}
