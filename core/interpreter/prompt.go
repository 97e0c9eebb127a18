package interpreter

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/josephlewis42/posh/core/colours"
)

const (
	promptTimeFormat = "15:04:05"
	promptSuffix     = "$ "
	ellipsis         = "…"
)

// Prompt renders the prompt from the active config.
func (in *Interpreter) Prompt() string {
	cfg := in.Config

	var parts []string
	if cfg.ShowTime {
		parts = append(parts, colours.AddStyles(in.now().Format(promptTimeFormat), cfg.Colours.Time))
	}
	if cfg.ShowUsername && in.username != "" {
		parts = append(parts, colours.AddStyles(in.username, cfg.Colours.Username))
	}

	pwd := in.displayPath()
	if cfg.ShortenPath {
		pwd = shortenLeft(pwd, cfg.ShortenedPathLength)
	}
	parts = append(parts, colours.AddStyles(pwd, cfg.Colours.CurrentPath))

	return strings.Join(parts, " ") + " " + promptSuffix
}

// displayPath shows the working directory with the home directory as "~".
func (in *Interpreter) displayPath() string {
	pwd := in.Cwd.String()
	home := in.resolver.Home()
	if len(home.Segments) > 0 && in.Cwd.HasPrefix(home) {
		pwd = "~" + strings.TrimPrefix(pwd, home.String())
	}
	return pwd
}

// shortenLeft keeps the rightmost display columns of s so the result,
// including a leading ellipsis, is at most width columns wide.
func shortenLeft(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}

	budget := width - runewidth.StringWidth(ellipsis)
	runes := []rune(s)
	start := len(runes)
	for used := 0; start > 0; start-- {
		w := runewidth.RuneWidth(runes[start-1])
		if used+w > budget {
			break
		}
		used += w
	}
	return ellipsis + string(runes[start:])
}
