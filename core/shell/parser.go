// Package shell splits raw input lines into commands.
//
// The grammar is a small subset of the POSIX shell command language: a line
// is a list of simple commands separated by ';', and each simple command is
// a sequence of words using POSIX quoting and escaping rules. Pipes,
// redirection and compound commands aren't supported.
package shell

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/anmitsu/go-shlex"
)

// Separator chains commands on a single line.
const Separator = ';'

// Command holds the words of a simple command, the first being its name.
type Command []string

// Name returns the command name.
func (c Command) Name() string {
	return c[0]
}

// Args returns the arguments after the name.
func (c Command) Args() []string {
	return c[1:]
}

// ParseError describes a segment of the line that couldn't be tokenized.
type ParseError struct {
	Segment string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("syntax error in %q: %v", strings.TrimSpace(e.Segment), e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse splits line into its chained commands. Blank lines and empty
// segments yield no commands. Bytes that aren't valid UTF-8 are kept as-is.
func Parse(line string) ([]Command, error) {
	var out []Command
	for _, segment := range Split(line) {
		words, err := splitWords(segment)
		if err != nil {
			return nil, &ParseError{Segment: segment, Err: err}
		}
		if len(words) == 0 {
			continue
		}
		out = append(out, Command(words))
	}
	return out, nil
}

// splitWords tokenizes a segment. The tokenizer decodes runes, so invalid
// bytes are swapped for reserved private use runes first and swapped back
// in each word.
func splitWords(segment string) ([]string, error) {
	if utf8.ValidString(segment) {
		return shlex.Split(segment, true)
	}

	words, err := shlex.Split(escapeBytes(segment), true)
	if err != nil {
		return nil, err
	}
	for i, w := range words {
		words[i] = unescapeBytes(w)
	}
	return words, nil
}

// rawByteBase is the first of 256 runes that stand in for raw bytes.
const rawByteBase = 0x10FF00

func isRawByteRune(r rune) bool {
	return r >= rawByteBase && r <= rawByteBase+0xFF
}

func escapeBytes(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if (r == utf8.RuneError && size == 1) || isRawByteRune(r) {
			// Stand-in runes already present are escaped too so the
			// reverse mapping is exact.
			for j := i; j < i+size; j++ {
				b.WriteRune(rawByteBase + rune(s[j]))
			}
		} else {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

func unescapeBytes(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isRawByteRune(r) {
			b.WriteByte(byte(r - rawByteBase))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

type quoteState int

const (
	stateOutside quoteState = iota
	stateSingleQuote
	stateDoubleQuote
)

// Split cuts line at every Separator that isn't quoted or escaped. Quoting
// is left in place for the tokenizer. The line is scanned byte by byte so
// segments are exact substrings, whatever their encoding.
func Split(line string) []string {
	var (
		segments []string
		start    int
		state    = stateOutside
		escaped  bool
	)

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && state != stateSingleQuote:
			escaped = true
		case c == '\'' && state == stateOutside:
			state = stateSingleQuote
		case c == '\'' && state == stateSingleQuote:
			state = stateOutside
		case c == '"' && state == stateOutside:
			state = stateDoubleQuote
		case c == '"' && state == stateDoubleQuote:
			state = stateOutside
		case c == Separator && state == stateOutside:
			segments = append(segments, line[start:i])
			start = i + 1
		}
	}

	return append(segments, line[start:])
}
