package commands

import (
	"fmt"
	"strings"

	"github.com/josephlewis42/posh/core/interpreter"
)

var simpleEscapes = map[byte]byte{
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'\\': '\\',
	'b':  '\b',
	'a':  '\a',
	'f':  '\f',
	'v':  '\v',
}

// unescape expands echo -e backslash sequences in a single pass, so the
// output of one sequence is never read as the start of another. \0NNN takes
// up to three octal digits and \xHH up to two hex digits, both yield a raw
// byte. Unknown sequences are kept as written.
func unescape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}

		next := s[i+1]
		if c, ok := simpleEscapes[next]; ok {
			b.WriteByte(c)
			i++
			continue
		}

		switch next {
		case '0':
			n, value := scanDigits(s[i+2:], 3, 8)
			b.WriteByte(byte(value))
			i += 1 + n
		case 'x':
			n, value := scanDigits(s[i+2:], 2, 16)
			if n == 0 {
				b.WriteByte('\\')
				continue
			}
			b.WriteByte(byte(value))
			i += 1 + n
		default:
			b.WriteByte('\\')
		}
	}
	return b.String()
}

// scanDigits reads up to max leading digits of s in the given base.
func scanDigits(s string, max int, base uint64) (n int, value uint64) {
	for n < max && n < len(s) {
		d, ok := digitValue(s[n])
		if !ok || d >= base {
			break
		}
		value = value*base + d
		n++
	}
	return n, value
}

func digitValue(c byte) (uint64, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint64(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint64(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return uint64(c-'A') + 10, true
	}
	return 0, false
}

// Echo prints its arguments after expanding session variables.
func Echo(in *interpreter.Interpreter, args []string) error {
	cmd := &SimpleCommand{
		Use:   "echo [-e] [ARG]...",
		Short: "Display a line of text.",
	}

	opt := cmd.Flags()
	escaped := opt.Bool('e', "interpret backslash escapes")

	return cmd.Run(in, args, func(words []string) error {
		w := in.Stdout
		for i, arg := range words {
			if i > 0 {
				fmt.Fprint(w, " ")
			}

			arg = in.ExpandVariables(arg)
			if *escaped {
				arg = unescape(arg)
			}

			fmt.Fprint(w, arg)
		}

		fmt.Fprintln(w)

		return nil
	})
}

func init() {
	addBuiltin("echo", "Display a line of text.", Echo)
}
