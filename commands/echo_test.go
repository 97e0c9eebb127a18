package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnescape(t *testing.T) {
	cases := []struct {
		escaped  string
		expected string
	}{
		{"not escaped", "not escaped"},
		{`newline\n`, "newline\n"},
		{`double-escape\\n`, `double-escape\n`},
		// Octal
		{`\07`, string(rune(7))},
		{`\011`, "\t"},
		{`\0101`, "A"},
		// Hex
		{`\x7`, string(rune(07))},
		{`\x9`, "\t"},
		{`\x4A`, "J"},
		{`\x4Ag`, "Jg"},
		{`\x`, `\x`},
		{`\0377`, "\xff"},
		{`\01234`, "S4"},
		{`\0`, "\x00"},
		// Escaped backslashes aren't reread.
		{`\\x41`, `\x41`},
		{`\\0101`, `\0101`},
		{`\\\n`, "\\\n"},
		// Left alone
		{`\q`, `\q`},
		{`trailing\`, `trailing\`},
	}

	for _, tc := range cases {
		t.Run(tc.escaped, func(t *testing.T) {
			actual := unescape(tc.escaped)

			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestEcho(t *testing.T) {
	goldenTestSuite{
		"plain":     {Line: "echo hello   world"},
		"quoted":    {Line: `echo "a  b" 'c'`},
		"escapes":   {Line: `echo -e 'tab\there\x41'`},
		"raw":       {Line: `echo 'tab\there'`},
		"variables": {Setup: []string{"set NAME posh"}, Line: "echo hi $NAME ${NAME}s $MISSING."},
		"empty":     {Line: "echo"},
	}.Run(t)
}
