package paths

import (
	"regexp"
)

// Pattern is a regular expression that must match a whole path.
type Pattern struct {
	expr     string
	anchored *regexp.Regexp
}

// CompilePattern compiles expr for full matching.
func CompilePattern(expr string) (Pattern, error) {
	if _, err := regexp.Compile(expr); err != nil {
		return Pattern{}, err
	}
	anchored, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return Pattern{}, err
	}
	return Pattern{expr: expr, anchored: anchored}, nil
}

// MustCompilePattern is like CompilePattern but panics on a bad expression.
func MustCompilePattern(expr string) Pattern {
	p, err := CompilePattern(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Match reports whether s matches the pattern in full.
func (p Pattern) Match(s string) bool {
	return p.anchored != nil && p.anchored.MatchString(s)
}

func (p Pattern) String() string {
	return p.expr
}
