//go:build !windows

package paths

import "strings"

// IsHidden reports whether the final segment of p starts with a dot.
func (r *Resolver) IsHidden(p Path) bool {
	return strings.HasPrefix(p.Name(), ".")
}
