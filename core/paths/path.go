// Package paths implements shell-style path expressions: normalization of
// ".", "..", "~" and anchors relative to a working directory, plus the
// filesystem helpers builtins share.
package paths

import (
	"path/filepath"
	"strings"
)

// Path is an anchor ("" for relative paths, "/", or on Windows a drive such
// as "C:/") followed by slash separated segments.
type Path struct {
	Anchor   string
	Segments []string
}

// Root is the POSIX root directory.
var Root = Path{Anchor: "/"}

// splitAnchor separates a leading anchor from the rest of a slash path.
func splitAnchor(s string) (anchor, rest string) {
	switch {
	case strings.HasPrefix(s, "/"):
		return "/", s[1:]
	default:
		if anchor, rest, ok := driveAnchor(s); ok {
			return anchor, rest
		}
		return "", s
	}
}

// Parse splits a slash separated path without interpreting "..". Empty and
// "." segments are dropped.
func Parse(s string) Path {
	anchor, rest := splitAnchor(s)
	out := Path{Anchor: anchor}
	for _, seg := range strings.Split(rest, "/") {
		if seg == "" || seg == "." {
			continue
		}
		out.Segments = append(out.Segments, seg)
	}
	return out
}

// FromOS converts a path in the host's format.
func FromOS(s string) Path {
	return Parse(filepath.ToSlash(s))
}

// IsAbs reports whether the path has an anchor.
func (p Path) IsAbs() bool {
	return p.Anchor != ""
}

// String returns the slash separated form, "." for the empty relative path.
func (p Path) String() string {
	if p.Anchor == "" && len(p.Segments) == 0 {
		return "."
	}
	return p.Anchor + strings.Join(p.Segments, "/")
}

// OSPath returns the path in the host's format.
func (p Path) OSPath() string {
	return filepath.FromSlash(p.String())
}

// Name returns the final segment, or "" for an anchor or empty path.
func (p Path) Name() string {
	if len(p.Segments) == 0 {
		return ""
	}
	return p.Segments[len(p.Segments)-1]
}

// Parent drops the final segment. The parent of an anchor is itself.
func (p Path) Parent() Path {
	if len(p.Segments) == 0 {
		return p.Clone()
	}
	return Path{Anchor: p.Anchor, Segments: copySegments(p.Segments[:len(p.Segments)-1])}
}

// Join appends other to p. An absolute other replaces p entirely.
func (p Path) Join(other Path) Path {
	if other.IsAbs() {
		return other.Clone()
	}
	segs := make([]string, 0, len(p.Segments)+len(other.Segments))
	segs = append(segs, p.Segments...)
	segs = append(segs, other.Segments...)
	return Path{Anchor: p.Anchor, Segments: segs}
}

// Child returns p with a single segment appended.
func (p Path) Child(name string) Path {
	return p.Join(Path{Segments: []string{name}})
}

// Clone returns a copy that shares no memory with p.
func (p Path) Clone() Path {
	return Path{Anchor: p.Anchor, Segments: copySegments(p.Segments)}
}

// Equal reports whether both paths have the same anchor and segments.
func (p Path) Equal(other Path) bool {
	if p.Anchor != other.Anchor || len(p.Segments) != len(other.Segments) {
		return false
	}
	for i := range p.Segments {
		if p.Segments[i] != other.Segments[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether prefix is p or one of its ancestors.
func (p Path) HasPrefix(prefix Path) bool {
	if p.Anchor != prefix.Anchor || len(prefix.Segments) > len(p.Segments) {
		return false
	}
	for i, seg := range prefix.Segments {
		if p.Segments[i] != seg {
			return false
		}
	}
	return true
}

func copySegments(segs []string) []string {
	if len(segs) == 0 {
		return nil
	}
	out := make([]string, len(segs))
	copy(out, segs)
	return out
}
