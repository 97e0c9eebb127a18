package paths

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/spf13/afero"
)

const (
	// DefaultCacheSize bounds the number of memoized normalizations.
	DefaultCacheSize = 1024

	homeSegment   = "~"
	parentSegment = ".."
	selfSegment   = "."
)

// ErrNotFound is returned when neither a path nor its cwd-prefixed form
// exist. It matches fs.ErrNotExist.
var ErrNotFound error = notFoundError{}

type notFoundError struct{}

func (notFoundError) Error() string { return "no such file or directory" }

func (notFoundError) Is(target error) bool { return target == fs.ErrNotExist }

type cacheKey struct {
	raw string
	cwd string
}

// Resolver normalizes path expressions against a fixed home directory and
// checks them against a filesystem.
type Resolver struct {
	fs    afero.Fs
	home  Path
	cache *lru.Cache[cacheKey, Path]
}

// NewResolver creates a resolver. The home directory must be absolute and
// stay the same for the lifetime of the resolver since results are cached.
func NewResolver(fsys afero.Fs, home Path, cacheSize int) (*Resolver, error) {
	if !home.IsAbs() {
		return nil, fmt.Errorf("home directory %q is not absolute", home)
	}
	cache, err := lru.New[cacheKey, Path](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Resolver{fs: fsys, home: home.Clone(), cache: cache}, nil
}

// Home returns the home directory.
func (r *Resolver) Home() Path {
	return r.home.Clone()
}

// Fs returns the filesystem the resolver checks paths against.
func (r *Resolver) Fs() afero.Fs {
	return r.fs
}

// NormalizePath is Normalize for an already parsed path.
func (r *Resolver) NormalizePath(p Path, cwd Path) Path {
	return r.Normalize(p.String(), cwd)
}

// Normalize expands "~", ".", ".." and the root anchor in raw, folding the
// segments left to right. A ".." with nothing accumulated reaches into the
// parent of cwd. The filesystem is never consulted.
func (r *Resolver) Normalize(raw string, cwd Path) Path {
	key := cacheKey{raw: raw, cwd: cwd.String()}
	if cached, ok := r.cache.Get(key); ok {
		return cached.Clone()
	}

	out := r.fold(raw, cwd)
	r.cache.Add(key, out.Clone())
	return out
}

func (r *Resolver) fold(raw string, cwd Path) Path {
	if raw == "" || raw == selfSegment {
		return cwd.Clone()
	}

	if strings.HasPrefix(raw, "/") {
		if raw == "/" {
			return Path{Anchor: r.home.Anchor}
		}
		raw = r.home.Anchor + raw[1:]
	}

	anchor, rest := splitAnchor(raw)
	acc := Path{Anchor: anchor}
	for _, part := range strings.Split(rest, "/") {
		switch part {
		case "", selfSegment:
			continue
		case homeSegment:
			acc = r.home.Clone()
		case parentSegment:
			switch {
			case len(acc.Segments) > 0:
				acc.Segments = acc.Segments[:len(acc.Segments)-1]
			case acc.IsAbs():
				// Already at an anchor.
			default:
				acc = cwd.Parent()
			}
		default:
			acc.Segments = append(acc.Segments, part)
		}
	}

	if !acc.IsAbs() && len(acc.Segments) == 0 {
		return cwd.Clone()
	}
	return acc
}

func (r *Resolver) exists(p Path) bool {
	_, err := r.fs.Stat(p.OSPath())
	return err == nil
}

// ExistsOrPrefixed returns p if it is absolute and exists, otherwise cwd/p
// if that exists. A relative p is only ever tried under cwd, never against
// the process working directory.
func (r *Resolver) ExistsOrPrefixed(p Path, cwd Path) (Path, error) {
	if p.IsAbs() && r.exists(p) {
		return p, nil
	}
	if prefixed := cwd.Join(p); prefixed.IsAbs() && r.exists(prefixed) {
		return prefixed, nil
	}
	return Path{}, fmt.Errorf("%s: %w", p, ErrNotFound)
}

// IsNotFound reports whether err came from a failed lookup.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsIgnored reports whether any segment of p is one of names, or the whole
// slash separated path fully matches one of patterns.
func IsIgnored(p Path, names map[string]bool, patterns []Pattern) bool {
	for _, seg := range p.Segments {
		if names[seg] {
			return true
		}
	}

	s := p.String()
	for _, pattern := range patterns {
		if pattern.Match(s) {
			return true
		}
	}
	return false
}
