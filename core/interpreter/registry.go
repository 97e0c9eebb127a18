package interpreter

import (
	"sort"
)

// Handler is implemented by every builtin command.
type Handler interface {
	Execute(in *Interpreter, args []string) error
}

// HandlerFunc adapts a function to a Handler.
type HandlerFunc func(in *Interpreter, args []string) error

// Execute implements Handler.
func (f HandlerFunc) Execute(in *Interpreter, args []string) error {
	return f(in, args)
}

var _ Handler = (HandlerFunc)(nil)

// Factory creates a fresh Handler for each invocation.
type Factory func() Handler

// Registry resolves command names, after alias substitution, to factories.
type Registry struct {
	catalogue map[string]Factory
	aliases   map[string]string
}

// NewRegistry builds a registry over a static catalogue. The alias map is
// copied so later edits require a rebuild.
func NewRegistry(catalogue map[string]Factory, aliases map[string]string) *Registry {
	copied := make(map[string]string, len(aliases))
	for k, v := range aliases {
		copied[k] = v
	}
	return &Registry{catalogue: catalogue, aliases: copied}
}

// Canonical applies at most one alias substitution to name.
func (r *Registry) Canonical(name string) string {
	if target, ok := r.aliases[name]; ok {
		return target
	}
	return name
}

// Resolve looks up the factory for name. Aliases don't chain: an alias
// pointing at another alias resolves to whatever that name is in the
// catalogue.
func (r *Registry) Resolve(name string) (Factory, bool) {
	factory, ok := r.catalogue[r.Canonical(name)]
	return factory, ok
}

// Names lists the catalogue's command names, sorted.
func (r *Registry) Names() []string {
	var out []string
	for name := range r.catalogue {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
