package gapi

import (
	"sync"

	"github.com/gitpan/Class-GAPI/i18n"
)

// Registry is the process-wide table of type declarations. Registration
// happens at program initialization; lookups afterwards are read-only.
type Registry struct {
	mu    sync.RWMutex
	types map[string]*Type
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{types: map[string]*Type{}}
}

// Register adds a type declaration. Registering the same name twice is an
// error; declarations are immutable once registered.
func (r *Registry) Register(t *Type) error {
	if t == nil || t.Name() == "" {
		return Issues{Issue{Path: "/", Code: CodeParseError, Message: "type declaration missing a name"}}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.types[t.Name()]; ok {
		return Issues{Issue{Path: "/", Code: CodeDuplicateType, Message: i18n.T(CodeDuplicateType, nil), Params: map[string]any{"type": t.Name()}}}
	}
	r.types[t.Name()] = t
	return nil
}

// Lookup returns the declaration for name, if registered.
func (r *Registry) Lookup(name string) (*Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[name]
	return t, ok
}

// Names returns the registered type names, in no particular order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.types))
	for n := range r.types {
		out = append(out, n)
	}
	return out
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the package-level registry used by Register and New.
func DefaultRegistry() *Registry { return defaultRegistry }

// Register adds a type declaration to the default registry.
func Register(t *Type) error { return defaultRegistry.Register(t) }

// MustRegister is like Register but panics on error. Intended for package
// init-time declarations.
func MustRegister(t *Type) {
	if err := defaultRegistry.Register(t); err != nil {
		panic(err)
	}
}
