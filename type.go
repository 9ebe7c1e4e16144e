package gapi

import "strings"

// Shape selects the representation of a declared child.
type Shape int

const (
	// ShapeSingle installs one fully constructed subordinate Object.
	ShapeSingle Shape = iota
	// ShapeList installs an empty list-variant container bound to the
	// subordinate type; elements are appended by application code.
	ShapeList
)

// UnknownPolicy controls dynamic sets of names a type never declared.
// The default, UnknownAllow, preserves the tolerance contract: a typo simply
// becomes a new property. UnknownStrict is the opt-in redesign that rejects
// such sets with an unknown_key Issue.
type UnknownPolicy int

const (
	UnknownAllow UnknownPolicy = iota
	UnknownStrict
)

// InitHookName is the reserved late-init operation name. It is invoked once
// at the end of construction and is never reachable as a property accessor.
const InitHookName = "_init"

// OpFunc is an explicitly declared operation. Declared operations take full
// precedence over dynamic property dispatch; their errors propagate to the
// caller unmodified.
type OpFunc func(o *Object, args ...any) (any, error)

// InitFunc is the late-init hook, run once after the argument, default and
// child stages of construction.
type InitFunc func(o *Object) error

// ChildSpec declares one subordinate to instantiate at construction time.
// Name defaults to the trailing "/"- or "."-segment of TypeName.
type ChildSpec struct {
	TypeName string
	Name     string
	Shape    Shape
}

// PropertyName returns the name the child is installed under.
func (c ChildSpec) PropertyName() string {
	if c.Name != "" {
		return c.Name
	}
	return trailingSegment(c.TypeName)
}

func trailingSegment(name string) string {
	if i := strings.LastIndexAny(name, "/."); i >= 0 {
		return name[i+1:]
	}
	return name
}

// Type is the immutable per-type declaration shared by every instance:
// declared defaults, declared children, explicit operations, the optional
// init hook and the unknown-key policy. Build one through dsl.Type or
// NewType; register it before constructing instances.
type Type struct {
	name     string
	defaults []string
	children []ChildSpec
	ops      map[string]OpFunc
	init     InitFunc
	unknown  UnknownPolicy

	// declared holds every name the type knows about; consulted only under
	// UnknownStrict.
	declared map[string]struct{}
}

// TypeOption configures a Type under construction.
type TypeOption func(*Type)

// WithDefaults appends declared-default property names, initialized as unset
// at construction when not supplied by arguments.
func WithDefaults(names ...string) TypeOption {
	return func(t *Type) {
		for _, n := range names {
			t.defaults = append(t.defaults, NormalizeName(n))
		}
	}
}

// WithChild appends a declared child.
func WithChild(spec ChildSpec) TypeOption {
	return func(t *Type) { t.children = append(t.children, spec) }
}

// WithOp declares an explicit operation. Once declared, the name permanently
// leaves dynamic dispatch for this type.
func WithOp(name string, fn OpFunc) TypeOption {
	return func(t *Type) { t.ops[NormalizeName(name)] = fn }
}

// WithInit sets the late-init hook.
func WithInit(fn InitFunc) TypeOption {
	return func(t *Type) { t.init = fn }
}

// WithUnknownPolicy sets the unknown-key policy.
func WithUnknownPolicy(p UnknownPolicy) TypeOption {
	return func(t *Type) { t.unknown = p }
}

// NewType builds an immutable Type declaration.
func NewType(name string, opts ...TypeOption) *Type {
	t := &Type{name: name, ops: map[string]OpFunc{}}
	for _, opt := range opts {
		opt(t)
	}
	t.declared = make(map[string]struct{}, len(t.defaults)+len(t.children)+len(t.ops))
	for _, d := range t.defaults {
		t.declared[d] = struct{}{}
	}
	for _, c := range t.children {
		t.declared[c.PropertyName()] = struct{}{}
	}
	for n := range t.ops {
		t.declared[n] = struct{}{}
	}
	return t
}

// Name returns the declared type name.
func (t *Type) Name() string { return t.name }

// Defaults returns the declared-default names in declared order.
func (t *Type) Defaults() []string {
	out := make([]string, len(t.defaults))
	copy(out, t.defaults)
	return out
}

// Children returns the declared child specs in declared order.
func (t *Type) Children() []ChildSpec {
	out := make([]ChildSpec, len(t.children))
	copy(out, t.children)
	return out
}

// Op returns the declared operation for name, if any. The init hook is not an
// operation and is never returned here.
func (t *Type) Op(name string) (OpFunc, bool) {
	fn, ok := t.ops[NormalizeName(name)]
	return fn, ok
}

func (t *Type) knows(name string) bool {
	_, ok := t.declared[name]
	return ok
}
