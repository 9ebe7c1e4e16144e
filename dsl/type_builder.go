package dsl

import (
	gapi "github.com/gitpan/Class-GAPI"
)

type typeBuilder struct {
	name string
	opts []gapi.TypeOption
}

// Type creates a new type builder with safe defaults (UnknownAllow).
func Type(name string) *typeBuilder {
	return &typeBuilder{name: name}
}

// Defaults appends declared-default property names, initialized as unset at
// construction unless supplied by arguments.
func (b *typeBuilder) Defaults(names ...string) *typeBuilder {
	b.opts = append(b.opts, gapi.WithDefaults(names...))
	return b
}

// Child declares a single-object subordinate. The property name is the
// trailing segment of typeName.
func (b *typeBuilder) Child(typeName string) *typeBuilder {
	return b.ChildSpec(gapi.ChildSpec{TypeName: typeName, Shape: gapi.ShapeSingle})
}

// ChildList declares a list-variant subordinate bound to typeName elements.
func (b *typeBuilder) ChildList(typeName string) *typeBuilder {
	return b.ChildSpec(gapi.ChildSpec{TypeName: typeName, Shape: gapi.ShapeList})
}

// ChildSpec declares a subordinate from the structured descriptor, for cases
// where the installed property name differs from the type name.
func (b *typeBuilder) ChildSpec(spec gapi.ChildSpec) *typeBuilder {
	b.opts = append(b.opts, gapi.WithChild(spec))
	return b
}

// Op declares an explicit operation. Once declared, the name permanently
// leaves dynamic property dispatch for this type.
func (b *typeBuilder) Op(name string, fn gapi.OpFunc) *typeBuilder {
	b.opts = append(b.opts, gapi.WithOp(name, fn))
	return b
}

// Init sets the late-init hook, run once after the argument, default and
// child stages.
func (b *typeBuilder) Init(fn gapi.InitFunc) *typeBuilder {
	b.opts = append(b.opts, gapi.WithInit(fn))
	return b
}

// UnknownStrict opts in to rejecting dynamic sets of undeclared names.
func (b *typeBuilder) UnknownStrict() *typeBuilder {
	b.opts = append(b.opts, gapi.WithUnknownPolicy(gapi.UnknownStrict))
	return b
}

// UnknownAllow restores the default tolerance policy.
func (b *typeBuilder) UnknownAllow() *typeBuilder {
	b.opts = append(b.opts, gapi.WithUnknownPolicy(gapi.UnknownAllow))
	return b
}

// Build returns the immutable type declaration.
func (b *typeBuilder) Build() (*gapi.Type, error) {
	if b.name == "" {
		return nil, gapi.Issues{gapi.Issue{Path: "/", Code: gapi.CodeParseError, Message: "type name is required"}}
	}
	return gapi.NewType(b.name, b.opts...), nil
}

// MustBuild is like Build but panics on error.
func (b *typeBuilder) MustBuild() *gapi.Type {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}

// Register builds the type and installs it in reg (the default registry when
// reg is nil).
func (b *typeBuilder) Register(reg *gapi.Registry) error {
	t, err := b.Build()
	if err != nil {
		return err
	}
	if reg == nil {
		reg = gapi.DefaultRegistry()
	}
	return reg.Register(t)
}

// MustRegister is like Register against the default registry, panicking on
// error. Intended for package init-time declarations.
func (b *typeBuilder) MustRegister() *gapi.Type {
	t := b.MustBuild()
	gapi.MustRegister(t)
	return t
}
