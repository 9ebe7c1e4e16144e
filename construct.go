package gapi

import "github.com/gitpan/Class-GAPI/i18n"

// New constructs an instance of a type registered in the default registry,
// running the four construction stages: arguments, defaults, declared
// children, init hook.
func New(typeName string, pairs ...Pair) (*Object, error) {
	return defaultRegistry.New(typeName, pairs...)
}

// NewAnon constructs an anonymous hash-flavor Object. Only the argument
// stage applies; an anonymous object has no defaults, children or hook.
func NewAnon(pairs ...Pair) *Object {
	o := newAnonObject()
	// no declared operations exist, so pair application cannot fail
	_ = o.applyPairs(pairs)
	return o
}

// New constructs an instance of a type registered in this registry.
func (r *Registry) New(typeName string, pairs ...Pair) (*Object, error) {
	t, ok := r.Lookup(typeName)
	if !ok {
		return nil, Issues{Issue{
			Path:    "/",
			Code:    CodeUnknownType,
			Message: i18n.T(CodeUnknownType, nil),
			Hint:    "register the type before constructing it",
			Params:  map[string]any{"type": typeName},
		}}
	}
	return r.construct(t, pairs)
}

// construct runs the full pipeline. Stages are ordered and non-skippable;
// the only failure modes are an unresolvable child type and errors raised by
// user-declared operations, which propagate unmodified.
func (r *Registry) construct(t *Type, pairs []Pair) (*Object, error) {
	o := newTypedObject(t)
	o.reg = r

	// Stage 1: arguments, in input order. Later pairs with the same name
	// overwrite earlier ones.
	if err := o.applyPairs(pairs); err != nil {
		return nil, err
	}

	// Stage 2: defaults. Names already established by stage 1 are left
	// untouched; the rest are registered as present-but-unset.
	for _, d := range t.Defaults() {
		if o.store.Has(d) {
			continue
		}
		if _, err := o.Call(d, Undefined); err != nil {
			return nil, err
		}
		o.pres[d] |= PresenceDefaultApplied
	}

	// Stage 3: declared children, in declared order. Name collisions are
	// ordinary overwrites; the last descriptor installed wins.
	for _, c := range t.Children() {
		name := c.PropertyName()
		child, err := r.buildChild(c)
		if err != nil {
			return nil, rebaseIssues("/"+name, err)
		}
		o.store.Set(name, child)
		o.pres[name] |= PresenceChildBuilt
	}

	// Stage 4: init hook, strictly after stages 1-3.
	if t.init != nil {
		if err := t.init(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// buildChild instantiates one declared subordinate. A single child runs its
// own full pipeline with no arguments; a list child is the empty container
// only, bound to the element type for later appends.
func (r *Registry) buildChild(c ChildSpec) (*Object, error) {
	ct, ok := r.Lookup(c.TypeName)
	if !ok {
		return nil, Issues{Issue{
			Path:    "/",
			Code:    CodeUnknownType,
			Message: i18n.T(CodeUnknownType, nil),
			Hint:    "declared child type must be registered before construction",
			Params:  map[string]any{"type": c.TypeName},
		}}
	}
	if c.Shape == ShapeList {
		l := newListObject(ct)
		l.reg = r
		return l, nil
	}
	return r.construct(ct, nil)
}

// applyPairs is stage 1: each pair through the dispatcher, in order.
func (o *Object) applyPairs(pairs []Pair) error {
	for _, p := range pairs {
		if _, err := o.Call(p.Name, p.Value); err != nil {
			return err
		}
	}
	return nil
}

// Overlay re-runs the argument stage against an existing object. Defaults,
// children and the init hook are not touched; already-built subordinates
// survive as the same instances.
func (o *Object) Overlay(pairs ...Pair) error {
	if o.list {
		return Issues{Issue{Path: "/", Code: CodeInvalidShape, Message: i18n.T(CodeInvalidShape, nil), Hint: "overlay targets a hash-flavor object"}}
	}
	return o.applyPairs(pairs)
}

// Sprout constructs an anonymous hash-flavor subordinate from the pairs,
// installs it under name and returns it: the call-time equivalent of one
// declared-child descriptor.
func (o *Object) Sprout(name string, pairs ...Pair) (*Object, error) {
	if o.list {
		return nil, Issues{Issue{Path: "/", Code: CodeInvalidShape, Message: i18n.T(CodeInvalidShape, nil), Hint: "sprout targets a hash-flavor object"}}
	}
	child := newAnonObject()
	if err := child.applyPairs(pairs); err != nil {
		return nil, rebaseIssues("/"+NormalizeName(name), err)
	}
	key := NormalizeName(name)
	o.store.Set(key, child)
	o.pres[key] |= PresenceChildBuilt
	return child, nil
}

// NewElem constructs one element of the bound element type through the full
// pipeline and appends it. On an unbound list the element is an anonymous
// object.
func (o *Object) NewElem(pairs ...Pair) (*Object, error) {
	if !o.list {
		return nil, Issues{Issue{Path: "/", Code: CodeInvalidShape, Message: i18n.T(CodeInvalidShape, nil), Hint: "NewElem targets a list variant"}}
	}
	if o.elem == nil || o.reg == nil {
		e := NewAnon(pairs...)
		o.items = append(o.items, e)
		return e, nil
	}
	e, err := o.reg.construct(o.elem, pairs)
	if err != nil {
		return nil, err
	}
	o.items = append(o.items, e)
	return e, nil
}

// rebaseIssues prefixes Issue paths with the property the error surfaced
// under. Non-Issues errors pass through unmodified.
func rebaseIssues(base string, err error) error {
	child, ok := AsIssues(err)
	if !ok {
		return err
	}
	var out Issues
	for _, it := range child {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		out = AppendIssues(out, Issue{Path: p, Code: it.Code, Message: it.Message, Hint: it.Hint, Cause: it.Cause, Params: it.Params})
	}
	return out
}
