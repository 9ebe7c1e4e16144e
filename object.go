package gapi

// Object is the dynamic base type. A hash-flavor Object owns a property
// Store; a list-variant Object owns positional storage instead. Subordinate
// objects are exclusively owned by their parent; the construction protocol
// never shares one between two parents.
//
// An Object is not safe for concurrent mutation. Confine each instance to a
// single logical owner.
type Object struct {
	typ   *Type
	store *Store
	pres  PresenceMap
	reg   *Registry // construction registry; resolves element types for NewElem

	// list-variant state
	list  bool
	items []any
	elem  *Type // element type for NewElem; nil for plain lists
}

func newAnonObject() *Object {
	return &Object{store: NewStore(), pres: PresenceMap{}}
}

func newTypedObject(t *Type) *Object {
	return &Object{typ: t, store: NewStore(), pres: PresenceMap{}}
}

func newListObject(elem *Type) *Object {
	return &Object{list: true, elem: elem}
}

// NewAnonList returns an empty list-variant Object with no bound element
// type.
func NewAnonList() *Object { return newListObject(nil) }

// Type returns the type declaration, or nil for anonymous hash-flavor and
// list-variant objects.
func (o *Object) Type() *Type { return o.typ }

// TypeName returns the declared type name, or "" for anonymous objects.
func (o *Object) TypeName() string {
	if o.typ == nil {
		return ""
	}
	return o.typ.Name()
}

// IsList reports whether this is the list variant.
func (o *Object) IsList() bool { return o.list }

// Store exposes the property store. List variants have none and return nil.
func (o *Object) Store() *Store { return o.store }

// Get returns the property value, or Undefined when absent. Absent reads are
// never an error and never autovivify.
func (o *Object) Get(name string) any {
	if o.list {
		return Undefined
	}
	v, _ := o.store.Get(name)
	return v
}

// Set stores a property value, marking it seen.
func (o *Object) Set(name string, v any) {
	if o.list {
		return
	}
	o.store.Set(name, v)
	o.pres[NormalizeName(name)] |= PresenceSeen
}

// Has reports whether the property is registered, even if unset.
func (o *Object) Has(name string) bool {
	if o.list {
		return false
	}
	return o.store.Has(name)
}

// Child returns the named property as a nested Object, if it is one.
func (o *Object) Child(name string) (*Object, bool) {
	c, ok := o.Get(name).(*Object)
	return c, ok
}

// PresenceOf returns the presence flags recorded for name.
func (o *Object) PresenceOf(name string) Presence {
	if o.pres == nil {
		return 0
	}
	return o.pres[NormalizeName(name)]
}

// Names returns the stable traversal order: declared-default names first in
// declared order (those actually present), then the remaining properties in
// insertion order. List variants have no names.
func (o *Object) Names() []string {
	if o.list || o.store == nil {
		return nil
	}
	var out []string
	seen := map[string]struct{}{}
	if o.typ != nil {
		for _, d := range o.typ.Defaults() {
			if o.store.Has(d) {
				out = append(out, d)
				seen[d] = struct{}{}
			}
		}
	}
	for _, k := range o.store.Keys() {
		if _, dup := seen[k]; dup {
			continue
		}
		out = append(out, k)
	}
	return out
}

// ---- list-variant operations ----

// Len returns the element count of a list variant, 0 otherwise.
func (o *Object) Len() int {
	if !o.list {
		return 0
	}
	return len(o.items)
}

// At returns the element at i, or Undefined when out of range.
func (o *Object) At(i int) any {
	if !o.list || i < 0 || i >= len(o.items) {
		return Undefined
	}
	return o.items[i]
}

// SetAt overwrites the element at i; out-of-range writes are dropped.
func (o *Object) SetAt(i int, v any) {
	if !o.list || i < 0 || i >= len(o.items) {
		return
	}
	o.items[i] = v
}

// Append adds elements to a list variant.
func (o *Object) Append(vs ...any) {
	if !o.list {
		return
	}
	o.items = append(o.items, vs...)
}

// Items returns the elements of a list variant. The slice is a copy; the
// elements are not.
func (o *Object) Items() []any {
	if !o.list {
		return nil
	}
	out := make([]any, len(o.items))
	copy(out, o.items)
	return out
}

// ElemType returns the element type a declared list child is bound to, or
// nil.
func (o *Object) ElemType() *Type { return o.elem }
