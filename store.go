package gapi

import "github.com/gitpan/Class-GAPI/internal/ordered"

// Store is the property store a dynamic object owns: a name->value mapping
// that preserves first-insertion order. Values are scalars, []any sequences,
// nested *Object instances (including list variants), or Undefined.
//
// A Store is exclusively owned by its Object and must not be mutated
// concurrently.
type Store struct {
	m *ordered.Map
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{m: ordered.New()}
}

// Get returns the value for name. Reading an absent name is not an error: it
// yields (Undefined, false).
func (s *Store) Get(name string) (any, bool) {
	v, ok := s.m.Get(NormalizeName(name))
	if !ok {
		return Undefined, false
	}
	return v, true
}

// Set stores v under name, overwriting any previous value. Insertion order of
// an existing name is preserved.
func (s *Store) Set(name string, v any) {
	s.m.Set(NormalizeName(name), v)
}

// Has reports whether name is present (even if its value is Undefined).
func (s *Store) Has(name string) bool {
	return s.m.Has(NormalizeName(name))
}

// Delete removes name from the store. This is the only removal path; dynamic
// dispatch never deletes.
func (s *Store) Delete(name string) {
	s.m.Delete(NormalizeName(name))
}

// Len returns the number of entries.
func (s *Store) Len() int { return s.m.Len() }

// Keys returns the property names in insertion order.
func (s *Store) Keys() []string { return s.m.Keys() }

// EnsureContainer returns the container stored under name, creating an empty
// one of the requested kind when absent. Requesting a different kind for an
// already-populated name is undefined behavior; callers must not do it. The
// returned value is []any for KindSequence (a fresh sequence is stored and
// returned by value; use Set to replace it after growth) and *Object for
// KindObject/KindList.
func (s *Store) EnsureContainer(name string, kind Kind) any {
	key := NormalizeName(name)
	if v, ok := s.m.Get(key); ok && !IsUndefined(v) {
		return v
	}
	var c any
	switch kind {
	case KindSequence:
		c = []any{}
	case KindList:
		c = newListObject(nil)
	default:
		c = newAnonObject()
	}
	s.m.Set(key, c)
	return c
}
