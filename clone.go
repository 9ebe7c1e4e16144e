package gapi

import (
	"reflect"
	"time"
)

// Clone produces a structurally independent deep copy. Nested objects, list
// variants, sequences and maps are copied recursively; scalar entries are
// copied by value. An entry that cannot be copied (a channel, a function, an
// opaque pointer) is silently omitted: clone is best-effort and partial
// success is the contract, not an error.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	if o.list {
		c := newListObject(o.elem)
		c.reg = o.reg
		for _, it := range o.items {
			if cv, ok := cloneValue(it); ok {
				c.items = append(c.items, cv)
			}
		}
		return c
	}
	c := newTypedObject(o.typ)
	c.reg = o.reg
	for _, k := range o.store.Keys() {
		v, _ := o.store.Get(k)
		cv, ok := cloneValue(v)
		if !ok {
			continue
		}
		c.store.Set(k, cv)
		c.pres[k] = o.pres[k]
	}
	return c
}

// cloneValue applies the per-kind copy rule. The second result reports
// whether the value was copyable.
func cloneValue(v any) (any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, true
	case undefined:
		return t, true
	case *Object:
		return t.Clone(), true
	case []any:
		out := make([]any, 0, len(t))
		for _, e := range t {
			if cv, ok := cloneValue(e); ok {
				out = append(out, cv)
			}
		}
		return out, true
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			if cv, ok := cloneValue(e); ok {
				out[k] = cv
			}
		}
		return out, true
	case []byte:
		out := make([]byte, len(t))
		copy(out, t)
		return out, true
	case time.Time:
		return t, true
	case Cloneable:
		return t.CloneValue(), true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return v, true
	}
	return nil, false
}
