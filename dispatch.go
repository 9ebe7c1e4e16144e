package gapi

import "github.com/gitpan/Class-GAPI/i18n"

// Call is the generic accessor surface. Resolution order:
//
//  1. A declared operation with that name is invoked directly. Declared
//     operations take full precedence; dynamic resolution never shadows
//     them, and their errors propagate unmodified.
//  2. The reserved init hook name invokes the hook when declared and is a
//     no-op otherwise; it is never treated as a property accessor.
//  3. Otherwise the call is a property accessor keyed by name: zero
//     arguments reads (absent yields Undefined, with no side effect), one
//     or more arguments stores the first argument and returns it.
//
// Under UnknownStrict, a dynamic set of a name the type never declared is
// rejected with an unknown_key Issue instead of creating the property.
func (o *Object) Call(name string, args ...any) (any, error) {
	key := NormalizeName(name)

	if key == InitHookName {
		if o.typ != nil && o.typ.init != nil {
			return nil, o.typ.init(o)
		}
		return Undefined, nil
	}

	if o.typ != nil {
		if fn, ok := o.typ.Op(key); ok {
			return fn(o, args...)
		}
	}

	// Property dispatch is meaningless on the list variant.
	if o.list {
		return Undefined, nil
	}

	if len(args) == 0 {
		v, _ := o.store.Get(key)
		return v, nil
	}

	if o.typ != nil && o.typ.unknown == UnknownStrict && !o.typ.knows(key) {
		return nil, Issues{Issue{
			Path:    "/" + key,
			Code:    CodeUnknownKey,
			Message: i18n.T(CodeUnknownKey, nil),
			Hint:    "type " + o.typ.Name() + " is UnknownStrict; declare the name or use UnknownAllow",
			Params:  map[string]any{"key": key, "type": o.typ.Name()},
		}}
	}

	o.store.Set(key, args[0])
	o.pres[key] |= PresenceSeen
	return args[0], nil
}
