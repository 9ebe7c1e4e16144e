package gapi

import "strings"

// Kind identifies the shape of a container requested from the Store.
type Kind int

const (
	// KindSequence is a positional []any sequence.
	KindSequence Kind = iota
	// KindObject is an anonymous hash-flavor Object.
	KindObject
	// KindList is a list-variant Object (positional storage).
	KindList
)

// undefined is the marker for "present but unset". It is what stage 2 of the
// construction pipeline stores for declared defaults and what a dynamic get
// yields for an absent name.
type undefined struct{}

func (undefined) String() string { return "<undef>" }

// Undefined is the absent/unset marker value. Reading a never-set property
// returns Undefined rather than failing.
var Undefined = undefined{}

// IsUndefined reports whether v is the Undefined marker (or nil).
func IsUndefined(v any) bool {
	if v == nil {
		return true
	}
	_, ok := v.(undefined)
	return ok
}

// Pair is one name/value argument of a construction, overlay or sprout call.
type Pair struct {
	Name  string
	Value any
}

// P constructs a Pair.
func P(name string, value any) Pair { return Pair{Name: name, Value: value} }

// PairsOf converts an alternating name/value list into pairs. A trailing name
// without a value is paired with Undefined.
func PairsOf(kv ...any) []Pair {
	out := make([]Pair, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		name, _ := kv[i].(string)
		if i+1 < len(kv) {
			out = append(out, Pair{Name: name, Value: kv[i+1]})
			continue
		}
		out = append(out, Pair{Name: name, Value: Undefined})
	}
	return out
}

// NormalizeName strips the legacy leading "-" argument convention. Both the
// bare and the prefixed form address the same property everywhere a name is
// accepted.
func NormalizeName(name string) string {
	return strings.TrimPrefix(name, "-")
}

// Cloneable lets an otherwise opaque property value participate in Clone.
// Values that do not implement it and are not covered by the built-in copy
// rules are silently skipped.
type Cloneable interface {
	CloneValue() any
}
