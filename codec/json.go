// Package codec serializes dynamic-object trees to and from JSON.
//
// Encoding walks the stable traversal order (declared defaults first, then
// insertion order), so output is deterministic for a given construction
// history. Unset properties encode as null; list variants and sequences
// encode as arrays. Decoding builds anonymous hash-flavor trees, or overlays
// scalar fields onto an already-constructed typed object.
package codec

import (
	"bytes"
	"sort"

	gapi "github.com/gitpan/Class-GAPI"
	json "github.com/goccy/go-json"
)

// EncodeJSON renders the object tree as JSON.
func EncodeJSON(o *gapi.Object) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeValue(&buf, o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeValue(buf *bytes.Buffer, v any) error {
	if gapi.IsUndefined(v) {
		buf.WriteString("null")
		return nil
	}
	switch t := v.(type) {
	case *gapi.Object:
		if t.IsList() {
			return writeArray(buf, t.Items())
		}
		return writeObject(buf, t)
	case []any:
		return writeArray(buf, t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return gapi.Issues{gapi.Issue{Path: "/", Code: gapi.CodeParseError, Message: err.Error(), Cause: err}}
		}
		buf.Write(b)
		return nil
	}
}

func writeObject(buf *bytes.Buffer, o *gapi.Object) error {
	buf.WriteByte('{')
	for i, name := range o.Names() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(name)
		if err != nil {
			return gapi.Issues{gapi.Issue{Path: "/" + name, Code: gapi.CodeParseError, Message: err.Error(), Cause: err}}
		}
		buf.Write(k)
		buf.WriteByte(':')
		if err := writeValue(buf, o.Get(name)); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeArray(buf *bytes.Buffer, items []any) error {
	buf.WriteByte('[')
	for i, it := range items {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeValue(buf, it); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

// DecodeJSON builds an anonymous object tree from JSON. Objects become
// hash-flavor Objects, arrays become list variants, null becomes Undefined.
func DecodeJSON(data []byte) (*gapi.Object, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, gapi.Issues{gapi.Issue{Path: "/", Code: gapi.CodeParseError, Message: err.Error(), Cause: err}}
	}
	switch t := raw.(type) {
	case map[string]any:
		return objectFromMap(t), nil
	case []any:
		l := gapi.NewAnonList()
		for _, e := range t {
			l.Append(decodedValue(e))
		}
		return l, nil
	default:
		return nil, gapi.Issues{gapi.Issue{Path: "/", Code: gapi.CodeParseError, Message: "top-level JSON must be an object or array"}}
	}
}

// DecodeJSONInto overlays the top-level scalar fields of a JSON object onto
// an existing object through the dispatcher, so declared operations keep
// their precedence. Nested objects and arrays are installed as decoded
// anonymous subtrees.
func DecodeJSONInto(o *gapi.Object, data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return gapi.Issues{gapi.Issue{Path: "/", Code: gapi.CodeParseError, Message: err.Error(), Cause: err}}
	}
	pairs := make([]gapi.Pair, 0, len(raw))
	for _, k := range sortedKeys(raw) {
		pairs = append(pairs, gapi.P(k, decodedValue(raw[k])))
	}
	return o.Overlay(pairs...)
}

func objectFromMap(m map[string]any) *gapi.Object {
	o := gapi.NewAnon()
	// maps decode unordered; key-sorted insertion keeps round-trips deterministic
	for _, k := range sortedKeys(m) {
		o.Set(k, decodedValue(m[k]))
	}
	return o
}

func sortedKeys(m map[string]any) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}

func decodedValue(v any) any {
	switch t := v.(type) {
	case nil:
		return gapi.Undefined
	case map[string]any:
		return objectFromMap(t)
	case []any:
		l := gapi.NewAnonList()
		for _, e := range t {
			l.Append(decodedValue(e))
		}
		return l
	default:
		return t
	}
}
