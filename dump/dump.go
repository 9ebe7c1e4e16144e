// Package dump renders dynamic-object trees to a diagnostic sink.
//
// Output follows the stable traversal order (declared defaults first in
// declared order, then remaining properties in insertion order) and recurses
// into subordinates. Scalar leaves are rendered through go-spew so opaque
// values stay readable.
package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	gapi "github.com/gitpan/Class-GAPI"
)

var leafCfg = &spew.ConfigState{Indent: " ", SortKeys: true, DisableMethods: false}

// Fdump writes a recursive rendering of o to w.
func Fdump(w io.Writer, o *gapi.Object) {
	writeObject(w, o, 0)
}

// Sdump returns the rendering of o as a string.
func Sdump(o *gapi.Object) string {
	b := &strings.Builder{}
	Fdump(b, o)
	return b.String()
}

func writeObject(w io.Writer, o *gapi.Object, depth int) {
	pad := strings.Repeat("  ", depth)
	label := o.TypeName()
	if label == "" {
		if o.IsList() && o.ElemType() != nil {
			label = o.ElemType().Name() + "[]"
		} else {
			label = "(anon)"
		}
	}
	if o.IsList() {
		fmt.Fprintf(w, "%s%s [list, %d elements]\n", pad, label, o.Len())
		for i, it := range o.Items() {
			fmt.Fprintf(w, "%s  [%d]:\n", pad, i)
			writeValue(w, it, depth+2)
		}
		return
	}
	fmt.Fprintf(w, "%s%s {\n", pad, label)
	for _, name := range o.Names() {
		fmt.Fprintf(w, "%s  %s =>\n", pad, name)
		writeValue(w, o.Get(name), depth+2)
	}
	fmt.Fprintf(w, "%s}\n", pad)
}

func writeValue(w io.Writer, v any, depth int) {
	pad := strings.Repeat("  ", depth)
	if gapi.IsUndefined(v) {
		fmt.Fprintf(w, "%s<undef>\n", pad)
		return
	}
	switch t := v.(type) {
	case *gapi.Object:
		writeObject(w, t, depth)
	case []any:
		fmt.Fprintf(w, "%s[%d elements]\n", pad, len(t))
		for i, e := range t {
			fmt.Fprintf(w, "%s  [%d]:\n", pad, i)
			writeValue(w, e, depth+2)
		}
	default:
		fmt.Fprintf(w, "%s%s", pad, leafCfg.Sdump(t))
	}
}
