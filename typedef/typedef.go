// Package typedef imports gapi type declarations from YAML documents.
//
// A declaration file holds one YAML document per type:
//
//	name: Guppy
//	defaults: [scaly, small, sushi]
//	children:
//	  - type: Fin
//	  - type: Eyeballs
//	    shape: list
//
// Operations and init hooks are code, not data; attach them by building the
// type through dsl instead when they are needed.
package typedef

import (
	"bytes"
	"errors"
	"io"

	gapi "github.com/gitpan/Class-GAPI"
	"gopkg.in/yaml.v3"
)

// document is the YAML shape of one type declaration.
type document struct {
	Name     string     `yaml:"name"`
	Defaults []string   `yaml:"defaults"`
	Unknown  string     `yaml:"unknown"` // "", "allow" or "strict"
	Children []childDoc `yaml:"children"`
}

type childDoc struct {
	Type  string `yaml:"type"`
	Name  string `yaml:"name"`
	Shape string `yaml:"shape"` // "", "single" or "list"
}

// ImportYAML parses a multi-document YAML declaration stream into immutable
// type declarations, in document order.
func ImportYAML(data []byte) ([]*gapi.Type, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out []*gapi.Type
	for {
		var doc document
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, gapi.Issues{gapi.Issue{Path: "/", Code: gapi.CodeParseError, Message: err.Error(), Cause: err}}
		}
		t, err := buildType(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// RegisterYAML imports declarations and installs them in reg (the default
// registry when reg is nil). It returns the registered type names in order.
func RegisterYAML(reg *gapi.Registry, data []byte) ([]string, error) {
	if reg == nil {
		reg = gapi.DefaultRegistry()
	}
	types, err := ImportYAML(data)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(types))
	for _, t := range types {
		if err := reg.Register(t); err != nil {
			return names, err
		}
		names = append(names, t.Name())
	}
	return names, nil
}

func buildType(doc document) (*gapi.Type, error) {
	if doc.Name == "" {
		return nil, gapi.Issues{gapi.Issue{Path: "/", Code: gapi.CodeParseError, Message: "declaration missing name"}}
	}
	opts := []gapi.TypeOption{gapi.WithDefaults(doc.Defaults...)}
	switch doc.Unknown {
	case "", "allow":
	case "strict":
		opts = append(opts, gapi.WithUnknownPolicy(gapi.UnknownStrict))
	default:
		return nil, gapi.Issues{gapi.Issue{Path: "/" + doc.Name, Code: gapi.CodeParseError, Message: "unknown policy must be allow or strict", Params: map[string]any{"got": doc.Unknown}}}
	}
	for _, c := range doc.Children {
		spec := gapi.ChildSpec{TypeName: c.Type, Name: c.Name}
		switch c.Shape {
		case "", "single":
			spec.Shape = gapi.ShapeSingle
		case "list":
			spec.Shape = gapi.ShapeList
		default:
			return nil, gapi.Issues{gapi.Issue{
				Path:    "/" + doc.Name + "/" + spec.PropertyName(),
				Code:    gapi.CodeInvalidShape,
				Message: "shape must be single or list",
				Params:  map[string]any{"got": c.Shape},
			}}
		}
		if spec.TypeName == "" {
			return nil, gapi.Issues{gapi.Issue{Path: "/" + doc.Name, Code: gapi.CodeParseError, Message: "child declaration missing type"}}
		}
		opts = append(opts, gapi.WithChild(spec))
	}
	return gapi.NewType(doc.Name, opts...), nil
}
