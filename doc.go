package gapi

// Package gapi provides:
//
// - A dynamic-object base type (Object) whose properties are acquired at
//   runtime through a generic accessor surface (Call) instead of declared
//   struct fields
// - A four-stage construction pipeline (arguments -> defaults -> declared
//   children -> init hook) driven by immutable per-type declarations
// - Automatic subordinate-object trees: declared children are instantiated
//   and installed at construction time, as single objects or list variants
// - Best-effort deep cloning, bulk overlay of argument pairs, and on-demand
//   subordinate creation (Sprout)
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations
//   under internal/.
// - Place the type-declaration DSL under dsl/, YAML declaration import under
//   typedef/, JSON encode/decode under codec/, and the CLI under cmd/gapi.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  t, _ := dsl.Type("Guppy").
//      Defaults("scaly", "small", "sushi").
//      Child("Fin").
//      ChildList("Eyeballs").
//      Build()
//  _ = gapi.Register(t)
//
//  o, err := gapi.New("Guppy", gapi.P("color", "orange"), gapi.P("price", ".50"))
//  color, _ := o.Call("color") // "orange"
//
