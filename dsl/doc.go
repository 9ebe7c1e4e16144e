// Package dsl provides the fluent builder for gapi type declarations.
//
// Overview
//   - Builder API: declare a dynamic type's defaults, children, explicit
//     operations, init hook and unknown-key policy with
//     Type()/Defaults()/Child()/ChildList()/Op()/Init()/MustBuild().
//   - Children: Child(name) declares a single subordinate, ChildList(name) a
//     list-variant one; ChildSpec(spec) accepts the structured descriptor
//     directly when the property name or type name must differ.
//   - Registration: Build()/MustBuild() return the immutable *gapi.Type;
//     Register()/MustRegister() additionally install it in a registry.
//
// Entry points
//   - Type(name): create a type builder; chain declarations, then
//     MustBuild()/Build()/MustRegister().
//
// Design guidelines
//   - The builder only accumulates; all invariants live in gapi.NewType.
//   - Declarations are immutable once built; a builder is not reusable after
//     Build.
package dsl
