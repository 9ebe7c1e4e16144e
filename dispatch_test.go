package gapi_test

import (
	"errors"
	"testing"

	gapi "github.com/gitpan/Class-GAPI"
)

func TestCall_SetThenGetRoundTrip(t *testing.T) {
	o := gapi.NewAnon()
	if _, err := o.Call("color", "orange"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, err := o.Call("color")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v != "orange" {
		t.Fatalf("got %v", v)
	}
}

func TestCall_AbsentGetReturnsUndefinedWithoutSideEffect(t *testing.T) {
	o := gapi.NewAnon()
	v, err := o.Call("never_set")
	if err != nil {
		t.Fatalf("absent get must not fail: %v", err)
	}
	if !gapi.IsUndefined(v) {
		t.Fatalf("expected Undefined, got %v", v)
	}
	if o.Has("never_set") {
		t.Fatalf("get must not autovivify")
	}
}

func TestCall_DeclaredOpTakesPrecedence(t *testing.T) {
	reg := gapi.NewRegistry()
	typ := gapi.NewType("Priced",
		gapi.WithOp("price", func(o *gapi.Object, args ...any) (any, error) {
			if len(args) > 0 {
				o.Set("raw_price", args[0])
				return args[0], nil
			}
			return o.Get("raw_price"), nil
		}),
	)
	if err := reg.Register(typ); err != nil {
		t.Fatalf("register: %v", err)
	}
	o, err := reg.New("Priced", gapi.P("price", ".50"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	// the op rerouted the set: "price" itself never became a property
	if o.Has("price") {
		t.Fatalf("declared op was shadowed by dynamic dispatch")
	}
	v, _ := o.Call("price")
	if v != ".50" {
		t.Fatalf("got %v", v)
	}
}

func TestCall_DeclaredOpErrorPropagatesUnmodified(t *testing.T) {
	errBoom := errors.New("boom")
	reg := gapi.NewRegistry()
	typ := gapi.NewType("Fragile",
		gapi.WithOp("explode", func(o *gapi.Object, args ...any) (any, error) {
			return nil, errBoom
		}),
	)
	if err := reg.Register(typ); err != nil {
		t.Fatalf("register: %v", err)
	}
	o, err := reg.New("Fragile")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := o.Call("explode"); !errors.Is(err, errBoom) {
		t.Fatalf("expected the op error unmodified, got %v", err)
	}
}

func TestCall_ReservedHookNameIsNotAnAccessor(t *testing.T) {
	o := gapi.NewAnon()
	if _, err := o.Call(gapi.InitHookName, "value"); err != nil {
		t.Fatalf("reserved call must be a no-op, got %v", err)
	}
	if o.Has(gapi.InitHookName) {
		t.Fatalf("reserved name must never become a property")
	}
}

func TestCall_ExtraArgumentsIgnored(t *testing.T) {
	o := gapi.NewAnon()
	if _, err := o.Call("size", "small", "ignored"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v := o.Get("size"); v != "small" {
		t.Fatalf("got %v", v)
	}
}

func TestCall_UnknownStrictRejectsUndeclaredSet(t *testing.T) {
	reg := gapi.NewRegistry()
	typ := gapi.NewType("Schema",
		gapi.WithDefaults("known"),
		gapi.WithUnknownPolicy(gapi.UnknownStrict),
	)
	if err := reg.Register(typ); err != nil {
		t.Fatalf("register: %v", err)
	}
	o, err := reg.New("Schema")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := o.Call("known", 1); err != nil {
		t.Fatalf("declared name must stay settable: %v", err)
	}
	_, err = o.Call("typo", 1)
	iss, ok := gapi.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != gapi.CodeUnknownKey {
		t.Fatalf("expected unknown_key issue, got %v", err)
	}
	if o.Has("typo") {
		t.Fatalf("rejected set must not create the property")
	}
	// reads stay tolerant even under strict policy
	if v, err := o.Call("typo"); err != nil || !gapi.IsUndefined(v) {
		t.Fatalf("strict get should stay tolerant, got %v / %v", v, err)
	}
}

func TestCall_ListVariantPropertyDispatchYieldsUndefined(t *testing.T) {
	l := gapi.NewAnonList()
	v, err := l.Call("anything", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gapi.IsUndefined(v) {
		t.Fatalf("expected Undefined on list variant, got %v", v)
	}
}
