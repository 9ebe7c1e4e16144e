package gapi_test

import (
	"testing"

	gapi "github.com/gitpan/Class-GAPI"
)

func TestClone_NestedIndependence(t *testing.T) {
	reg := gapi.NewRegistry()
	if err := reg.Register(gapi.NewType("Fin", gapi.WithDefaults("rayed"))); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register(gapi.NewType("Fish",
		gapi.WithChild(gapi.ChildSpec{TypeName: "Fin"}),
	)); err != nil {
		t.Fatalf("register: %v", err)
	}
	o, err := reg.New("Fish", gapi.P("color", "orange"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	fin, _ := o.Child("Fin")
	fin.Set("spines", 7)

	c := o.Clone()
	cfin, ok := c.Child("Fin")
	if !ok || cfin == fin {
		t.Fatalf("clone must copy the subordinate, not share it")
	}
	if cfin.Get("spines") != 7 {
		t.Fatalf("subordinate state not carried into clone")
	}

	cfin.Set("spines", 9)
	if fin.Get("spines") != 7 {
		t.Fatalf("mutating the clone's subordinate leaked into the original")
	}
	fin.Set("spines", 5)
	if cfin.Get("spines") != 9 {
		t.Fatalf("mutating the original's subordinate leaked into the clone")
	}
}

func TestClone_NonCopyableMembersSkipped(t *testing.T) {
	o := gapi.NewAnon()
	o.Set("name", "keeper")
	o.Set("handle", make(chan int)) // opaque resource, not copyable
	o.Set("count", 2)

	c := o.Clone()
	if c.Has("handle") {
		t.Fatalf("non-copyable member must be omitted, not copied")
	}
	if c.Get("name") != "keeper" || c.Get("count") != 2 {
		t.Fatalf("copyable members must survive: %v %v", c.Get("name"), c.Get("count"))
	}
}

func TestClone_SequencesAndBytesCopied(t *testing.T) {
	o := gapi.NewAnon()
	o.Set("tags", []any{"a", "b"})
	o.Set("blob", []byte{1, 2, 3})

	c := o.Clone()
	tags := c.Get("tags").([]any)
	tags[0] = "mutated"
	if o.Get("tags").([]any)[0] != "a" {
		t.Fatalf("sequence copy must be independent")
	}
	blob := c.Get("blob").([]byte)
	blob[0] = 9
	if o.Get("blob").([]byte)[0] != 1 {
		t.Fatalf("byte slice copy must be independent")
	}
}

func TestClone_UndefinedAndPresenceCarriedOver(t *testing.T) {
	reg := gapi.NewRegistry()
	if err := reg.Register(gapi.NewType("Defaulted", gapi.WithDefaults("scaly"))); err != nil {
		t.Fatalf("register: %v", err)
	}
	o, err := reg.New("Defaulted")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	c := o.Clone()
	if !c.Has("scaly") || !gapi.IsUndefined(c.Get("scaly")) {
		t.Fatalf("unset default must survive cloning")
	}
	if c.PresenceOf("scaly")&gapi.PresenceDefaultApplied == 0 {
		t.Fatalf("presence flags must be carried over")
	}
	if c.TypeName() != "Defaulted" {
		t.Fatalf("clone must keep the type identity")
	}
}

func TestClone_ListVariant(t *testing.T) {
	l := gapi.NewAnonList()
	e := gapi.NewAnon(gapi.P("x", 1))
	l.Append(e, "scalar", make(chan int))

	c := l.Clone()
	if !c.IsList() {
		t.Fatalf("clone of a list variant must be a list variant")
	}
	// the non-copyable element is dropped
	if c.Len() != 2 {
		t.Fatalf("expected 2 elements, got %d", c.Len())
	}
	ce := c.At(0).(*gapi.Object)
	ce.Set("x", 2)
	if e.Get("x") != 1 {
		t.Fatalf("list element clone leaked into the original")
	}
}

type cloneableHandle struct{ id int }

func (h cloneableHandle) CloneValue() any { return cloneableHandle{id: h.id} }

func TestClone_CloneableDelegation(t *testing.T) {
	o := gapi.NewAnon()
	o.Set("h", cloneableHandle{id: 42})
	c := o.Clone()
	h, ok := c.Get("h").(cloneableHandle)
	if !ok || h.id != 42 {
		t.Fatalf("Cloneable value must be delegated, got %v", c.Get("h"))
	}
}
