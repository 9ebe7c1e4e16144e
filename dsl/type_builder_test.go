package dsl_test

import (
	"testing"

	gapi "github.com/gitpan/Class-GAPI"
	"github.com/gitpan/Class-GAPI/dsl"
	"github.com/stretchr/testify/require"
)

func TestTypeBuilder_Declarations(t *testing.T) {
	typ, err := dsl.Type("Guppy").
		Defaults("scaly", "small").
		Child("Fin").
		ChildList("pet/Eyeballs").
		Build()
	require.NoError(t, err)
	require.Equal(t, "Guppy", typ.Name())
	require.Equal(t, []string{"scaly", "small"}, typ.Defaults())

	children := typ.Children()
	require.Len(t, children, 2)
	require.Equal(t, "Fin", children[0].PropertyName())
	require.Equal(t, gapi.ShapeSingle, children[0].Shape)
	require.Equal(t, "Eyeballs", children[1].PropertyName())
	require.Equal(t, gapi.ShapeList, children[1].Shape)
}

func TestTypeBuilder_EmptyNameFails(t *testing.T) {
	_, err := dsl.Type("").Build()
	iss, ok := gapi.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, gapi.CodeParseError, iss[0].Code)
}

func TestTypeBuilder_OpAndInit(t *testing.T) {
	reg := gapi.NewRegistry()
	err := dsl.Type("Counter").
		Defaults("n").
		Op("bump", func(o *gapi.Object, args ...any) (any, error) {
			n, _ := o.Get("n").(int)
			o.Set("n", n+1)
			return n + 1, nil
		}).
		Init(func(o *gapi.Object) error {
			if gapi.IsUndefined(o.Get("n")) {
				o.Set("n", 0)
			}
			return nil
		}).
		Register(reg)
	require.NoError(t, err)

	o, err := reg.New("Counter")
	require.NoError(t, err)
	require.Equal(t, 0, o.Get("n"))

	v, err := o.Call("bump")
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestTypeBuilder_UnknownStrict(t *testing.T) {
	reg := gapi.NewRegistry()
	require.NoError(t, dsl.Type("Strict").Defaults("a").UnknownStrict().Register(reg))
	o, err := reg.New("Strict")
	require.NoError(t, err)
	_, err = o.Call("typo", 1)
	iss, ok := gapi.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, gapi.CodeUnknownKey, iss[0].Code)
}

func TestTypeBuilder_RegisterNilUsesDefaultRegistry(t *testing.T) {
	require.NoError(t, dsl.Type("dsl_test.DefaultRegType").Register(nil))
	_, ok := gapi.DefaultRegistry().Lookup("dsl_test.DefaultRegType")
	require.True(t, ok)
}
