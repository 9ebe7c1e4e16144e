package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	gapi "github.com/gitpan/Class-GAPI"
	"github.com/gitpan/Class-GAPI/codec"
	"github.com/gitpan/Class-GAPI/dump"
	"github.com/gitpan/Class-GAPI/typedef"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "types":
		typesCmd(os.Args[2:])
	case "new":
		newCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "gapi CLI\n\nUsage:\n  gapi types -f decls.yaml\n  gapi new -f decls.yaml -type TypeName [-set name=value ...] [-format json|dump]")
}

func loadRegistry(file string) *gapi.Registry {
	data, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gapi:", err)
		os.Exit(1)
	}
	reg := gapi.NewRegistry()
	if _, err := typedef.RegisterYAML(reg, data); err != nil {
		fmt.Fprintln(os.Stderr, "gapi:", err)
		os.Exit(1)
	}
	return reg
}

func typesCmd(args []string) {
	fs := flag.NewFlagSet("types", flag.ExitOnError)
	var file string
	fs.StringVar(&file, "f", "", "YAML type declaration file")
	_ = fs.Parse(args)
	if file == "" {
		fs.Usage()
		os.Exit(2)
	}
	reg := loadRegistry(file)
	for _, name := range reg.Names() {
		t, _ := reg.Lookup(name)
		fmt.Printf("%s\n", name)
		if ds := t.Defaults(); len(ds) > 0 {
			fmt.Printf("  defaults: %s\n", strings.Join(ds, ", "))
		}
		for _, c := range t.Children() {
			shape := "single"
			if c.Shape == gapi.ShapeList {
				shape = "list"
			}
			fmt.Printf("  child: %s (%s, %s)\n", c.PropertyName(), c.TypeName, shape)
		}
	}
}

type setFlags []gapi.Pair

func (s *setFlags) String() string { return fmt.Sprint([]gapi.Pair(*s)) }

func (s *setFlags) Set(v string) error {
	name, val, ok := strings.Cut(v, "=")
	if !ok {
		return fmt.Errorf("-set wants name=value, got %q", v)
	}
	*s = append(*s, gapi.P(name, val))
	return nil
}

func newCmd(args []string) {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	var file, typeName, format string
	var sets setFlags
	fs.StringVar(&file, "f", "", "YAML type declaration file")
	fs.StringVar(&typeName, "type", "", "type to construct")
	fs.StringVar(&format, "format", "json", "output format: json or dump")
	fs.Var(&sets, "set", "construction argument name=value (repeatable)")
	_ = fs.Parse(args)
	if file == "" || typeName == "" {
		fs.Usage()
		os.Exit(2)
	}
	reg := loadRegistry(file)
	o, err := reg.New(typeName, sets...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gapi:", err)
		os.Exit(1)
	}
	switch format {
	case "dump":
		dump.Fdump(os.Stdout, o)
	default:
		b, err := codec.EncodeJSON(o)
		if err != nil {
			fmt.Fprintln(os.Stderr, "gapi:", err)
			os.Exit(1)
		}
		fmt.Println(string(b))
	}
}
