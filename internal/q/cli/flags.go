package cli

import (
	"fmt"
	"sort"
	"strconv"
)

// FlagSet holds the typed flags declared on a command.
type FlagSet struct {
	defs []*flagDef
}

type flagDef struct {
	name      string
	shorthand rune
	usage     string
	value     flagValue
	changed   bool // Set on the command line during the current Run.
}

// flagValue is a typed destination for a flag.
type flagValue interface {
	set(raw string) error
	typeName() string // "" for bools, which take no value in help.
}

type boolValue struct{ p *bool }

func (v boolValue) set(raw string) error {
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return err
	}
	*v.p = b
	return nil
}
func (boolValue) typeName() string { return "" }

type stringValue struct{ p *string }

func (v stringValue) set(raw string) error { *v.p = raw; return nil }
func (stringValue) typeName() string       { return "string" }

type intValue struct{ p *int }

func (v intValue) set(raw string) error {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return err
	}
	*v.p = n
	return nil
}
func (intValue) typeName() string { return "int" }

func newFlagSet() *FlagSet { return &FlagSet{} }

// Changed reports whether the flag name was given on the command line in the current Run, as opposed to holding its default. Handlers use it to let an explicit
// flag, even one set to its zero value, override configuration.
func (fs *FlagSet) Changed(name string) bool {
	if fs == nil {
		return false
	}
	for _, d := range fs.defs {
		if d.name == name {
			return d.changed
		}
	}
	return false
}

// Bool declares a boolean flag. "--name" sets it to true; "--name=false" (or "--name false") sets it explicitly. shorthand may be 0.
func (fs *FlagSet) Bool(name string, shorthand rune, def bool, usage string) *bool {
	p := &def
	fs.add(name, shorthand, usage, boolValue{p})
	return p
}

// String declares a string flag. shorthand may be 0.
func (fs *FlagSet) String(name string, shorthand rune, def string, usage string) *string {
	p := &def
	fs.add(name, shorthand, usage, stringValue{p})
	return p
}

// Int declares an integer flag. shorthand may be 0.
func (fs *FlagSet) Int(name string, shorthand rune, def int, usage string) *int {
	p := &def
	fs.add(name, shorthand, usage, intValue{p})
	return p
}

func (fs *FlagSet) add(name string, shorthand rune, usage string, v flagValue) {
	if name == "" {
		panic("cli: flag name must be non-empty")
	}
	for _, d := range fs.defs {
		if d.name == name {
			panic("cli: duplicate flag --" + name)
		}
		if shorthand != 0 && d.shorthand == shorthand {
			panic(fmt.Sprintf("cli: duplicate shorthand -%c", shorthand))
		}
	}
	fs.defs = append(fs.defs, &flagDef{name: name, shorthand: shorthand, usage: usage, value: v})
}

// activeFlags returns the flags usable once cmd is selected: persistent flags of cmd and its ancestors, plus cmd's local flags, sorted by name. A name or
// shorthand declared twice along the lineage panics.
func activeFlags(cmd *Command) []*flagDef {
	var out []*flagDef
	addAll := func(fs *FlagSet) {
		if fs == nil {
			return
		}
		for _, d := range fs.defs {
			for _, existing := range out {
				if existing.name == d.name || (d.shorthand != 0 && existing.shorthand == d.shorthand) {
					panic("cli: flag conflict along command path: --" + d.name)
				}
			}
			out = append(out, d)
		}
	}
	for _, c := range cmd.lineage() {
		addAll(c.persistent)
	}
	addAll(cmd.local)
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// resetChanged clears Changed on every flag in the tree rooted at cmd.
func resetChanged(cmd *Command) {
	for _, fs := range []*FlagSet{cmd.local, cmd.persistent} {
		if fs == nil {
			continue
		}
		for _, d := range fs.defs {
			d.changed = false
		}
	}
	for _, child := range cmd.children {
		resetChanged(child)
	}
}

func lookupFlag(defs []*flagDef, name string, shorthand rune) *flagDef {
	for _, d := range defs {
		if (name != "" && d.name == name) || (name == "" && d.shorthand == shorthand) {
			return d
		}
	}
	return nil
}

func (d *flagDef) display() string {
	if d.shorthand != 0 {
		return fmt.Sprintf("-%c/--%s", d.shorthand, d.name)
	}
	return "--" + d.name
}
