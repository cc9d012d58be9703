package ast

import (
	"sort"
	"strings"
)

// ItemKind discriminates top-level declarations that may share a name.
type ItemKind int

const (
	StructItem ItemKind = iota
	FunctionItem
	ImplementationItem
	ImportItem
)

func (k ItemKind) String() string {
	switch k {
	case StructItem:
		return "Struct"
	case FunctionItem:
		return "Function"
	case ImplementationItem:
		return "Implementation"
	case ImportItem:
		return "Import"
	}
	return "Unknown"
}

// ItemKey identifies an item. A struct and its impl block share a name but
// not a kind.
type ItemKey struct {
	Name string
	Kind ItemKind
}

type Item interface {
	Node
	Key() ItemKey
	isItem()
}

func (*Struct) isItem()         {}
func (*Function) isItem()       {}
func (*Implementation) isItem() {}
func (*Import) isItem()         {}

// Struct represents a record type declaration
// Example: "type Foo { bar: int, baz: Option<string> }"
type Struct struct {
	Name   Ident
	Fields []*Field
	Span   Span
}

// Field is a single "name: Type" pair of a struct.
type Field struct {
	Name Ident
	Type *Type
	Span Span
}

// Function represents a function declaration
// Example: "fn get_bar(x: int) -> int { let a = 1; }"
type Function struct {
	Name   Ident
	Params []*Param
	Return *Type
	Body   []Statement
	Span   Span
}

type Param struct {
	Name Ident
	Type *Type
	Span Span
}

// Implementation is an impl block. Entries are checked to be functions
// during lowering, not while parsing.
// Example: "impl Foo { fn new() -> Self { ... } }"
type Implementation struct {
	Name    Ident
	Entries []*ImplEntry
	Span    Span
}

type ImplEntry struct {
	Name Ident
	Item Item
	Span Span
}

// Import records a module path. It is never dereferenced.
// Example: "use std::io;"
type Import struct {
	Path []Ident
	Span Span
}

func (s *Struct) Key() ItemKey         { return ItemKey{Name: s.Name.Value, Kind: StructItem} }
func (f *Function) Key() ItemKey       { return ItemKey{Name: f.Name.Value, Kind: FunctionItem} }
func (i *Implementation) Key() ItemKey { return ItemKey{Name: i.Name.Value, Kind: ImplementationItem} }
func (i *Import) Key() ItemKey         { return ItemKey{Name: i.PathString(), Kind: ImportItem} }

// PathString joins the import path with "::".
func (i *Import) PathString() string {
	parts := make([]string, len(i.Path))
	for n, p := range i.Path {
		parts[n] = p.Value
	}
	return strings.Join(parts, "::")
}

// Items maps (name, kind) to the declared item.
type Items map[ItemKey]Item

// Keys returns the keys ordered by kind, then name.
func (items Items) Keys() []ItemKey {
	keys := make([]ItemKey, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Kind != keys[j].Kind {
			return keys[i].Kind < keys[j].Kind
		}
		return keys[i].Name < keys[j].Name
	})
	return keys
}

// Structs returns struct items ordered by name.
func (items Items) Structs() []*Struct {
	var out []*Struct
	for _, k := range items.Keys() {
		if s, ok := items[k].(*Struct); ok {
			out = append(out, s)
		}
	}
	return out
}

// Implementations returns impl blocks ordered by name.
func (items Items) Implementations() []*Implementation {
	var out []*Implementation
	for _, k := range items.Keys() {
		if i, ok := items[k].(*Implementation); ok {
			out = append(out, i)
		}
	}
	return out
}

// Functions returns loose functions ordered by name.
func (items Items) Functions() []*Function {
	var out []*Function
	for _, k := range items.Keys() {
		if f, ok := items[k].(*Function); ok {
			out = append(out, f)
		}
	}
	return out
}

// Imports returns imports ordered by path.
func (items Items) Imports() []*Import {
	var out []*Import
	for _, k := range items.Keys() {
		if i, ok := items[k].(*Import); ok {
			out = append(out, i)
		}
	}
	return out
}

// File is the result of parsing one compilation unit.
type File struct {
	Name  string
	Items Items
	// Order lists item keys in source order, for printing.
	Order []ItemKey
}
