package ir

import (
	"fmt"
	"strings"

	"dwarf/internal/types"

	"github.com/google/uuid"
)

// Printer renders a store as text. Output depends only on the records, not
// on the order they were inserted in.
type Printer struct {
	store    *Store
	catalogs types.Chain
	indent   int
	output   strings.Builder
}

func NewPrinter(store *Store, catalogs types.Chain) *Printer {
	return &Printer{store: store, catalogs: catalogs}
}

// Print returns the string representation of the store. Object types are
// named through catalogs.
func Print(store *Store, catalogs types.Chain) string {
	p := NewPrinter(store, catalogs)
	p.printStore()
	return p.output.String()
}

func (p *Printer) writeLine(format string, args ...interface{}) {
	p.output.WriteString(strings.Repeat("  ", p.indent))
	p.output.WriteString(fmt.Sprintf(format, args...))
	p.output.WriteString("\n")
}

func (p *Printer) printStore() {
	for _, imp := range p.store.Imports() {
		p.writeLine("import %s", imp.Path)
	}

	for _, st := range p.store.Structs() {
		p.writeLine("struct %s -> %s", st.Name, p.objectName(st.Object))
		p.indent++
		for _, f := range p.store.Fields(st.ID) {
			p.writeLine("field %s: %s", f.Name, p.TypeName(f.Type))
		}
		p.indent--
	}

	for _, impl := range p.store.Implementations() {
		p.writeLine("impl %s", p.store.structName(impl.Struct))
		p.indent++
		for _, fn := range p.store.Methods(impl.ID) {
			p.printFunction(fn)
		}
		p.indent--
	}

	for _, fn := range p.store.Functions() {
		if fn.Implementation == nil {
			p.printFunction(fn)
		}
	}
}

func (p *Printer) printFunction(fn *Function) {
	params := make([]string, 0)
	for _, param := range p.store.Parameters(fn.ID) {
		name := "?"
		if v, ok := p.store.Variable(param.Variable); ok {
			name = fmt.Sprintf("%s: %s", v.Name, p.TypeName(v.Type))
		}
		params = append(params, name)
	}
	p.writeLine("fn %s(%s) -> %s", fn.Name, strings.Join(params, ", "), p.TypeName(fn.Return))

	p.indent++
	p.printBlock(fn.Block)
	p.indent--
}

func (p *Printer) printBlock(id uuid.UUID) {
	block, ok := p.store.Block(id)
	if !ok {
		return
	}
	p.writeLine("block: %s", p.TypeName(block.Type))

	p.indent++
	for _, st := range p.store.Statements(id) {
		switch st.Kind {
		case LetStatement:
			name := "?"
			if st.Variable != nil {
				if v, ok := p.store.Variable(*st.Variable); ok {
					name = v.Name
				}
			}
			p.writeLine("let %s: %s", name, p.TypeName(st.Type))
		default:
			p.writeLine("%s: %s", st.Kind, p.TypeName(st.Type))
		}

		if nested, ok := p.store.BlockOf(st.ID); ok {
			p.indent++
			p.printBlock(nested.ID)
			p.indent--
		}
	}
	p.indent--
}

// TypeName renders a value type, e.g. "Integer", "Option<Foo>".
func (p *Printer) TypeName(id uuid.UUID) string {
	vt, ok := p.store.ValueType(id)
	if !ok {
		return "<" + id.String() + ">"
	}
	switch vt.Kind {
	case EmptyType:
		return "()"
	case UnknownType:
		return "?"
	case ObjectType:
		return p.objectName(vt.Object)
	case OptionType:
		if opt, ok := p.store.Option(vt.Option); ok {
			return "Option<" + p.TypeName(opt.Inner) + ">"
		}
	}
	return vt.Kind.String()
}

func (p *Printer) objectName(id uuid.UUID) string {
	if obj, ok := p.catalogs.Object(id); ok {
		return types.UpperCamel(obj.Name)
	}
	return id.String()
}
