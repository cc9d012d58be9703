package semantic

import (
	"dwarf/internal/ast"
)

type SymbolKind int

const (
	SymbolField SymbolKind = iota
	SymbolParameter
)

type Symbol struct {
	Name string
	Kind SymbolKind
	Span ast.Span
}

// SymbolTable is a single flat scope: the fields of a struct or the
// parameters of a function.
type SymbolTable struct {
	symbols map[string]*Symbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		symbols: make(map[string]*Symbol),
	}
}

// Define adds name to the scope. It returns the earlier symbol and false
// if name is already defined.
func (st *SymbolTable) Define(name string, kind SymbolKind, span ast.Span) (*Symbol, bool) {
	if existing, ok := st.symbols[name]; ok {
		return existing, false
	}
	symbol := &Symbol{Name: name, Kind: kind, Span: span}
	st.symbols[name] = symbol
	return symbol, true
}
