// Package semantic runs declaration checks over a parsed item map before
// it is lowered.
package semantic

import (
	"sort"

	"dwarf/internal/ast"
	"dwarf/internal/errors"
)

type Analyzer struct {
	errors []errors.CompilerError
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze checks items and returns diagnostics ordered by position.
func Analyze(items ast.Items) []errors.CompilerError {
	return NewAnalyzer().Analyze(items)
}

func (a *Analyzer) Analyze(items ast.Items) []errors.CompilerError {
	a.errors = make([]errors.CompilerError, 0)

	structNames := make([]string, 0)
	for _, s := range items.Structs() {
		structNames = append(structNames, s.Name.Value)
		a.analyzeStruct(s)
	}

	for _, fn := range items.Functions() {
		a.analyzeFunction(fn, false)
	}

	for _, impl := range items.Implementations() {
		if _, ok := items[ast.ItemKey{Name: impl.Name.Value, Kind: ast.StructItem}]; !ok {
			a.errors = append(a.errors, errors.ImplWithoutStruct(impl.Name, structNames))
		}
		for _, entry := range impl.Entries {
			if fn, ok := entry.Item.(*ast.Function); ok {
				a.analyzeFunction(fn, true)
			}
		}
	}

	for _, imp := range items.Imports() {
		a.errors = append(a.errors, errors.UnresolvedImport(imp))
	}

	sort.SliceStable(a.errors, func(i, j int) bool {
		return a.errors[i].Span.Start < a.errors[j].Span.Start
	})
	return a.errors
}

func (a *Analyzer) analyzeStruct(s *ast.Struct) {
	scope := NewSymbolTable()
	for _, f := range s.Fields {
		if _, ok := scope.Define(f.Name.Value, SymbolField, f.Name.Span); !ok {
			a.errors = append(a.errors, errors.DuplicateField(s.Name.Value, f.Name))
		}
		// Fields are resolved without an enclosing type.
		a.checkSelf(f.Type)
	}
}

func (a *Analyzer) analyzeFunction(fn *ast.Function, inImpl bool) {
	params := NewSymbolTable()
	for _, p := range fn.Params {
		if _, ok := params.Define(p.Name.Value, SymbolParameter, p.Name.Span); !ok {
			a.errors = append(a.errors, errors.DuplicateParameter(fn.Name.Value, p.Name))
		}
		if !inImpl {
			a.checkSelf(p.Type)
		}
	}
	if !inImpl {
		a.checkSelf(fn.Return)
	}
}

// checkSelf reports every Self inside t, including Option arguments.
func (a *Analyzer) checkSelf(t *ast.Type) {
	for cur := t; cur != nil; cur = cur.Inner {
		if cur.Kind == ast.SelfType {
			a.errors = append(a.errors, errors.SelfOutsideImpl(cur.Span))
		}
	}
}
