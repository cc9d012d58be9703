package ir

// This file provides the main entry point for lowering parsed items into
// the IR store.

import (
	"dwarf/internal/ast"
	"dwarf/internal/types"
)

// BuildProgram lowers items into a fresh store. model is the domain
// catalog structs must match; core backs primitive object types such as
// Uuid. A field name reused within a struct fails with ErrDuplicateField.
func BuildProgram(items ast.Items, model, core types.Catalog) (*Store, error) {
	builder := NewBuilder(NewStore(), model, core)
	if err := builder.Build(items); err != nil {
		return nil, err
	}
	return builder.Store(), nil
}

// PrintProgram returns a pretty-printed representation of the store.
func PrintProgram(store *Store, model, core types.Catalog) string {
	return Print(store, types.Chain{model, core})
}
