// Package compiler runs the front-end stages over a single source file:
// scanning, parsing, analysis and, when a domain model is supplied,
// lowering into the IR store.
package compiler

import (
	"dwarf/internal/errors"
	"dwarf/internal/ir"
	"dwarf/internal/parser"
	"dwarf/internal/semantic"
	"dwarf/internal/types"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("dwarf.compiler")

// Unit is the outcome of checking one file.
type Unit struct {
	Path        string
	Source      string
	Result      *parser.Result
	Diagnostics []errors.CompilerError
	Store       *ir.Store
	Model       types.Catalog
	Core        types.Catalog
}

// Check parses and analyzes source. Lowering runs only when model is
// non-nil and no earlier stage reported an error.
func Check(path, source string, model types.Catalog) *Unit {
	unit := &Unit{
		Path:   path,
		Source: source,
		Model:  model,
		Core:   types.Core(),
	}

	unit.Result = parser.Parse(path, source)
	unit.Diagnostics = errors.FromParseResult(unit.Result)
	log.Debugf("%s: %d tokens, %d syntax errors", path, len(unit.Result.Tokens), len(unit.Diagnostics))

	if unit.Result.File == nil {
		return unit
	}
	unit.Diagnostics = append(unit.Diagnostics, semantic.Analyze(unit.Result.File.Items)...)

	if model == nil || errors.HasErrors(unit.Diagnostics) {
		return unit
	}

	store, err := ir.BuildProgram(unit.Result.File.Items, model, unit.Core)
	if err != nil {
		known := types.Chain{model, unit.Core}.TypeNames()
		unit.Diagnostics = append(unit.Diagnostics, errors.FromLowerError(err, known))
		return unit
	}
	unit.Store = store
	return unit
}

// Failed reports whether any stage produced an error.
func (u *Unit) Failed() bool {
	return errors.HasErrors(u.Diagnostics)
}

// Report renders every diagnostic against the unit's source.
func (u *Unit) Report() string {
	return errors.NewErrorReporter(u.Path, u.Source).FormatAll(u.Diagnostics)
}

// Program pretty-prints the lowered store, or returns "" when lowering
// did not run.
func (u *Unit) Program() string {
	if u.Store == nil {
		return ""
	}
	return ir.PrintProgram(u.Store, u.Model, u.Core)
}
