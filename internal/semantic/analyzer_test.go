package semantic

import (
	"testing"

	"dwarf/internal/ast"
	"dwarf/internal/errors"
	"dwarf/internal/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyze(t *testing.T, source string) []errors.CompilerError {
	t.Helper()
	file, parseErrors, scanErrors := parser.ParseSource("test.dw", source)
	require.Empty(t, scanErrors)
	require.Empty(t, parseErrors)
	require.NotNil(t, file)
	return Analyze(file.Items)
}

func codes(errs []errors.CompilerError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Code
	}
	return out
}

func TestCleanProgram(t *testing.T) {
	errs := analyze(t, `
type Foo { bar: int, next: Option<Foo> }
impl Foo {
    fn new(bar: int) -> Self {}
    fn wrap(other: Option<Self>) -> Option<Self> {}
}
fn helper(a: int, b: string) -> Uuid {}
`)
	assert.Empty(t, errs)
}

func TestDuplicateField(t *testing.T) {
	source := "type Foo { bar: int, baz: int, bar: string }"
	errs := analyze(t, source)

	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorDuplicateField, errs[0].Code)
	assert.Equal(t, ast.Span{Start: 31, End: 34}, errs[0].Span)
}

func TestDuplicateParameter(t *testing.T) {
	errs := analyze(t, `
type Foo {}
impl Foo {
    fn set(x: int, x: int) -> int {}
}
fn loose(a: int, a: bool) -> int {}
`)
	assert.Equal(t, []string{errors.ErrorDuplicateParameter, errors.ErrorDuplicateParameter}, codes(errs))
	assert.Contains(t, errs[0].Message, "'set'")
	assert.Contains(t, errs[1].Message, "'loose'")
}

func TestSelfOutsideImpl(t *testing.T) {
	errs := analyze(t, `
type Foo { me: Option<Self> }
fn make(x: Self) -> Option<Option<Self>> {}
`)
	assert.Equal(t, []string{
		errors.ErrorSelfOutsideImpl,
		errors.ErrorSelfOutsideImpl,
		errors.ErrorSelfOutsideImpl,
	}, codes(errs))
}

func TestImplWithoutStruct(t *testing.T) {
	errs := analyze(t, "type Foo {}\nimpl Fooo {}")

	require.Len(t, errs, 1)
	assert.Equal(t, errors.WarningImplWithoutStruct, errs[0].Code)
	assert.True(t, errs[0].IsWarning())
	require.NotEmpty(t, errs[0].Suggestions)
	assert.Contains(t, errs[0].Suggestions[0].Message, "'Foo'")
	assert.False(t, errors.HasErrors(errs))
}

func TestImportsWarn(t *testing.T) {
	errs := analyze(t, "use std::io;")
	assert.Equal(t, []string{errors.WarningUnresolvedImport}, codes(errs))
}

func TestDiagnosticsOrderedBySpan(t *testing.T) {
	errs := analyze(t, `
impl Missing {}
type Foo { a: int, a: int }
fn f(x: int, x: int) -> int {}
`)
	require.Len(t, errs, 3)
	for i := 1; i < len(errs); i++ {
		assert.Less(t, errs[i-1].Span.Start, errs[i].Span.Start)
	}
	assert.Equal(t, errors.WarningImplWithoutStruct, errs[0].Code)
}

func TestSymbolTable(t *testing.T) {
	scope := NewSymbolTable()
	_, ok := scope.Define("a", SymbolParameter, ast.Span{Start: 0, End: 1})
	require.True(t, ok)

	existing, ok := scope.Define("a", SymbolParameter, ast.Span{Start: 5, End: 6})
	assert.False(t, ok)
	assert.Equal(t, 0, existing.Span.Start)

	_, ok = scope.Define("b", SymbolField, ast.Span{Start: 8, End: 9})
	assert.True(t, ok)
}
