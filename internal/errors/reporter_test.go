package errors

import (
	goerrors "errors"
	"strings"
	"testing"

	"dwarf/internal/ast"
	"dwarf/internal/ir"
	"dwarf/internal/parser"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestLocate(t *testing.T) {
	source := "type Foo {\n    bar: int\n}"

	assert.Equal(t, Position{Line: 1, Column: 1}, Locate(source, 0))
	assert.Equal(t, Position{Line: 1, Column: 6}, Locate(source, 5))
	assert.Equal(t, Position{Line: 2, Column: 5}, Locate(source, 15))
	assert.Equal(t, Position{Line: 3, Column: 2}, Locate(source, len(source)))
	assert.Equal(t, Position{Line: 3, Column: 2}, Locate(source, len(source)+10))
}

func TestLocateCountsCharacters(t *testing.T) {
	source := "fn f() → int {}"
	// "→" is three bytes but one column.
	assert.Equal(t, Position{Line: 1, Column: 10}, Locate(source, strings.Index(source, "int")))
}

func TestErrorReporter(t *testing.T) {
	source := `type Foo {
    bar: int,
    bar: string,
}`
	reporter := NewErrorReporter("test.dw", source)

	span := ast.Span{Start: strings.LastIndex(source, "bar"), End: strings.LastIndex(source, "bar") + 3}
	err := DuplicateField("Foo", ast.Ident{Value: "bar", Span: span})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "error["+ErrorDuplicateField+"]")
	assert.Contains(t, formatted, "field 'bar' is already declared in struct 'Foo'")
	assert.Contains(t, formatted, "test.dw:3:5")
	assert.Contains(t, formatted, "    ^^^")
	assert.Contains(t, formatted, "rename or remove")
	assert.Contains(t, formatted, "note:")
}

func TestWarningFormatting(t *testing.T) {
	source := `impl Fo {}`
	reporter := NewErrorReporter("test.dw", source)

	err := ImplWithoutStruct(ast.Ident{Value: "Fo", Span: ast.Span{Start: 5, End: 7}}, []string{"Foo", "Bar"})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "warning["+WarningImplWithoutStruct+"]")
	assert.Contains(t, formatted, "did you mean 'Foo'?")
	assert.True(t, err.IsWarning())
}

func TestErrorMarkerCreation(t *testing.T) {
	reporter := NewErrorReporter("test.dw", "let variable = 1;")

	marker := reporter.createMarker(5, 8, Error)
	assert.Equal(t, 4, strings.Count(marker, " "))
	assert.Equal(t, 8, strings.Count(marker, "^"))
}

func TestMarkerStopsAtLineEnd(t *testing.T) {
	source := "type Foo {\n}"
	reporter := NewErrorReporter("test.dw", source)

	// Span covering the whole struct is clipped to the first line.
	assert.Equal(t, 10, reporter.markerLength(ast.Span{Start: 0, End: len(source)}, "type Foo {", 1))
	assert.Equal(t, 1, reporter.markerLength(ast.Span{Start: 3, End: 3}, "type Foo {", 4))
}

func TestFromScanError(t *testing.T) {
	_, _, scanErrs := parser.ParseSource("test.dw", "type Foo { # }\nlet s = \"open")
	require.Len(t, scanErrs, 2)

	invalid := FromScanError(scanErrs[0])
	assert.Equal(t, ErrorInvalidCharacter, invalid.Code)
	assert.Equal(t, ast.Span{Start: 11, End: 12}, invalid.Span)

	unterminated := FromScanError(scanErrs[1])
	assert.Equal(t, ErrorUnterminatedString, unterminated.Code)
}

func TestFromParseError(t *testing.T) {
	result := parser.Parse("test.dw", "type Foo {}\ntype Foo {}\nfn f( -> int {}\nimpl Bar {")
	errs := FromParseResult(result)
	require.NotEmpty(t, errs)

	codes := make(map[string]bool)
	for _, e := range errs {
		codes[e.Code] = true
	}
	assert.True(t, codes[ErrorDuplicateItem])
	assert.True(t, codes[ErrorUnexpectedToken])
	assert.True(t, codes[ErrorUnclosedDelimiter])
	assert.True(t, HasErrors(errs))
}

func TestUnclosedPointsAtOpening(t *testing.T) {
	source := "impl Bar {"
	result := parser.Parse("test.dw", source)
	require.Len(t, result.ParseErrors, 1)

	err := FromParseError(result.ParseErrors[0])
	assert.Equal(t, ErrorUnclosedDelimiter, err.Code)
	assert.Equal(t, ast.Span{Start: 9, End: 10}, err.Span)
	assert.Equal(t, "unclosed delimiter `{`", err.Message)
}

func TestFromLowerError(t *testing.T) {
	span := ast.Span{Start: 3, End: 6}

	tests := []struct {
		err  error
		code string
	}{
		{&ir.LowerError{Err: ir.ErrTypeNotFound, Name: "Fooo", Span: span}, ErrorTypeNotFound},
		{&ir.LowerError{Err: ir.ErrSelfOutsideImpl, Name: "Self", Span: span}, ErrorSelfOutsideImpl},
		{&ir.LowerError{Err: ir.ErrObjectNotFound, Name: "Bar", Span: span}, ErrorObjectNotFound},
		{&ir.LowerError{Err: ir.ErrStructNotFound, Name: "Bar", Span: span}, ErrorStructNotFound},
		{&ir.LowerError{Err: ir.ErrInvalidImplEntry, Name: "x", Span: span}, ErrorInvalidImplEntry},
		{&ir.LowerError{Err: ir.ErrDuplicateField, Name: "bar", Span: span}, ErrorDuplicateField},
		{&ir.LowerError{Err: ir.ErrUnimplemented, Name: "item statement", Span: span}, ErrorUnimplemented},
	}
	for _, tt := range tests {
		got := FromLowerError(tt.err, []string{"Foo", "Uuid"})
		assert.Equal(t, tt.code, got.Code, tt.err.Error())
		assert.Equal(t, span, got.Span)
	}

	notFound := FromLowerError(tests[0].err, []string{"Foo", "Uuid"})
	require.Len(t, notFound.Suggestions, 1)
	assert.Contains(t, notFound.Suggestions[0].Message, "did you mean 'Foo'?")

	plain := FromLowerError(goerrors.New("boom"), nil)
	assert.Equal(t, "boom", plain.Message)
	assert.Empty(t, plain.Code)
}

func TestErrorCategories(t *testing.T) {
	assert.Equal(t, "Declaration", GetErrorCategory(ErrorDuplicateField))
	assert.Equal(t, "Parser", GetErrorCategory(ErrorUnexpectedToken))
	assert.Equal(t, "Lowering", GetErrorCategory(ErrorTypeNotFound))
	assert.Equal(t, "Warning", GetErrorCategory(WarningImplWithoutStruct))
	assert.True(t, IsWarning(WarningUnresolvedImport))
	assert.False(t, IsWarning(ErrorSelfOutsideImpl))
	assert.NotEqual(t, "Unknown error code", GetErrorDescription(ErrorUnclosedDelimiter))
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("hello", "hello"))
	assert.Equal(t, 1, levenshteinDistance("hello", "hallo"))
	assert.Equal(t, 1, levenshteinDistance("hello", "helo"))
	assert.Equal(t, 5, levenshteinDistance("hello", ""))
	assert.Equal(t, 3, levenshteinDistance("kitten", "sitting"))
}

func TestSimilarNameFinding(t *testing.T) {
	candidates := []string{"Order", "Orders", "LineItem", "xyz"}

	similar := findSimilarNames("Ordr", candidates)
	assert.Contains(t, similar, "Order")
	assert.NotContains(t, similar, "xyz")

	assert.Empty(t, findSimilarNames("verydifferent", candidates))
}

func TestErrorLevels(t *testing.T) {
	reporter := NewErrorReporter("test.dw", "test")

	errorFormatted := reporter.FormatError(CompilerError{Level: Error, Message: "test error"})
	warningFormatted := reporter.FormatError(CompilerError{Level: Warning, Message: "test warning"})

	assert.Contains(t, errorFormatted, "error: test error")
	assert.Contains(t, warningFormatted, "warning: test warning")
}
