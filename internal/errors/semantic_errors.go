package errors

import (
	"fmt"
	"strings"

	"dwarf/internal/ast"
)

// SemanticErrorBuilder provides a fluent interface for creating errors with suggestions
type SemanticErrorBuilder struct {
	err CompilerError
}

// NewSemanticError creates a new semantic error builder
func NewSemanticError(code, message string, span ast.Span) *SemanticErrorBuilder {
	return &SemanticErrorBuilder{
		err: CompilerError{
			Level:   Error,
			Code:    code,
			Message: message,
			Span:    span,
		},
	}
}

// NewSemanticWarning creates a new semantic warning builder
func NewSemanticWarning(code, message string, span ast.Span) *SemanticErrorBuilder {
	return &SemanticErrorBuilder{
		err: CompilerError{
			Level:   Warning,
			Code:    code,
			Message: message,
			Span:    span,
		},
	}
}

// WithSuggestion adds a suggestion to the error
func (b *SemanticErrorBuilder) WithSuggestion(message string) *SemanticErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *SemanticErrorBuilder) WithReplacement(message, replacement string, span ast.Span) *SemanticErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
		Span:        span,
	})
	return b
}

// WithNote adds a note to the error
func (b *SemanticErrorBuilder) WithNote(note string) *SemanticErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *SemanticErrorBuilder) WithHelp(help string) *SemanticErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *SemanticErrorBuilder) Build() CompilerError {
	return b.err
}

// DuplicateField creates an error for a struct field declared twice
func DuplicateField(structName string, field ast.Ident) CompilerError {
	return NewSemanticError(ErrorDuplicateField,
		fmt.Sprintf("field '%s' is already declared in struct '%s'", field.Value, structName), field.Span).
		WithSuggestion(fmt.Sprintf("rename or remove the second '%s'", field.Value)).
		WithNote("each field name may appear once per struct").
		Build()
}

// DuplicateParameter creates an error for a parameter name used twice
func DuplicateParameter(functionName string, param ast.Ident) CompilerError {
	return NewSemanticError(ErrorDuplicateParameter,
		fmt.Sprintf("parameter '%s' is already declared in function '%s'", param.Value, functionName), param.Span).
		WithSuggestion(fmt.Sprintf("rename the second '%s'", param.Value)).
		Build()
}

// SelfOutsideImpl creates an error for Self written where no impl block encloses it
func SelfOutsideImpl(span ast.Span) CompilerError {
	return NewSemanticError(ErrorSelfOutsideImpl, "Self used outside impl block", span).
		WithSuggestion("name the type explicitly").
		WithNote("Self refers to the type an impl block is attached to").
		Build()
}

// ImplWithoutStruct creates a warning for an impl block with no struct of the same name
func ImplWithoutStruct(name ast.Ident, structNames []string) CompilerError {
	builder := NewSemanticWarning(WarningImplWithoutStruct,
		fmt.Sprintf("impl block for '%s' has no matching struct", name.Value), name.Span)

	builder = withSimilar(builder, name.Value, structNames)
	return builder.
		WithHelp(fmt.Sprintf("declare 'type %s { ... }' in this file", name.Value)).
		Build()
}

// UnresolvedImport creates a warning noting that imports are recorded only
func UnresolvedImport(imp *ast.Import) CompilerError {
	return NewSemanticWarning(WarningUnresolvedImport,
		fmt.Sprintf("import '%s' is recorded but not resolved", imp.PathString()), imp.Span).
		WithNote("imported modules are not loaded").
		Build()
}

// TypeNotFound creates an error for a type name no catalog knows, suggesting close matches
func TypeNotFound(name string, span ast.Span, known []string) CompilerError {
	builder := NewSemanticError(ErrorTypeNotFound, fmt.Sprintf("type not found for object '%s'", name), span)
	builder = withSimilar(builder, name, known)
	return builder.
		WithHelp("types resolve against the domain model first, then the core catalog").
		Build()
}

func withSimilar(builder *SemanticErrorBuilder, name string, candidates []string) *SemanticErrorBuilder {
	similar := findSimilarNames(name, candidates)
	switch len(similar) {
	case 0:
		return builder
	case 1:
		return builder.WithSuggestion(fmt.Sprintf("did you mean '%s'?", similar[0]))
	default:
		return builder.WithSuggestion(fmt.Sprintf("did you mean one of: '%s'?", strings.Join(similar, "', '")))
	}
}

// Helper functions

func findSimilarNames(target string, candidates []string) []string {
	var similar []string

	for _, candidate := range candidates {
		if candidate != target && levenshteinDistance(target, candidate) <= 2 && len(candidate) > 2 {
			similar = append(similar, candidate)
		}
	}

	return similar
}

// Simple Levenshtein distance implementation for finding similar names
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}

	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}
