package errors

import (
	goerrors "errors"
	"fmt"

	"dwarf/internal/ir"
	"dwarf/internal/parser"
)

// FromScanError wraps a lexical error.
func FromScanError(err parser.ScanError) CompilerError {
	if err.Unterminated {
		return NewSemanticError(ErrorUnterminatedString, err.Message, err.Span).
			WithSuggestion("add the closing '\"'").
			WithNote("string literals cannot contain escaped quotes").
			Build()
	}
	return NewSemanticError(ErrorInvalidCharacter, err.Message, err.Span).Build()
}

// FromParseError wraps a syntax error.
func FromParseError(err parser.ParseError) CompilerError {
	switch err.Reason {
	case parser.Unclosed:
		return NewSemanticError(ErrorUnclosedDelimiter, err.Error(), err.Opened).
			WithNote(fmt.Sprintf("input ended at offset %d", err.Span.Start)).
			Build()
	case parser.Custom:
		return NewSemanticError(ErrorDuplicateItem, err.Error(), err.Span).
			WithSuggestion("rename one of the items").
			WithNote("a struct and an impl block may share a name; two items of the same kind may not").
			Build()
	}
	return NewSemanticError(ErrorUnexpectedToken, err.Error(), err.Span).Build()
}

// FromLowerError wraps the error that stopped lowering. knownTypes feeds
// "did you mean" suggestions for unresolved names.
func FromLowerError(err error, knownTypes []string) CompilerError {
	var lowerErr *ir.LowerError
	if !goerrors.As(err, &lowerErr) {
		return CompilerError{Level: Error, Message: err.Error()}
	}

	span := lowerErr.Span
	switch {
	case goerrors.Is(err, ir.ErrTypeNotFound):
		return TypeNotFound(lowerErr.Name, span, knownTypes)
	case goerrors.Is(err, ir.ErrSelfOutsideImpl):
		return SelfOutsideImpl(span)
	case goerrors.Is(err, ir.ErrObjectNotFound):
		return NewSemanticError(ErrorObjectNotFound, lowerErr.Error(), span).
			WithHelp(fmt.Sprintf("add an object named '%s' to the domain model", lowerErr.Name)).
			Build()
	case goerrors.Is(err, ir.ErrStructNotFound):
		return NewSemanticError(ErrorStructNotFound, lowerErr.Error(), span).
			WithSuggestion(fmt.Sprintf("declare 'type %s { ... }'", lowerErr.Name)).
			Build()
	case goerrors.Is(err, ir.ErrDuplicateField):
		return NewSemanticError(ErrorDuplicateField, lowerErr.Error(), span).
			WithSuggestion(fmt.Sprintf("rename or remove the second '%s'", lowerErr.Name)).
			Build()
	case goerrors.Is(err, ir.ErrInvalidImplEntry):
		return NewSemanticError(ErrorInvalidImplEntry, lowerErr.Error(), span).Build()
	}
	return NewSemanticError(ErrorUnimplemented, lowerErr.Error(), span).Build()
}

// FromParseResult collects scan errors then parse errors.
func FromParseResult(result *parser.Result) []CompilerError {
	out := make([]CompilerError, 0, len(result.ScanErrors)+len(result.ParseErrors))
	for _, e := range result.ScanErrors {
		out = append(out, FromScanError(e))
	}
	for _, e := range result.ParseErrors {
		out = append(out, FromParseError(e))
	}
	return out
}

// HasErrors reports whether any diagnostic is more severe than a warning.
func HasErrors(errs []CompilerError) bool {
	for _, e := range errs {
		if !e.IsWarning() {
			return true
		}
	}
	return false
}
