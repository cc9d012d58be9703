package parser

import "dwarf/internal/ast"

// Result holds everything produced for one source file.
type Result struct {
	File        *ast.File
	Tokens      []Lexeme
	ParseErrors []ParseError
	ScanErrors  []ScanError
}

// HasErrors reports whether scanning or parsing produced any error.
func (r *Result) HasErrors() bool {
	return len(r.ParseErrors) > 0 || len(r.ScanErrors) > 0
}

// Parse scans and parses source. When scanning yields nothing but errors
// the parser is not run.
func Parse(path string, source string) *Result {
	scanner := NewScanner(path, source)
	tokens := scanner.ScanTokens()

	result := &Result{
		Tokens:     tokens,
		ScanErrors: scanner.errors,
	}
	if len(tokens) == 1 && len(scanner.errors) > 0 {
		return result
	}

	parser := NewParser(path, tokens)
	result.File = parser.ParseFile()
	result.ParseErrors = parser.errors
	return result
}

func ParseSource(path string, source string) (*ast.File, []ParseError, []ScanError) {
	r := Parse(path, source)
	return r.File, r.ParseErrors, r.ScanErrors
}
