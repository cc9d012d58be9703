package lsp

import (
	"unicode/utf16"

	"dwarf/internal/ast"
	"dwarf/internal/errors"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// lineIndex converts byte offsets into 0-based line/character positions.
type lineIndex struct {
	source string
	starts []int
}

func newLineIndex(source string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{source: source, starts: starts}
}

func (li *lineIndex) position(offset int) protocol.Position {
	if offset > len(li.source) {
		offset = len(li.source)
	}
	if offset < 0 {
		offset = 0
	}
	line := 0
	for line+1 < len(li.starts) && li.starts[line+1] <= offset {
		line++
	}
	// Characters are UTF-16 code units
	char := 0
	for _, r := range li.source[li.starts[line]:offset] {
		char += utf16.RuneLen(r)
	}
	return protocol.Position{Line: uint32(line), Character: uint32(char)}
}

func (li *lineIndex) rangeOf(span ast.Span) protocol.Range {
	end := span.End
	if end < span.Start {
		end = span.Start
	}
	return protocol.Range{Start: li.position(span.Start), End: li.position(end)}
}

// ConvertDiagnostics transforms compiler diagnostics into LSP diagnostics
// with ranges resolved against source.
func ConvertDiagnostics(source string, errs []errors.CompilerError) []protocol.Diagnostic {
	li := newLineIndex(source)
	diagnostics := make([]protocol.Diagnostic, 0, len(errs))

	for _, e := range errs {
		severity := protocol.DiagnosticSeverityError
		if e.IsWarning() {
			severity = protocol.DiagnosticSeverityWarning
		}

		diagnostic := protocol.Diagnostic{
			Range:    li.rangeOf(e.Span),
			Severity: &severity,
			Source:   ptrString("dwarf"),
			Message:  e.Message,
		}
		if e.Code != "" {
			diagnostic.Code = &protocol.IntegerOrString{Value: e.Code}
		}
		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

func ptrString(s string) *string {
	return &s
}
