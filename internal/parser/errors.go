package parser

import (
	"fmt"
	"sort"
	"strings"

	"dwarf/internal/ast"
)

// Reason classifies a parse error.
type Reason int

const (
	Unexpected Reason = iota
	Unclosed
	Custom
)

type ParseError struct {
	Reason Reason
	Span   ast.Span

	// Unexpected
	Expected []string
	Found    string
	Label    string // what was being parsed, e.g. "variable name"

	// Unclosed
	Delimiter string
	Opened    ast.Span

	// Custom
	Message string
}

// ExpectedString joins the deduplicated expected set, or "something else"
// when the set is unknown.
func (e ParseError) ExpectedString() string {
	seen := make(map[string]bool)
	var uniq []string
	for _, exp := range e.Expected {
		if !seen[exp] {
			seen[exp] = true
			uniq = append(uniq, exp)
		}
	}
	if len(uniq) == 0 {
		return "something else"
	}
	sort.Strings(uniq)
	return strings.Join(uniq, ", ")
}

func (e ParseError) Error() string {
	switch e.Reason {
	case Unclosed:
		return fmt.Sprintf("unclosed delimiter `%s`", e.Delimiter)
	case Custom:
		return e.Message
	}

	msg := fmt.Sprintf("expected %s, found %s", e.ExpectedString(), e.Found)
	if e.Label != "" {
		msg += fmt.Sprintf(" while parsing %s", e.Label)
	}
	return msg
}
