package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Rule names produced by DwarfLexer.
const (
	Comment      = "Comment"
	Whitespace   = "Whitespace"
	Float        = "Float"
	Integer      = "Integer"
	String       = "String"
	Unterminated = "Unterminated"
	Arrow        = "Arrow"
	DoubleColon  = "DoubleColon"
	Operator     = "Operator"
	Punctuation  = "Punctuation"
	Word         = "Word"
	Invalid      = "Invalid"
)

// DwarfLexer tokenizes dwarf source. Rules are tried in order and the first
// match wins, so floats are tried before integers and comments before operators.
var DwarfLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments
	{Name: Comment, Pattern: `//[^\n]*`},
	{Name: Whitespace, Pattern: `[ \t\r\n]+`},

	// Literals
	{Name: Float, Pattern: `[0-9]+\.[0-9]+`},
	{Name: Integer, Pattern: `[0-9]+`},
	{Name: String, Pattern: `"[^"]*"`},
	{Name: Unterminated, Pattern: `"[^"]*`},

	// Two-character punctuation
	{Name: Arrow, Pattern: `->|→`},
	{Name: DoubleColon, Pattern: `::`},

	// Operators (maximal run) and single-character punctuation
	{Name: Operator, Pattern: `[-+*/!=]+`},
	{Name: Punctuation, Pattern: `[()\[\]{}:;,<>]`},

	// Keywords, objects and identifiers are told apart by token.Lookup
	{Name: Word, Pattern: `[A-Za-z_][A-Za-z0-9_]*`},

	// Anything else is reported and skipped by the scanner
	{Name: Invalid, Pattern: `[\s\S]`},
})
