// Package token SPDX-License-Identifier: Apache-2.0
package token

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Kind classifies a lexical token.
type Kind int

const (
	ILLEGAL Kind = iota
	EOF

	// Literals
	INTEGER
	FLOAT
	STRING
	BOOL

	IDENT
	PUNCT
	TYPE
	OP
	OBJECT // identifier starting with an uppercase letter

	// Keywords
	STRUCT // "type"
	OPTION
	FN
	IMPL
	SELF
	LET
)

var kindNames = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	INTEGER: "INTEGER",
	FLOAT:   "FLOAT",
	STRING:  "STRING",
	BOOL:    "BOOL",
	IDENT:   "IDENT",
	PUNCT:   "PUNCT",
	TYPE:    "TYPE",
	OP:      "OP",
	OBJECT:  "OBJECT",
	STRUCT:  "STRUCT",
	OPTION:  "OPTION",
	FN:      "FN",
	IMPL:    "IMPL",
	SELF:    "SELF",
	LET:     "LET",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Builtin surface type names carried by TYPE tokens.
const (
	IntType    = "int"
	FloatType  = "float"
	StringType = "string"
	BoolType   = "bool"
	UuidType   = "Uuid"
)

// Punctuation carried by PUNCT tokens.
const (
	LPAREN      = "("
	RPAREN      = ")"
	LBRACKET    = "["
	RBRACKET    = "]"
	LBRACE      = "{"
	RBRACE      = "}"
	COLON       = ":"
	SEMICOLON   = ";"
	COMMA       = ","
	LT          = "<"
	GT          = ">"
	ARROW       = "->"
	DOUBLECOLON = "::"
)

// Token is a lexical token without position; spans travel alongside it.
type Token struct {
	Kind Kind
	Text string
}

var keywords = map[string]Token{
	"fn":     {Kind: FN, Text: "fn"},
	"let":    {Kind: LET, Text: "let"},
	"true":   {Kind: BOOL, Text: "true"},
	"false":  {Kind: BOOL, Text: "false"},
	"type":   {Kind: STRUCT, Text: "type"},
	"impl":   {Kind: IMPL, Text: "impl"},
	"int":    {Kind: TYPE, Text: IntType},
	"string": {Kind: TYPE, Text: StringType},
	"bool":   {Kind: TYPE, Text: BoolType},
	"float":  {Kind: TYPE, Text: FloatType},
	"Uuid":   {Kind: TYPE, Text: UuidType},
	"Option": {Kind: OPTION, Text: "Option"},
	"Self":   {Kind: SELF, Text: "Self"},
}

// Lookup classifies an identifier-shaped word: keywords first, then
// uppercase-initial words become OBJECT, everything else IDENT.
func Lookup(word string) Token {
	if tok, ok := keywords[word]; ok {
		return tok
	}
	r, _ := utf8.DecodeRuneInString(word)
	if unicode.IsUpper(r) {
		return Token{Kind: OBJECT, Text: word}
	}
	return Token{Kind: IDENT, Text: word}
}

// IsKeyword reports whether word is reserved.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}

// Keywords returns the reserved words, used for editor completion.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for w := range keywords {
		words = append(words, w)
	}
	return words
}

// Is reports whether the token has the given kind and text.
func (t Token) Is(kind Kind, text string) bool {
	return t.Kind == kind && t.Text == text
}

// Describe renders the token the way it appears in "expected ..., found ..." messages.
func (t Token) Describe() string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case INTEGER:
		return "integer"
	case FLOAT:
		return "float"
	case STRING:
		return "string"
	case BOOL:
		return "boolean"
	case IDENT:
		if t.Text == "" {
			return "identifier"
		}
	case OBJECT:
		if t.Text == "" {
			return "type name"
		}
	case ILLEGAL:
		return "invalid token"
	}
	if t.Text == "" {
		return t.Kind.String()
	}
	return fmt.Sprintf("'%s'", t.Text)
}

func (t Token) String() string {
	switch t.Kind {
	case STRING:
		return `"` + t.Text + `"`
	case EOF:
		return "EOF"
	}
	return t.Text
}
