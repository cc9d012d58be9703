package parser

import (
	"fmt"
	"strings"

	"dwarf/grammar"
	"dwarf/internal/ast"
	"dwarf/token"

	"github.com/alecthomas/participle/v2/lexer"
)

// Lexeme is a token paired with its byte span.
type Lexeme struct {
	Token token.Token
	Span  ast.Span
}

type ScanError struct {
	Message string
	Span    ast.Span
	// Unterminated marks a string literal missing its closing quote.
	Unterminated bool
}

func (e ScanError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Span)
}

// Scanner turns source text into lexemes. Characters no rule accepts are
// reported and skipped so the rest of the input is still tokenized.
type Scanner struct {
	filename string
	source   string
	lexemes  []Lexeme
	errors   []ScanError
}

func NewScanner(filename, source string) *Scanner {
	return &Scanner{
		filename: filename,
		source:   source,
	}
}

var ruleNames = func() map[lexer.TokenType]string {
	names := make(map[lexer.TokenType]string)
	for name, tt := range grammar.DwarfLexer.Symbols() {
		names[tt] = name
	}
	return names
}()

// ScanTokens tokenizes the whole input. The result always ends with an EOF lexeme.
func (s *Scanner) ScanTokens() []Lexeme {
	for offset := 0; offset < len(s.source); {
		offset = s.scanFrom(offset)
	}
	return s.finish()
}

// scanFrom lexes source from base and returns where scanning has to resume.
// That is the end of input, unless a comment starts inside an operator run.
func (s *Scanner) scanFrom(base int) int {
	lex, err := grammar.DwarfLexer.LexString(s.filename, s.source[base:])
	if err != nil {
		s.reportError(err.Error(), ast.Span{Start: base, End: len(s.source)})
		return len(s.source)
	}

	for {
		tok, err := lex.Next()
		if err != nil {
			// Unreachable with the catch-all rule, but never loop on a broken lexer.
			s.reportError(err.Error(), ast.Span{Start: len(s.source), End: len(s.source)})
			return len(s.source)
		}
		if tok.EOF() {
			return len(s.source)
		}

		start := base + tok.Pos.Offset
		if ruleNames[tok.Type] == grammar.Operator {
			if idx := strings.Index(tok.Value, "//"); idx >= 0 {
				if idx > 0 {
					s.addToken(token.OP, tok.Value[:idx], ast.Span{Start: start, End: start + idx})
				}
				return s.lineEnd(start + idx)
			}
		}
		s.scanToken(tok, start)
	}
}

// lineEnd returns the offset of the newline ending the line at offset, or
// the end of input.
func (s *Scanner) lineEnd(offset int) int {
	if nl := strings.IndexByte(s.source[offset:], '\n'); nl >= 0 {
		return offset + nl
	}
	return len(s.source)
}

func (s *Scanner) scanToken(tok lexer.Token, start int) {
	span := ast.Span{Start: start, End: start + len(tok.Value)}

	switch ruleNames[tok.Type] {
	case grammar.Comment, grammar.Whitespace:
		// discarded
	case grammar.Float:
		s.addToken(token.FLOAT, tok.Value, span)
	case grammar.Integer:
		s.addToken(token.INTEGER, tok.Value, span)
	case grammar.String:
		s.addToken(token.STRING, tok.Value[1:len(tok.Value)-1], span)
	case grammar.Unterminated:
		s.errors = append(s.errors, ScanError{Message: "unterminated string literal", Span: span, Unterminated: true})
	case grammar.Arrow:
		s.addToken(token.PUNCT, token.ARROW, span)
	case grammar.DoubleColon:
		s.addToken(token.PUNCT, token.DOUBLECOLON, span)
	case grammar.Operator:
		s.addToken(token.OP, tok.Value, span)
	case grammar.Punctuation:
		s.addToken(token.PUNCT, tok.Value, span)
	case grammar.Word:
		s.lexemes = append(s.lexemes, Lexeme{Token: token.Lookup(tok.Value), Span: span})
	default:
		s.reportError(fmt.Sprintf("unexpected character %q", tok.Value), span)
	}
}

func (s *Scanner) addToken(kind token.Kind, text string, span ast.Span) {
	s.lexemes = append(s.lexemes, Lexeme{
		Token: token.Token{Kind: kind, Text: text},
		Span:  span,
	})
}

func (s *Scanner) reportError(message string, span ast.Span) {
	s.errors = append(s.errors, ScanError{Message: message, Span: span})
}

func (s *Scanner) finish() []Lexeme {
	end := len(s.source)
	s.lexemes = append(s.lexemes, Lexeme{
		Token: token.Token{Kind: token.EOF},
		Span:  ast.Span{Start: end, End: end},
	})
	return s.lexemes
}

// Errors returns the scan errors collected so far.
func (s *Scanner) Errors() []ScanError {
	return s.errors
}
