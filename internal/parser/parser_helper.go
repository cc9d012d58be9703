package parser

import (
	"dwarf/internal/ast"
	"dwarf/token"
)

func (p *Parser) advance() Lexeme {
	if !p.isAtEnd() {
		p.current++
	}
	prev := p.previous()
	if prev.Token.Kind == token.PUNCT {
		switch prev.Token.Text {
		case token.LBRACE:
			p.depth++
		case token.RBRACE:
			if p.depth > 0 {
				p.depth--
			}
		}
	}
	return prev
}

func (p *Parser) peek() Lexeme {
	return p.tokens[p.current]
}

func (p *Parser) previous() Lexeme {
	if p.current == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Token.Kind == token.EOF
}

func (p *Parser) check(kind token.Kind) bool {
	return p.peek().Token.Kind == kind
}

func (p *Parser) checkPunct(text string) bool {
	return p.peek().Token.Is(token.PUNCT, text)
}

func (p *Parser) match(kind token.Kind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) matchPunct(text string) bool {
	if p.checkPunct(text) {
		p.advance()
		return true
	}
	return false
}

// consume advances over a token of the given kind or records an error
// naming what was expected.
func (p *Parser) consume(kind token.Kind, label string) (Lexeme, bool) {
	if p.check(kind) {
		return p.advance(), true
	}
	p.errorExpected(label, token.Token{Kind: kind}.Describe())
	return p.peek(), false
}

func (p *Parser) consumePunct(text string, label string) (Lexeme, bool) {
	if p.checkPunct(text) {
		return p.advance(), true
	}
	p.errorExpected(label, describePunct(text))
	return p.peek(), false
}

// closeDelimiter consumes the closing delimiter for open. Running out of
// input reports the opening delimiter as unclosed.
func (p *Parser) closeDelimiter(open Lexeme, closing string, alternatives ...string) (Lexeme, bool) {
	if p.checkPunct(closing) {
		return p.advance(), true
	}
	if p.isAtEnd() {
		p.errors = append(p.errors, ParseError{
			Reason:    Unclosed,
			Span:      p.peek().Span,
			Delimiter: open.Token.Text,
			Opened:    open.Span,
		})
		return p.peek(), false
	}
	p.errorExpected("", append(alternatives, describePunct(closing))...)
	return p.peek(), false
}

func (p *Parser) errorExpected(label string, expected ...string) {
	found := p.peek()
	p.errors = append(p.errors, ParseError{
		Reason:   Unexpected,
		Span:     found.Span,
		Expected: expected,
		Found:    found.Token.Describe(),
		Label:    label,
	})
}

// skipUntil discards tokens until stop matches at the given brace depth,
// or the enclosing block closes, or input ends.
func (p *Parser) skipUntil(depth int, stop func(Lexeme) bool) {
	for !p.isAtEnd() {
		if p.depth == depth {
			if stop(p.peek()) || p.checkPunct(token.RBRACE) {
				return
			}
		}
		if p.depth < depth {
			return
		}
		p.advance()
	}
}

func (p *Parser) makeIdent(l Lexeme) ast.Ident {
	return ast.Ident{Value: l.Token.Text, Span: l.Span}
}

func describePunct(text string) string {
	return token.Token{Kind: token.PUNCT, Text: text}.Describe()
}

func isPunct(text string) func(Lexeme) bool {
	return func(l Lexeme) bool { return l.Token.Is(token.PUNCT, text) }
}
