package parser

import (
	"dwarf/internal/ast"
	"dwarf/token"
)

var typeStarts = []string{"'bool'", "'float'", "'int'", "'string'", "'Uuid'", "'Option'", "'Self'", "type name"}

// parseType parses a builtin type, a user type, Self, or Option<T>.
func (p *Parser) parseType() (*ast.Type, bool) {
	tok := p.peek()

	switch tok.Token.Kind {
	case token.TYPE:
		p.advance()
		kind, ok := ast.BuiltinType(tok.Token)
		if !ok {
			p.errors = append(p.errors, ParseError{
				Reason:  Custom,
				Span:    tok.Span,
				Message: "unknown builtin type " + tok.Token.Text,
			})
			return nil, false
		}
		return &ast.Type{Kind: kind, Token: tok.Token, Span: tok.Span}, true

	case token.OBJECT:
		p.advance()
		return &ast.Type{Kind: ast.UserType, Token: tok.Token, Span: tok.Span}, true

	case token.SELF:
		p.advance()
		return &ast.Type{Kind: ast.SelfType, Token: tok.Token, Span: tok.Span}, true

	case token.OPTION:
		p.advance()
		open, ok := p.consumePunct(token.LT, "Option type")
		if !ok {
			return nil, false
		}
		inner, ok := p.parseType()
		if !ok {
			return nil, false
		}
		end, ok := p.closeDelimiter(open, token.GT)
		if !ok {
			return nil, false
		}
		return &ast.Type{
			Kind:  ast.OptionType,
			Inner: inner,
			Token: tok.Token,
			Span:  tok.Span.Join(end.Span),
		}, true
	}

	p.errorExpected("type", typeStarts...)
	return nil, false
}
