package parser

import (
	"dwarf/internal/ast"
	"dwarf/token"
)

var exprStarts = []string{"boolean", "integer", "float", "string", "'{'", "type name"}

func (p *Parser) parseExpr() (ast.Expr, bool) {
	tok := p.peek()

	switch tok.Token.Kind {
	case token.BOOL:
		p.advance()
		return &ast.BooleanLit{Value: tok.Token.Text == "true", Span: tok.Span}, true
	case token.INTEGER:
		p.advance()
		return &ast.IntegerLit{Value: tok.Token.Text, Span: tok.Span}, true
	case token.FLOAT:
		p.advance()
		return &ast.FloatLit{Value: tok.Token.Text, Span: tok.Span}, true
	case token.STRING:
		p.advance()
		return &ast.StringLit{Value: tok.Token.Text, Span: tok.Span}, true
	case token.OBJECT:
		return p.parseObjectExpr()
	case token.PUNCT:
		if tok.Token.Text == token.LBRACE {
			stmts, end, ok := p.parseBlock()
			if !ok {
				return nil, false
			}
			return &ast.BlockExpr{Statements: stmts, Span: tok.Span.Join(end.Span)}, true
		}
	}

	p.errorExpected("expression", exprStarts...)
	return nil, false
}

// parseObjectExpr parses a struct literal "Foo { a: 1 }" or a static call "Foo::new()".
func (p *Parser) parseObjectExpr() (ast.Expr, bool) {
	nameTok := p.advance()

	if p.checkPunct(token.LBRACE) {
		return p.parseStructLit(nameTok)
	}
	if p.matchPunct(token.DOUBLECOLON) {
		return p.parseStaticCall(nameTok)
	}

	p.errorExpected("expression", describePunct(token.LBRACE), describePunct(token.DOUBLECOLON))
	return nil, false
}

func (p *Parser) parseStructLit(nameTok Lexeme) (ast.Expr, bool) {
	open := p.advance()

	var fields []*ast.FieldInit
	for !p.checkPunct(token.RBRACE) && !p.isAtEnd() {
		fieldTok, ok := p.consume(token.IDENT, "field name")
		if !ok {
			return nil, false
		}
		if _, ok := p.consumePunct(token.COLON, "field initializer"); !ok {
			return nil, false
		}
		value, ok := p.parseExpr()
		if !ok {
			return nil, false
		}

		fields = append(fields, &ast.FieldInit{
			Name:  p.makeIdent(fieldTok),
			Value: value,
			Span:  fieldTok.Span.Join(value.NodeSpan()),
		})

		if !p.matchPunct(token.COMMA) {
			break
		}
	}

	end, ok := p.closeDelimiter(open, token.RBRACE, describePunct(token.COMMA))
	if !ok {
		return nil, false
	}

	return &ast.StructLit{
		Name:   p.makeIdent(nameTok),
		Fields: fields,
		Span:   nameTok.Span.Join(end.Span),
	}, true
}

func (p *Parser) parseStaticCall(typeTok Lexeme) (ast.Expr, bool) {
	methodTok, ok := p.consume(token.IDENT, "method name")
	if !ok {
		return nil, false
	}

	open, ok := p.consumePunct(token.LPAREN, "call arguments")
	if !ok {
		return nil, false
	}

	var args []ast.Expr
	for !p.checkPunct(token.RPAREN) && !p.isAtEnd() {
		arg, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		args = append(args, arg)

		if !p.matchPunct(token.COMMA) {
			break
		}
	}

	end, ok := p.closeDelimiter(open, token.RPAREN, describePunct(token.COMMA))
	if !ok {
		return nil, false
	}

	return &ast.StaticCallExpr{
		Type:   p.makeIdent(typeTok),
		Method: p.makeIdent(methodTok),
		Args:   args,
		Span:   typeTok.Span.Join(end.Span),
	}, true
}
