package parser

import (
	"dwarf/internal/ast"
	"dwarf/token"
)

// parseFunction parses "fn name(params) -> Type { statements }".
// Both "->" and "→" lex to the same arrow token.
func (p *Parser) parseFunction() (*ast.Function, bool) {
	start, _ := p.consume(token.FN, "function")

	nameTok, ok := p.consume(token.IDENT, "function name")
	if !ok {
		return nil, false
	}

	params, ok := p.parseFunctionParameters()
	if !ok {
		return nil, false
	}

	if _, ok := p.consumePunct(token.ARROW, "return type"); !ok {
		return nil, false
	}
	returnType, ok := p.parseType()
	if !ok {
		return nil, false
	}

	body, end, ok := p.parseBlock()
	if !ok {
		return nil, false
	}

	return &ast.Function{
		Name:   p.makeIdent(nameTok),
		Params: params,
		Return: returnType,
		Body:   body,
		Span:   start.Span.Join(end.Span),
	}, true
}

// parseFunctionParameters parses "(name: Type, ...)" with an optional trailing comma.
func (p *Parser) parseFunctionParameters() ([]*ast.Param, bool) {
	open, ok := p.consumePunct(token.LPAREN, "parameter list")
	if !ok {
		return nil, false
	}

	var params []*ast.Param
	for !p.checkPunct(token.RPAREN) && !p.isAtEnd() {
		nameTok, ok := p.consume(token.IDENT, "parameter name")
		if !ok {
			return nil, false
		}
		if _, ok := p.consumePunct(token.COLON, "parameter type"); !ok {
			return nil, false
		}
		typ, ok := p.parseType()
		if !ok {
			return nil, false
		}

		params = append(params, &ast.Param{
			Name: p.makeIdent(nameTok),
			Type: typ,
			Span: nameTok.Span.Join(typ.Span),
		})

		if !p.matchPunct(token.COMMA) {
			break
		}
	}

	if _, ok := p.closeDelimiter(open, token.RPAREN, describePunct(token.COMMA)); !ok {
		return nil, false
	}
	return params, true
}

// parseBlock parses "{ statements }". A statement that fails to parse is
// skipped up to its ';' so later statements still get checked.
func (p *Parser) parseBlock() ([]ast.Statement, Lexeme, bool) {
	open, ok := p.consumePunct(token.LBRACE, "block")
	if !ok {
		return nil, open, false
	}
	depth := p.depth

	var stmts []ast.Statement
	for !p.checkPunct(token.RBRACE) && !p.isAtEnd() {
		stmt, ok := p.parseStatement()
		if ok {
			stmts = append(stmts, stmt)
			continue
		}
		p.skipUntil(depth, isPunct(token.SEMICOLON))
		p.matchPunct(token.SEMICOLON)
	}

	end, ok := p.closeDelimiter(open, token.RBRACE)
	return stmts, end, ok
}

func (p *Parser) parseStatement() (ast.Statement, bool) {
	switch p.peek().Token.Kind {
	case token.LET:
		return p.parseLetStmt()
	case token.STRUCT:
		s, ok := p.parseStruct()
		if !ok {
			return nil, false
		}
		return &ast.ItemStmt{Item: s, Span: s.Span}, true
	case token.FN:
		f, ok := p.parseFunction()
		if !ok {
			return nil, false
		}
		return &ast.ItemStmt{Item: f, Span: f.Span}, true
	}

	expr, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	if p.matchPunct(token.SEMICOLON) {
		return &ast.ExprStmt{
			Expr: expr,
			Span: expr.NodeSpan().Join(p.previous().Span),
		}, true
	}
	if p.checkPunct(token.RBRACE) {
		return &ast.ResultStmt{Expr: expr, Span: expr.NodeSpan()}, true
	}

	p.errorExpected("statement", describePunct(token.SEMICOLON), describePunct(token.RBRACE))
	return nil, false
}

// parseLetStmt parses "let name = expr;".
func (p *Parser) parseLetStmt() (*ast.LetStmt, bool) {
	start, _ := p.consume(token.LET, "let statement")

	nameTok, ok := p.consume(token.IDENT, "variable name")
	if !ok {
		return nil, false
	}

	if !p.peek().Token.Is(token.OP, "=") {
		p.errorExpected("let statement", "'='")
		return nil, false
	}
	p.advance()

	value, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	end, ok := p.consumePunct(token.SEMICOLON, "let statement")
	if !ok {
		return nil, false
	}

	return &ast.LetStmt{
		Name:  p.makeIdent(nameTok),
		Value: value,
		Span:  start.Span.Join(end.Span),
	}, true
}
