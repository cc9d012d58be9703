package parser

import (
	"dwarf/internal/ast"
	"dwarf/token"
)

func (p *Parser) parseStruct() (*ast.Struct, bool) {
	start, _ := p.consume(token.STRUCT, "struct")

	nameTok, ok := p.consume(token.OBJECT, "struct name")
	if !ok {
		return nil, false
	}

	fields, end, ok := p.parseStructBody()
	if !ok {
		return nil, false
	}

	return &ast.Struct{
		Name:   p.makeIdent(nameTok),
		Fields: fields,
		Span:   start.Span.Join(end.Span),
	}, true
}

// parseStructBody parses "{ name: Type, ... }" with an optional trailing comma.
func (p *Parser) parseStructBody() ([]*ast.Field, Lexeme, bool) {
	open, ok := p.consumePunct(token.LBRACE, "struct body")
	if !ok {
		return nil, open, false
	}

	var fields []*ast.Field
	for !p.checkPunct(token.RBRACE) && !p.isAtEnd() {
		field, ok := p.parseStructField()
		if ok {
			fields = append(fields, field)
		} else {
			p.skipUntil(p.depth, isPunct(token.COMMA))
		}

		if p.matchPunct(token.COMMA) {
			continue
		}
		if !p.checkPunct(token.RBRACE) && !p.isAtEnd() {
			p.errorExpected("struct body", describePunct(token.COMMA), describePunct(token.RBRACE))
			p.skipUntil(p.depth, isPunct(token.COMMA))
			p.matchPunct(token.COMMA)
		}
	}

	end, ok := p.closeDelimiter(open, token.RBRACE, "identifier")
	return fields, end, ok
}

// parseStructField parses a single field: name: Type
func (p *Parser) parseStructField() (*ast.Field, bool) {
	nameTok, ok := p.consume(token.IDENT, "field name")
	if !ok {
		return nil, false
	}

	if _, ok := p.consumePunct(token.COLON, "field type"); !ok {
		return nil, false
	}

	typ, ok := p.parseType()
	if !ok {
		return nil, false
	}

	return &ast.Field{
		Name: p.makeIdent(nameTok),
		Type: typ,
		Span: nameTok.Span.Join(typ.Span),
	}, true
}

// parseImplementation parses "impl Name { fn ... }".
func (p *Parser) parseImplementation() (*ast.Implementation, bool) {
	start, _ := p.consume(token.IMPL, "implementation")

	nameTok, ok := p.consume(token.OBJECT, "implementation name")
	if !ok {
		return nil, false
	}

	open, ok := p.consumePunct(token.LBRACE, "implementation body")
	if !ok {
		return nil, false
	}
	bodyDepth := p.depth

	var entries []*ast.ImplEntry
	for !p.checkPunct(token.RBRACE) && !p.isAtEnd() {
		if !p.check(token.FN) {
			p.errorExpected("implementation body", "'fn'", describePunct(token.RBRACE))
			p.advance()
			p.skipUntil(bodyDepth, func(l Lexeme) bool { return l.Token.Kind == token.FN })
			continue
		}

		fn, ok := p.parseFunction()
		if !ok {
			p.skipUntil(bodyDepth, func(l Lexeme) bool { return l.Token.Kind == token.FN })
			continue
		}
		entries = append(entries, &ast.ImplEntry{
			Name: fn.Name,
			Item: fn,
			Span: fn.Span,
		})
	}

	end, ok := p.closeDelimiter(open, token.RBRACE, "'fn'")
	if !ok {
		return nil, false
	}

	return &ast.Implementation{
		Name:    p.makeIdent(nameTok),
		Entries: entries,
		Span:    start.Span.Join(end.Span),
	}, true
}
