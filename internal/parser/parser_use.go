package parser

import (
	"dwarf/internal/ast"
	"dwarf/token"
)

// parseImport parses "use a::b::c;". "use" is only a keyword at item position.
func (p *Parser) parseImport() (*ast.Import, bool) {
	start := p.advance()

	var path []ast.Ident
	for {
		if !p.check(token.IDENT) && !p.check(token.OBJECT) {
			p.errorExpected("import path", "identifier", "type name")
			return nil, false
		}
		path = append(path, p.makeIdent(p.advance()))

		if !p.matchPunct(token.DOUBLECOLON) {
			break
		}
	}

	end, ok := p.consumePunct(token.SEMICOLON, "import")
	if !ok {
		return nil, false
	}

	return &ast.Import{
		Path: path,
		Span: start.Span.Join(end.Span),
	}, true
}
