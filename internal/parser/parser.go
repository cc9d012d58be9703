package parser

import (
	"dwarf/internal/ast"
	"dwarf/token"
)

type Parser struct {
	filename string
	tokens   []Lexeme
	current  int
	depth    int // brace nesting of consumed tokens
	errors   []ParseError
}

func NewParser(filename string, tokens []Lexeme) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Token.Kind != token.EOF {
		end := 0
		if len(tokens) > 0 {
			end = tokens[len(tokens)-1].Span.End
		}
		tokens = append(tokens, Lexeme{
			Token: token.Token{Kind: token.EOF},
			Span:  ast.Span{Start: end, End: end},
		})
	}
	return &Parser{
		filename: filename,
		tokens:   tokens,
	}
}

// Errors returns the parse errors collected so far.
func (p *Parser) Errors() []ParseError {
	return p.errors
}

// ParseFile parses items until end of input. A duplicate (name, kind) pair
// discards the item map and returns nil; other errors leave a best-effort file.
func (p *Parser) ParseFile() *ast.File {
	file := &ast.File{
		Name:  p.filename,
		Items: ast.Items{},
	}
	duplicate := false

	for !p.isAtEnd() {
		start := p.current
		item, ok := p.parseItem()
		if !ok {
			if p.current == start {
				p.advance()
			}
			p.synchronize()
			continue
		}

		key := item.Key()
		if _, exists := file.Items[key]; exists {
			p.errors = append(p.errors, ParseError{
				Reason:  Custom,
				Span:    item.NodeSpan(),
				Message: "Item `" + key.Name + "` already defined",
			})
			duplicate = true
			continue
		}
		file.Items[key] = item
		file.Order = append(file.Order, key)
	}

	if duplicate {
		return nil
	}
	return file
}

func (p *Parser) parseItem() (ast.Item, bool) {
	tok := p.peek().Token
	switch {
	case tok.Kind == token.STRUCT:
		return p.parseStruct()
	case tok.Kind == token.IMPL:
		return p.parseImplementation()
	case tok.Kind == token.FN:
		return p.parseFunction()
	case tok.Is(token.IDENT, "use"):
		return p.parseImport()
	}

	p.errorExpected("item", "'type'", "'impl'", "'fn'", "'use'", "end of input")
	return nil, false
}

// synchronize skips to the next token that can start a top-level item.
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		if p.depth == 0 && p.atItemStart() {
			return
		}
		p.advance()
	}
}

func (p *Parser) atItemStart() bool {
	tok := p.peek().Token
	switch tok.Kind {
	case token.STRUCT, token.IMPL, token.FN:
		return true
	}
	return tok.Is(token.IDENT, "use")
}
