package lsp

import (
	"dwarf/internal/ast"
	"dwarf/internal/parser"
	"dwarf/token"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

type classification struct {
	tokenType   string
	declaration bool
}

// collectSemanticTokens classifies every lexeme. Identifiers take their
// role from the tree when one is available.
func collectSemanticTokens(source string, result *parser.Result) []SemanticToken {
	if result == nil {
		return nil
	}

	roles := make(map[int]classification)
	if result.File != nil {
		for _, key := range result.File.Items.Keys() {
			walkItem(roles, result.File.Items[key])
		}
	}

	li := newLineIndex(source)
	var tokens []SemanticToken
	for _, lx := range result.Tokens {
		if lx.Token.Kind == token.EOF {
			continue
		}

		class, ok := roles[lx.Span.Start]
		if !ok {
			class.tokenType = defaultTokenType(lx.Token)
		}
		if class.tokenType == "" {
			continue
		}

		start := li.position(lx.Span.Start)
		end := li.position(lx.Span.End)
		if end.Line != start.Line {
			continue
		}

		modifiers := 0
		if class.declaration {
			modifiers = 1 << indexOf("declaration", SemanticTokenModifiers)
		}
		tokens = append(tokens, SemanticToken{
			Line:           start.Line,
			StartChar:      start.Character,
			Length:         end.Character - start.Character,
			TokenType:      indexOf(class.tokenType, SemanticTokenTypes),
			TokenModifiers: modifiers,
		})
	}
	return tokens
}

func defaultTokenType(tok token.Token) string {
	switch tok.Kind {
	case token.FN, token.LET, token.STRUCT, token.IMPL, token.SELF, token.OPTION, token.BOOL:
		return "keyword"
	case token.TYPE, token.OBJECT:
		return "type"
	case token.INTEGER, token.FLOAT:
		return "number"
	case token.STRING:
		return "string"
	case token.OP:
		return "operator"
	case token.IDENT:
		if tok.Text == "use" {
			return "keyword"
		}
		return "variable"
	}
	return ""
}

func mark(roles map[int]classification, id ast.Ident, tokenType string, declaration bool) {
	if id.Value == "" {
		return
	}
	roles[id.Span.Start] = classification{tokenType: tokenType, declaration: declaration}
}

func walkItem(roles map[int]classification, item ast.Item) {
	switch v := item.(type) {
	case *ast.Struct:
		mark(roles, v.Name, "type", true)
		for _, f := range v.Fields {
			mark(roles, f.Name, "property", true)
		}
	case *ast.Function:
		walkFunction(roles, v)
	case *ast.Implementation:
		mark(roles, v.Name, "type", false)
		for _, entry := range v.Entries {
			walkItem(roles, entry.Item)
		}
	case *ast.Import:
		for _, seg := range v.Path {
			mark(roles, seg, "namespace", false)
		}
	}
}

func walkFunction(roles map[int]classification, fn *ast.Function) {
	mark(roles, fn.Name, "function", true)
	for _, p := range fn.Params {
		mark(roles, p.Name, "parameter", true)
	}
	walkStatements(roles, fn.Body)
}

func walkStatements(roles map[int]classification, stmts []ast.Statement) {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.LetStmt:
			mark(roles, s.Name, "variable", true)
			walkExpression(roles, s.Value)
		case *ast.ExprStmt:
			walkExpression(roles, s.Expr)
		case *ast.ResultStmt:
			walkExpression(roles, s.Expr)
		case *ast.ItemStmt:
			walkItem(roles, s.Item)
		}
	}
}

func walkExpression(roles map[int]classification, expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.BlockExpr:
		walkStatements(roles, e.Statements)
	case *ast.StructLit:
		mark(roles, e.Name, "type", false)
		for _, f := range e.Fields {
			mark(roles, f.Name, "property", false)
			walkExpression(roles, f.Value)
		}
	case *ast.StaticCallExpr:
		mark(roles, e.Type, "type", false)
		mark(roles, e.Method, "function", false)
		for _, arg := range e.Args {
			walkExpression(roles, arg)
		}
	}
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
