package ast

type Statement interface {
	Node
	isStatement()
}

func (*LetStmt) isStatement()    {}
func (*ExprStmt) isStatement()   {}
func (*ResultStmt) isStatement() {}
func (*ItemStmt) isStatement()   {}

// LetStmt binds a local variable
// Example: "let a = 1;"
type LetStmt struct {
	Name  Ident
	Value Expr
	Span  Span
}

// ExprStmt is an expression evaluated for its side effect
// Example: "Foo::reset();"
type ExprStmt struct {
	Expr Expr
	Span Span
}

// ResultStmt is the trailing expression of a block, without a semicolon.
type ResultStmt struct {
	Expr Expr
	Span Span
}

// ItemStmt is an item declared at block scope.
type ItemStmt struct {
	Item Item
	Span Span
}
