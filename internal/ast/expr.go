package ast

type Expr interface {
	Node
	isExpr()
}

func (*BlockExpr) isExpr()      {}
func (*StringLit) isExpr()      {}
func (*IntegerLit) isExpr()     {}
func (*FloatLit) isExpr()       {}
func (*BooleanLit) isExpr()     {}
func (*StructLit) isExpr()      {}
func (*StaticCallExpr) isExpr() {}

// BlockExpr is a braced statement sequence
// Example: "{ let a = 1; a_value }"
type BlockExpr struct {
	Statements []Statement
	Span       Span
}

type StringLit struct {
	Value string
	Span  Span
}

// IntegerLit keeps the literal text; the value is not range checked here.
type IntegerLit struct {
	Value string
	Span  Span
}

type FloatLit struct {
	Value string
	Span  Span
}

type BooleanLit struct {
	Value bool
	Span  Span
}

// StructLit builds a struct value
// Example: "Foo { bar: 1, baz: \"x\" }"
type StructLit struct {
	Name   Ident
	Fields []*FieldInit
	Span   Span
}

type FieldInit struct {
	Name  Ident
	Value Expr
	Span  Span
}

// StaticCallExpr calls an associated function on a type
// Example: "Foo::new(1, 2)"
type StaticCallExpr struct {
	Type   Ident
	Method Ident
	Args   []Expr
	Span   Span
}
