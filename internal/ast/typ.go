package ast

import "dwarf/token"

// TypeKind discriminates surface types as written in source.
type TypeKind int

const (
	BooleanType TypeKind = iota
	FloatType
	IntegerType
	StringType
	UuidType
	OptionType
	UserType
	SelfType
)

// Type is a surface type annotation. Option types carry their argument in
// Inner; UserType and SelfType keep the token they were written with.
// Example: "Option<Foo>", "int", "Self"
type Type struct {
	Kind  TypeKind
	Inner *Type
	Token token.Token
	Span  Span
}

// Name returns the referenced type name for UserType and SelfType.
func (t *Type) Name() string {
	return t.Token.Text
}

// Depth counts nested Option wrappers.
func (t *Type) Depth() int {
	d := 0
	for cur := t; cur != nil && cur.Kind == OptionType; cur = cur.Inner {
		d++
	}
	return d
}

// Equal compares two types structurally, ignoring spans.
func (t *Type) Equal(o *Type) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case OptionType:
		return t.Inner.Equal(o.Inner)
	case UserType:
		return t.Token.Text == o.Token.Text
	}
	return true
}

// BuiltinType maps a TYPE token to its surface type kind.
func BuiltinType(tok token.Token) (TypeKind, bool) {
	switch tok.Text {
	case token.BoolType:
		return BooleanType, true
	case token.FloatType:
		return FloatType, true
	case token.IntType:
		return IntegerType, true
	case token.StringType:
		return StringType, true
	case token.UuidType:
		return UuidType, true
	}
	return 0, false
}
