package ir

import (
	"fmt"

	"github.com/google/uuid"
)

// IR records live in a Store keyed by id. Cross references are ids, never
// pointers, so records can be created before everything they point to is
// known and patched afterwards by id.

// ValueTypeKind discriminates value types.
type ValueTypeKind int

const (
	EmptyType ValueTypeKind = iota
	UnknownType
	BooleanType
	IntegerType
	FloatType
	StringType
	ObjectType
	OptionType
)

var valueTypeKindNames = [...]string{
	EmptyType:   "Empty",
	UnknownType: "Unknown",
	BooleanType: "Boolean",
	IntegerType: "Integer",
	FloatType:   "Float",
	StringType:  "String",
	ObjectType:  "Object",
	OptionType:  "Option",
}

func (k ValueTypeKind) String() string {
	if int(k) < len(valueTypeKindNames) {
		return valueTypeKindNames[k]
	}
	return fmt.Sprintf("ValueTypeKind(%d)", int(k))
}

// ValueType is a resolved type. Object holds the catalog object id for
// ObjectType; Option holds the Option record id for OptionType.
type ValueType struct {
	ID     uuid.UUID
	Kind   ValueTypeKind
	Object uuid.UUID
	Option uuid.UUID
}

// Option is the none-able wrapper around another value type.
type Option struct {
	ID    uuid.UUID
	Inner uuid.UUID
}

// Struct is bound 1:1 to a domain model object.
type Struct struct {
	ID     uuid.UUID
	Name   string
	Object uuid.UUID
}

type Field struct {
	ID     uuid.UUID
	Name   string
	Struct uuid.UUID
	Type   uuid.UUID
}

type Implementation struct {
	ID     uuid.UUID
	Struct uuid.UUID
}

// Function is either a loose function (Implementation nil) or a method.
// Parameters form a linked list starting at FirstParameter.
type Function struct {
	ID             uuid.UUID
	Name           string
	Block          uuid.UUID
	Implementation *uuid.UUID
	Return         uuid.UUID
	FirstParameter *uuid.UUID
}

type Parameter struct {
	ID       uuid.UUID
	Function uuid.UUID
	Index    int
	Next     *uuid.UUID
	Variable uuid.UUID
}

type VariableKind int

const (
	ParameterVariable VariableKind = iota
	LocalVariable
)

func (k VariableKind) String() string {
	if k == ParameterVariable {
		return "param"
	}
	return "local"
}

type Variable struct {
	ID   uuid.UUID
	Name string
	Kind VariableKind
	Type uuid.UUID
}

// Value binds a variable to its type.
type Value struct {
	ID       uuid.UUID
	Type     uuid.UUID
	Variable uuid.UUID
}

// Block is a statement sequence. Owner is the function or statement the
// block belongs to; Type is the type of its final result statement, or
// Empty.
type Block struct {
	ID             uuid.UUID
	Owner          uuid.UUID
	Type           uuid.UUID
	FirstStatement *uuid.UUID
}

type StatementKind int

const (
	LetStatement StatementKind = iota
	ExpressionStatement
	ResultStatement
	ItemStatement
)

var statementKindNames = [...]string{
	LetStatement:        "let",
	ExpressionStatement: "expr",
	ResultStatement:     "result",
	ItemStatement:       "item",
}

func (k StatementKind) String() string {
	if int(k) < len(statementKindNames) {
		return statementKindNames[k]
	}
	return fmt.Sprintf("StatementKind(%d)", int(k))
}

// Statement is one entry of a block's linked list. Variable is set for
// let statements.
type Statement struct {
	ID       uuid.UUID
	Block    uuid.UUID
	Index    int
	Kind     StatementKind
	Variable *uuid.UUID
	Type     uuid.UUID
	Next     *uuid.UUID
}

// Import records a module path. It is never resolved.
type Import struct {
	ID   uuid.UUID
	Path string
}
