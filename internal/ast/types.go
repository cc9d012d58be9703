package ast

import "fmt"

type NodeType int

const (
	ILLEGAL NodeType = iota

	IDENT

	// Items
	STRUCT
	STRUCT_FIELD
	FUNCTION
	FUNCTION_PARAM
	IMPLEMENTATION
	IMPL_ENTRY
	IMPORT

	// Types
	TYPE

	// Statements
	LET_STMT
	EXPR_STMT
	RESULT_STMT
	ITEM_STMT

	// Expressions
	BLOCK_EXPR
	STRING_LIT
	INTEGER_LIT
	FLOAT_LIT
	BOOLEAN_LIT
	STRUCT_LIT
	FIELD_INIT
	STATIC_CALL_EXPR
)

var nodeTypeNames = [...]string{
	ILLEGAL:          "ILLEGAL",
	IDENT:            "IDENT",
	STRUCT:           "STRUCT",
	STRUCT_FIELD:     "STRUCT_FIELD",
	FUNCTION:         "FUNCTION",
	FUNCTION_PARAM:   "FUNCTION_PARAM",
	IMPLEMENTATION:   "IMPLEMENTATION",
	IMPL_ENTRY:       "IMPL_ENTRY",
	IMPORT:           "IMPORT",
	TYPE:             "TYPE",
	LET_STMT:         "LET_STMT",
	EXPR_STMT:        "EXPR_STMT",
	RESULT_STMT:      "RESULT_STMT",
	ITEM_STMT:        "ITEM_STMT",
	BLOCK_EXPR:       "BLOCK_EXPR",
	STRING_LIT:       "STRING_LIT",
	INTEGER_LIT:      "INTEGER_LIT",
	FLOAT_LIT:        "FLOAT_LIT",
	BOOLEAN_LIT:      "BOOLEAN_LIT",
	STRUCT_LIT:       "STRUCT_LIT",
	FIELD_INIT:       "FIELD_INIT",
	STATIC_CALL_EXPR: "STATIC_CALL_EXPR",
}

func (t NodeType) String() string {
	if int(t) >= 0 && int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return fmt.Sprintf("NodeType(%d)", int(t))
}
