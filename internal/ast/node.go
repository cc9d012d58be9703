package ast

type Node interface {
	NodeSpan() Span
	NodeType() NodeType
	String() string
}

func (i *Ident) NodeSpan() Span   { return i.Span }
func (*Ident) NodeType() NodeType { return IDENT }

func (s *Struct) NodeSpan() Span   { return s.Span }
func (*Struct) NodeType() NodeType { return STRUCT }

func (f *Field) NodeSpan() Span   { return f.Span }
func (*Field) NodeType() NodeType { return STRUCT_FIELD }

func (f *Function) NodeSpan() Span   { return f.Span }
func (*Function) NodeType() NodeType { return FUNCTION }

func (p *Param) NodeSpan() Span   { return p.Span }
func (*Param) NodeType() NodeType { return FUNCTION_PARAM }

func (i *Implementation) NodeSpan() Span   { return i.Span }
func (*Implementation) NodeType() NodeType { return IMPLEMENTATION }

func (e *ImplEntry) NodeSpan() Span   { return e.Span }
func (*ImplEntry) NodeType() NodeType { return IMPL_ENTRY }

func (i *Import) NodeSpan() Span   { return i.Span }
func (*Import) NodeType() NodeType { return IMPORT }

func (t *Type) NodeSpan() Span   { return t.Span }
func (*Type) NodeType() NodeType { return TYPE }

func (l *LetStmt) NodeSpan() Span   { return l.Span }
func (*LetStmt) NodeType() NodeType { return LET_STMT }

func (e *ExprStmt) NodeSpan() Span   { return e.Span }
func (*ExprStmt) NodeType() NodeType { return EXPR_STMT }

func (r *ResultStmt) NodeSpan() Span   { return r.Span }
func (*ResultStmt) NodeType() NodeType { return RESULT_STMT }

func (i *ItemStmt) NodeSpan() Span   { return i.Span }
func (*ItemStmt) NodeType() NodeType { return ITEM_STMT }

func (b *BlockExpr) NodeSpan() Span   { return b.Span }
func (*BlockExpr) NodeType() NodeType { return BLOCK_EXPR }

func (s *StringLit) NodeSpan() Span   { return s.Span }
func (*StringLit) NodeType() NodeType { return STRING_LIT }

func (i *IntegerLit) NodeSpan() Span   { return i.Span }
func (*IntegerLit) NodeType() NodeType { return INTEGER_LIT }

func (f *FloatLit) NodeSpan() Span   { return f.Span }
func (*FloatLit) NodeType() NodeType { return FLOAT_LIT }

func (b *BooleanLit) NodeSpan() Span   { return b.Span }
func (*BooleanLit) NodeType() NodeType { return BOOLEAN_LIT }

func (s *StructLit) NodeSpan() Span   { return s.Span }
func (*StructLit) NodeType() NodeType { return STRUCT_LIT }

func (f *FieldInit) NodeSpan() Span   { return f.Span }
func (*FieldInit) NodeType() NodeType { return FIELD_INIT }

func (c *StaticCallExpr) NodeSpan() Span   { return c.Span }
func (*StaticCallExpr) NodeType() NodeType { return STATIC_CALL_EXPR }
