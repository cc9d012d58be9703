package ast

import (
	"fmt"
	"strings"
)

const indentUnit = "    "

func indent(s string) string {
	return indentUnit + strings.ReplaceAll(s, "\n", "\n"+indentUnit)
}

func (f *File) String() string {
	keys := f.Order
	if len(keys) == 0 {
		keys = f.Items.Keys()
	}

	var parts []string
	for _, k := range keys {
		if item, ok := f.Items[k]; ok {
			parts = append(parts, item.String())
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n"
}

func (i *Ident) String() string {
	return i.Value
}

func (s *Struct) String() string {
	if len(s.Fields) == 0 {
		return fmt.Sprintf("type %s {}", s.Name.Value)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("type %s {\n", s.Name.Value))
	for _, f := range s.Fields {
		b.WriteString(indent(f.String()) + ",\n")
	}
	b.WriteString("}")
	return b.String()
}

func (f *Field) String() string {
	return fmt.Sprintf("%s: %s", f.Name.Value, f.Type)
}

func (f *Function) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}

	header := fmt.Sprintf("fn %s(%s) -> %s", f.Name.Value, strings.Join(params, ", "), f.Return)
	return header + " " + blockString(f.Body)
}

func (p *Param) String() string {
	return fmt.Sprintf("%s: %s", p.Name.Value, p.Type)
}

func (i *Implementation) String() string {
	if len(i.Entries) == 0 {
		return fmt.Sprintf("impl %s {}", i.Name.Value)
	}

	entries := make([]string, len(i.Entries))
	for n, e := range i.Entries {
		entries[n] = indent(e.String())
	}
	return fmt.Sprintf("impl %s {\n%s\n}", i.Name.Value, strings.Join(entries, "\n\n"))
}

func (e *ImplEntry) String() string {
	if e.Item == nil {
		return ""
	}
	return e.Item.String()
}

func (i *Import) String() string {
	return fmt.Sprintf("use %s;", i.PathString())
}

func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case BooleanType:
		return "bool"
	case FloatType:
		return "float"
	case IntegerType:
		return "int"
	case StringType:
		return "string"
	case UuidType:
		return "Uuid"
	case OptionType:
		return fmt.Sprintf("Option<%s>", t.Inner)
	case SelfType:
		return "Self"
	default:
		return t.Token.Text
	}
}

func (l *LetStmt) String() string {
	return fmt.Sprintf("let %s = %s;", l.Name.Value, l.Value)
}

func (e *ExprStmt) String() string {
	return e.Expr.String() + ";"
}

func (r *ResultStmt) String() string {
	return r.Expr.String()
}

func (i *ItemStmt) String() string {
	return i.Item.String()
}

func blockString(stmts []Statement) string {
	if len(stmts) == 0 {
		return "{}"
	}

	var b strings.Builder
	b.WriteString("{\n")
	for _, s := range stmts {
		b.WriteString(indent(s.String()) + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func (b *BlockExpr) String() string {
	return blockString(b.Statements)
}

func (s *StringLit) String() string {
	return `"` + s.Value + `"`
}

func (i *IntegerLit) String() string {
	return i.Value
}

func (f *FloatLit) String() string {
	return f.Value
}

func (b *BooleanLit) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

func (s *StructLit) String() string {
	if len(s.Fields) == 0 {
		return s.Name.Value + " {}"
	}

	fields := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		fields[i] = f.String()
	}
	return fmt.Sprintf("%s { %s }", s.Name.Value, strings.Join(fields, ", "))
}

func (f *FieldInit) String() string {
	return fmt.Sprintf("%s: %s", f.Name.Value, f.Value)
}

func (c *StaticCallExpr) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s::%s(%s)", c.Type.Value, c.Method.Value, strings.Join(args, ", "))
}
