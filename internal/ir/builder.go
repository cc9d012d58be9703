package ir

import (
	"errors"
	"fmt"

	"dwarf/internal/ast"
	"dwarf/internal/types"

	"github.com/google/uuid"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("dwarf.ir")

var (
	ErrObjectNotFound   = errors.New("object not found")
	ErrStructNotFound   = errors.New("struct not found")
	ErrSelfOutsideImpl  = errors.New("Self used outside impl block")
	ErrTypeNotFound     = errors.New("type not found for object")
	ErrInvalidImplEntry = errors.New("impl entry is not a function")
	ErrDuplicateField   = errors.New("duplicate field")
	ErrUnimplemented    = errors.New("not implemented")
)

// LowerError is the first error that stopped lowering. Name is the
// offending name and Span where it was written.
type LowerError struct {
	Err  error
	Name string
	Span ast.Span
}

func (e *LowerError) Error() string {
	if e.Name == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Name)
}

func (e *LowerError) Unwrap() error { return e.Err }

func lowerError(err error, name string, span ast.Span) *LowerError {
	return &LowerError{Err: err, Name: name, Span: span}
}

// Builder lowers a parsed item map into a Store. Structs must correspond to
// objects of the domain model; type names resolve against the model first
// and the core catalog second.
type Builder struct {
	store *Store
	model types.Catalog
	chain types.Chain
}

func NewBuilder(store *Store, model, core types.Catalog) *Builder {
	return &Builder{
		store: store,
		model: model,
		chain: types.Chain{model, core},
	}
}

func (b *Builder) Store() *Store { return b.store }

// Build lowers imports, then every struct, then every impl block, then the
// loose functions. Impl blocks may therefore precede their struct in the
// source. The first error stops the pass.
func (b *Builder) Build(items ast.Items) error {
	for _, imp := range items.Imports() {
		b.store.InsertImport(imp.PathString())
	}

	for _, s := range items.Structs() {
		if err := b.lowerStruct(s); err != nil {
			return err
		}
	}

	for _, impl := range items.Implementations() {
		if err := b.lowerImplementation(impl); err != nil {
			return err
		}
	}

	for _, fn := range items.Functions() {
		log.Debugf("lowering function %s", fn.Name.Value)
		if _, err := b.lowerFunction(fn, nil, nil); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) lowerStruct(s *ast.Struct) error {
	name := Desanitize(s.Name.Value)
	log.Debugf("lowering struct %s", name)

	object, ok := b.model.FindObject(name)
	if !ok {
		return lowerError(ErrObjectNotFound, name, s.Name.Span)
	}
	st := b.store.InsertStruct(name, object)

	seen := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if seen[f.Name.Value] {
			return lowerError(ErrDuplicateField, f.Name.Value, f.Name.Span)
		}
		seen[f.Name.Value] = true

		ty, err := b.ResolveType(f.Type, nil)
		if err != nil {
			return err
		}
		b.store.InsertField(st.ID, f.Name.Value, ty)
	}
	return nil
}

func (b *Builder) lowerImplementation(impl *ast.Implementation) error {
	name := Desanitize(impl.Name.Value)
	log.Debugf("lowering impl %s", name)

	object, ok := b.model.FindObject(name)
	if !ok {
		return lowerError(ErrObjectNotFound, name, impl.Name.Span)
	}
	st, ok := b.store.StructByObject(object)
	if !ok {
		return lowerError(ErrStructNotFound, name, impl.Name.Span)
	}

	self := b.store.InsertObjectType(object)
	rec := b.store.InsertImplementation(st.ID)

	for _, entry := range impl.Entries {
		fn, ok := entry.Item.(*ast.Function)
		if !ok {
			return lowerError(ErrInvalidImplEntry, entry.Name.Value, entry.Span)
		}
		if _, err := b.lowerFunction(fn, &rec.ID, &self.ID); err != nil {
			return err
		}
	}
	return nil
}

// lowerFunction creates the function, its parameter list and its body.
// impl and enclosing are nil for loose functions.
func (b *Builder) lowerFunction(fn *ast.Function, impl, enclosing *uuid.UUID) (*Function, error) {
	id := b.store.FunctionID(impl, fn.Name.Value)
	block := b.store.InsertBlock(id)

	ret, err := b.ResolveType(fn.Return, enclosing)
	if err != nil {
		return nil, err
	}
	function := b.store.InsertFunction(fn.Name.Value, block.ID, impl, ret)

	var prev *Parameter
	for i, p := range fn.Params {
		ty, err := b.ResolveType(p.Type, enclosing)
		if err != nil {
			return nil, err
		}
		v := b.store.InsertVariable(b.store.ParameterID(function.ID, i), p.Name.Value, ParameterVariable, ty)
		param := b.store.InsertParameter(function.ID, i, v.ID)
		b.store.InsertValue(ty, v.ID)

		if prev == nil {
			err = b.store.SetFirstParameter(function.ID, param.ID)
		} else {
			err = b.store.SetParameterNext(prev.ID, param.ID)
		}
		if err != nil {
			return nil, err
		}
		prev = param
	}

	if _, err := b.lowerBlock(block, fn.Body, enclosing); err != nil {
		return nil, err
	}
	return function, nil
}

// lowerBlock lowers stmts into block and records the block's type: the
// type of its last result statement, or Empty.
func (b *Builder) lowerBlock(block *Block, stmts []ast.Statement, enclosing *uuid.UUID) (uuid.UUID, error) {
	result := EmptyID
	var prev *Statement

	for i, stmt := range stmts {
		id := b.store.StatementID(block.ID, i)

		var rec *Statement
		switch s := stmt.(type) {
		case *ast.LetStmt:
			ty, err := b.lowerExpr(s.Value, id, enclosing)
			if err != nil {
				return uuid.Nil, err
			}
			v := b.store.InsertVariable(id, s.Name.Value, LocalVariable, ty)
			b.store.InsertValue(ty, v.ID)
			rec = b.store.InsertStatement(block.ID, i, LetStatement, &v.ID, ty)

		case *ast.ExprStmt:
			ty, err := b.lowerExpr(s.Expr, id, enclosing)
			if err != nil {
				return uuid.Nil, err
			}
			rec = b.store.InsertStatement(block.ID, i, ExpressionStatement, nil, ty)

		case *ast.ResultStmt:
			ty, err := b.lowerExpr(s.Expr, id, enclosing)
			if err != nil {
				return uuid.Nil, err
			}
			result = ty
			rec = b.store.InsertStatement(block.ID, i, ResultStatement, nil, ty)

		case *ast.ItemStmt:
			return uuid.Nil, lowerError(ErrUnimplemented, "item statement", s.Span)

		default:
			return uuid.Nil, lowerError(ErrUnimplemented, stmt.NodeType().String(), stmt.NodeSpan())
		}

		var err error
		if prev == nil {
			err = b.store.SetFirstStatement(block.ID, rec.ID)
		} else {
			err = b.store.SetStatementNext(prev.ID, rec.ID)
		}
		if err != nil {
			return uuid.Nil, err
		}
		prev = rec
	}

	if err := b.store.SetBlockType(block.ID, result); err != nil {
		return uuid.Nil, err
	}
	return result, nil
}

// lowerExpr returns the value type of expr. owner is the statement the
// expression belongs to and owns a block written directly there; blocks
// nested in struct literal fields or call arguments are owned by
// OperandID(owner, index).
func (b *Builder) lowerExpr(expr ast.Expr, owner uuid.UUID, enclosing *uuid.UUID) (uuid.UUID, error) {
	switch e := expr.(type) {
	case *ast.BooleanLit:
		return BooleanID, nil
	case *ast.IntegerLit:
		return IntegerID, nil
	case *ast.FloatLit:
		return FloatID, nil
	case *ast.StringLit:
		return StringID, nil

	case *ast.BlockExpr:
		block := b.store.InsertBlock(owner)
		return b.lowerBlock(block, e.Statements, enclosing)

	case *ast.StructLit:
		ty, err := b.resolveName(Desanitize(e.Name.Value), e.Name.Span)
		if err != nil {
			return uuid.Nil, err
		}
		for i, f := range e.Fields {
			if _, err := b.lowerExpr(f.Value, b.store.OperandID(owner, i), enclosing); err != nil {
				return uuid.Nil, err
			}
		}
		return ty, nil

	case *ast.StaticCallExpr:
		ty, err := b.lowerStaticCall(e)
		if err != nil {
			return uuid.Nil, err
		}
		for i, arg := range e.Args {
			if _, err := b.lowerExpr(arg, b.store.OperandID(owner, i), enclosing); err != nil {
				return uuid.Nil, err
			}
		}
		return ty, nil
	}
	return uuid.Nil, lowerError(ErrUnimplemented, expr.NodeType().String(), expr.NodeSpan())
}

// lowerStaticCall types Foo::bar() as bar's return type when bar has been
// lowered already, Unknown otherwise.
func (b *Builder) lowerStaticCall(call *ast.StaticCallExpr) (uuid.UUID, error) {
	name := Desanitize(call.Type.Value)
	obj, ok := b.chain.FindType(name)
	if !ok {
		return uuid.Nil, lowerError(ErrTypeNotFound, name, call.Type.Span)
	}
	st, ok := b.store.StructByObject(obj.ID)
	if !ok {
		return UnknownID, nil
	}
	impl, ok := b.store.ImplementationFor(st.ID)
	if !ok {
		return UnknownID, nil
	}
	fn, ok := b.store.FunctionByName(&impl.ID, call.Method.Value)
	if !ok {
		return UnknownID, nil
	}
	return fn.Return, nil
}

// ResolveType maps a surface type to a value type id. enclosing is the
// value type Self stands for, nil outside impl blocks.
func (b *Builder) ResolveType(t *ast.Type, enclosing *uuid.UUID) (uuid.UUID, error) {
	if t == nil {
		return EmptyID, nil
	}

	switch t.Kind {
	case ast.BooleanType:
		return BooleanID, nil
	case ast.IntegerType:
		return IntegerID, nil
	case ast.FloatType:
		return FloatID, nil
	case ast.StringType:
		return StringID, nil

	case ast.UuidType:
		return b.resolveName(t.Token.Text, t.Span)

	case ast.SelfType:
		return b.resolveSelf(enclosing, t.Span)

	case ast.UserType:
		name := Desanitize(t.Name())
		if name == "Self" {
			return b.resolveSelf(enclosing, t.Span)
		}
		return b.resolveName(name, t.Span)

	case ast.OptionType:
		inner, err := b.ResolveType(t.Inner, enclosing)
		if err != nil {
			return uuid.Nil, err
		}
		opt := b.store.InsertOption(inner)
		return b.store.InsertOptionType(opt.ID).ID, nil
	}

	return uuid.Nil, lowerError(ErrUnimplemented, fmt.Sprintf("type kind %d", t.Kind), t.Span)
}

func (b *Builder) resolveSelf(enclosing *uuid.UUID, span ast.Span) (uuid.UUID, error) {
	if enclosing == nil {
		return uuid.Nil, lowerError(ErrSelfOutsideImpl, "Self", span)
	}
	return *enclosing, nil
}

func (b *Builder) resolveName(name string, span ast.Span) (uuid.UUID, error) {
	obj, ok := b.chain.FindType(name)
	if !ok {
		return uuid.Nil, lowerError(ErrTypeNotFound, name, span)
	}
	return b.store.InsertObjectType(obj.ID).ID, nil
}
