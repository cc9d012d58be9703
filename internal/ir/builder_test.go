package ir

import (
	"errors"
	"testing"

	"dwarf/internal/ast"
	"dwarf/internal/parser"
	"dwarf/internal/types"
	"dwarf/token"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseItems(t *testing.T, source string) ast.Items {
	t.Helper()
	file, parseErrs, scanErrs := parser.ParseSource("test.dw", source)
	require.Empty(t, scanErrs)
	require.Empty(t, parseErrs)
	require.NotNil(t, file)
	return file.Items
}

func newModel(names ...string) *types.Model {
	m := types.NewModel("test")
	for _, n := range names {
		m.AddObject(n, "")
	}
	return m
}

func build(t *testing.T, source string, model *types.Model) (*Builder, error) {
	t.Helper()
	b := NewBuilder(NewStore(), model, types.Core())
	return b, b.Build(parseItems(t, source))
}

func mustBuild(t *testing.T, source string, model *types.Model) *Builder {
	t.Helper()
	b, err := build(t, source, model)
	require.NoError(t, err)
	return b
}

func userType(name string) *ast.Type {
	return &ast.Type{Kind: ast.UserType, Token: token.Token{Kind: token.OBJECT, Text: name}}
}

func optionOf(inner *ast.Type, depth int) *ast.Type {
	t := inner
	for i := 0; i < depth; i++ {
		t = &ast.Type{Kind: ast.OptionType, Inner: t}
	}
	return t
}

func TestResolvePrimitives(t *testing.T) {
	b := NewBuilder(NewStore(), newModel(), types.Core())

	tests := []struct {
		kind ast.TypeKind
		want uuid.UUID
	}{
		{ast.BooleanType, BooleanID},
		{ast.IntegerType, IntegerID},
		{ast.FloatType, FloatID},
		{ast.StringType, StringID},
	}
	for _, tt := range tests {
		got, err := b.ResolveType(&ast.Type{Kind: tt.kind}, nil)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestResolveOptionNesting(t *testing.T) {
	for depth := 1; depth <= 3; depth++ {
		b := NewBuilder(NewStore(), newModel(), types.Core())

		id, err := b.ResolveType(optionOf(&ast.Type{Kind: ast.IntegerType}, depth), nil)
		require.NoError(t, err)

		for i := 0; i < depth; i++ {
			vt, ok := b.store.ValueType(id)
			require.True(t, ok)
			require.Equal(t, OptionType, vt.Kind, "depth %d, level %d", depth, i)
			opt, ok := b.store.Option(vt.Option)
			require.True(t, ok)
			id = opt.Inner
		}
		assert.Equal(t, IntegerID, id, "depth %d", depth)
	}
}

func TestResolveUuidThroughCore(t *testing.T) {
	b := NewBuilder(NewStore(), newModel("Foo"), types.Core())

	id, err := b.ResolveType(&ast.Type{Kind: ast.UuidType, Token: token.Token{Kind: token.TYPE, Text: token.UuidType}}, nil)
	require.NoError(t, err)

	vt, ok := b.store.ValueType(id)
	require.True(t, ok)
	assert.Equal(t, ObjectType, vt.Kind)

	coreID, _ := types.Core().FindObject("uuid")
	assert.Equal(t, coreID, vt.Object)
}

func TestDomainModelTakesPrecedence(t *testing.T) {
	model := newModel("Foo", "uuid")
	b := mustBuild(t, "type Foo { id: Uuid }", model)

	st, ok := b.store.StructByName("Foo")
	require.True(t, ok)
	fields := b.store.Fields(st.ID)
	require.Len(t, fields, 1)

	vt, ok := b.store.ValueType(fields[0].Type)
	require.True(t, ok)
	domainID, _ := model.FindObject("uuid")
	assert.Equal(t, domainID, vt.Object)
}

func TestSelfMatchesUserType(t *testing.T) {
	b := mustBuild(t, `
type Foo { bar: int }
impl Foo {
    fn me() -> Self {}
}`, newModel("Foo"))

	st, ok := b.store.StructByName("Foo")
	require.True(t, ok)
	impl, ok := b.store.ImplementationFor(st.ID)
	require.True(t, ok)
	fn, ok := b.store.FunctionByName(&impl.ID, "me")
	require.True(t, ok)

	direct, err := b.ResolveType(userType("Foo"), nil)
	require.NoError(t, err)
	assert.Equal(t, direct, fn.Return)

	_, err = b.ResolveType(&ast.Type{Kind: ast.SelfType}, nil)
	assert.ErrorIs(t, err, ErrSelfOutsideImpl)
}

func TestStructBeforeImplOrdering(t *testing.T) {
	implFirst := `
impl Foo {
    fn get_bar(x: int) -> int { 1 }
}
type Foo { bar: int }
`
	structFirst := `
type Foo { bar: int }
impl Foo {
    fn get_bar(x: int) -> int { 1 }
}
`
	model := newModel("Foo")
	a := mustBuild(t, implFirst, model)
	b := mustBuild(t, structFirst, model)

	chain := types.Chain{model, types.Core()}
	assert.Equal(t, Print(b.store, chain), Print(a.store, chain))
	assert.Len(t, a.store.Implementations(), 1)
}

func TestEndToEnd(t *testing.T) {
	b := mustBuild(t, `
type Foo { bar: int }
impl Foo {
    fn get_bar() -> int {
        let a = 1;
    }
}
`, newModel("Foo"))
	s := b.store

	structs := s.Structs()
	require.Len(t, structs, 1)
	assert.Equal(t, "Foo", structs[0].Name)

	fields := s.Fields(structs[0].ID)
	require.Len(t, fields, 1)
	assert.Equal(t, "bar", fields[0].Name)
	assert.Equal(t, IntegerID, fields[0].Type)

	impls := s.Implementations()
	require.Len(t, impls, 1)
	assert.Equal(t, structs[0].ID, impls[0].Struct)

	fns := s.Functions()
	require.Len(t, fns, 1)
	fn := fns[0]
	assert.Equal(t, "get_bar", fn.Name)
	require.NotNil(t, fn.Implementation)
	assert.Equal(t, impls[0].ID, *fn.Implementation)
	assert.Equal(t, IntegerID, fn.Return)
	assert.Empty(t, s.Parameters(fn.ID))
	assert.Nil(t, fn.FirstParameter)

	stmts := s.Statements(fn.Block)
	require.Len(t, stmts, 1)
	assert.Equal(t, LetStatement, stmts[0].Kind)
	require.NotNil(t, stmts[0].Variable)

	v, ok := s.Variable(*stmts[0].Variable)
	require.True(t, ok)
	assert.Equal(t, "a", v.Name)
	assert.Equal(t, LocalVariable, v.Kind)
	assert.Equal(t, IntegerID, v.Type)

	block, ok := s.Block(fn.Block)
	require.True(t, ok)
	assert.Equal(t, EmptyID, block.Type)
}

func TestParameterListOrder(t *testing.T) {
	b := mustBuild(t, "fn f(a: int, b: string, c: Option<bool>) -> int {}", newModel())

	fn, ok := b.store.FunctionByName(nil, "f")
	require.True(t, ok)
	require.NotNil(t, fn.FirstParameter)

	params := b.store.Parameters(fn.ID)
	require.Len(t, params, 3)
	assert.Equal(t, params[0].ID, *fn.FirstParameter)

	names := make([]string, len(params))
	for i, p := range params {
		assert.Equal(t, i, p.Index)
		v, ok := b.store.Variable(p.Variable)
		require.True(t, ok)
		assert.Equal(t, ParameterVariable, v.Kind)
		names[i] = v.Name

		value, ok := b.store.ValueOf(v.ID)
		require.True(t, ok)
		assert.Equal(t, v.Type, value.Type)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.Nil(t, params[2].Next)

	v, _ := b.store.Variable(params[1].Variable)
	assert.Equal(t, StringID, v.Type)
}

func TestTypesAreInterned(t *testing.T) {
	b := NewBuilder(NewStore(), newModel("Foo"), types.Core())

	first, err := b.ResolveType(optionOf(userType("Foo"), 2), nil)
	require.NoError(t, err)
	second, err := b.ResolveType(optionOf(userType("Foo"), 2), nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	foo1, _ := b.ResolveType(userType("Foo"), nil)
	foo2, _ := b.ResolveType(userType("Foo"), nil)
	assert.Equal(t, foo1, foo2)
	assert.NotEqual(t, first, foo1)
}

func TestExpressionTypes(t *testing.T) {
	b := mustBuild(t, `
type Foo { bar: int }
impl Foo {
    fn get_bar() -> int { 1 }
}
fn run() -> string {
    let s = "x";
    let f = 1.5;
    let flag = true;
    let blk = { let inner = 2; 3 };
    let lit = Foo { bar: 1 };
    let call = Foo::get_bar();
    Foo::missing();
    "done"
}
`, newModel("Foo"))
	s := b.store

	fn, ok := s.FunctionByName(nil, "run")
	require.True(t, ok)

	foo, err := b.ResolveType(userType("Foo"), nil)
	require.NoError(t, err)

	stmts := s.Statements(fn.Block)
	require.Len(t, stmts, 8)

	want := []struct {
		kind StatementKind
		ty   uuid.UUID
	}{
		{LetStatement, StringID},
		{LetStatement, FloatID},
		{LetStatement, BooleanID},
		{LetStatement, IntegerID},
		{LetStatement, foo},
		{LetStatement, IntegerID},
		{ExpressionStatement, UnknownID},
		{ResultStatement, StringID},
	}
	for i, w := range want {
		assert.Equal(t, w.kind, stmts[i].Kind, "statement %d", i)
		assert.Equal(t, w.ty, stmts[i].Type, "statement %d", i)
	}

	block, _ := s.Block(fn.Block)
	assert.Equal(t, StringID, block.Type)

	nested, ok := s.BlockOf(stmts[3].ID)
	require.True(t, ok)
	assert.Equal(t, IntegerID, nested.Type)
	assert.Len(t, s.Statements(nested.ID), 2)
}

func TestDesanitizedNames(t *testing.T) {
	assert.Equal(t, "Type", Desanitize("Ty"))
	assert.Equal(t, "Option", Desanitize("WoogOption"))
	assert.Equal(t, "Struct", Desanitize("WoogStruct"))
	assert.Equal(t, "Foo", Desanitize("Foo"))

	model := newModel("Type")
	b := mustBuild(t, "type Ty { a: int }", model)

	st, ok := b.store.StructByName("Type")
	require.True(t, ok)
	id, _ := model.FindObject("Type")
	assert.Equal(t, id, st.Object)
}

func TestImportsAreRecorded(t *testing.T) {
	b := mustBuild(t, "use std::io; use a::b::c;", newModel())

	imports := b.store.Imports()
	require.Len(t, imports, 2)
	assert.Equal(t, "a::b::c", imports[0].Path)
	assert.Equal(t, "std::io", imports[1].Path)
}

func TestLoweringErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		err    error
		ident  string
	}{
		{"object not found", "type Bar {}", ErrObjectNotFound, "Bar"},
		{"struct not found", "impl Foo {}", ErrStructNotFound, "Foo"},
		{"type not found", "type Foo { x: Missing }", ErrTypeNotFound, "Missing"},
		{"self in loose function", "fn f() -> Self {}", ErrSelfOutsideImpl, "Self"},
		{"self in struct field", "type Foo { me: Option<Self> }", ErrSelfOutsideImpl, "Self"},
		{"item statement", "fn f() -> int { type Inner {} }", ErrUnimplemented, "item statement"},
		{"static call on unknown type", "fn f() -> int { Nope::make() }", ErrTypeNotFound, "Nope"},
		{"unknown type in field initializer", "type Foo { bar: int }\nfn f() -> Foo { Foo { bar: Missing::x() } }", ErrTypeNotFound, "Missing"},
		{"unknown type in call argument", "type Foo {}\nfn f() -> int { Foo::make(Missing { }) }", ErrTypeNotFound, "Missing"},
		{"duplicate field", "type Foo { bar: int, bar: string }", ErrDuplicateField, "bar"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := build(t, tt.source, newModel("Foo"))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)

			var lowerErr *LowerError
			require.True(t, errors.As(err, &lowerErr))
			assert.Equal(t, tt.ident, lowerErr.Name)
		})
	}
}

func TestOperandBlocks(t *testing.T) {
	b := mustBuild(t, `
type Foo { bar: int, baz: string }
fn run() -> Foo {
    Foo { bar: { 1 }, baz: { "s" } }
}
`, newModel("Foo"))
	s := b.store

	fn, ok := s.FunctionByName(nil, "run")
	require.True(t, ok)
	stmts := s.Statements(fn.Block)
	require.Len(t, stmts, 1)

	first, ok := s.BlockOf(s.OperandID(stmts[0].ID, 0))
	require.True(t, ok)
	assert.Equal(t, IntegerID, first.Type)

	second, ok := s.BlockOf(s.OperandID(stmts[0].ID, 1))
	require.True(t, ok)
	assert.Equal(t, StringID, second.Type)

	_, ok = s.BlockOf(stmts[0].ID)
	assert.False(t, ok)
}

func TestLoweringErrorSpan(t *testing.T) {
	_, err := build(t, "type Foo {}\ntype Bar {}", newModel("Foo"))

	var lowerErr *LowerError
	require.True(t, errors.As(err, &lowerErr))
	assert.Equal(t, ast.Span{Start: 17, End: 20}, lowerErr.Span)
	assert.Equal(t, "object not found: Bar", lowerErr.Error())
}

func TestInvalidImplEntry(t *testing.T) {
	items := ast.Items{
		{Name: "Foo", Kind: ast.StructItem}: &ast.Struct{Name: ast.Ident{Value: "Foo"}},
		{Name: "Foo", Kind: ast.ImplementationItem}: &ast.Implementation{
			Name: ast.Ident{Value: "Foo"},
			Entries: []*ast.ImplEntry{{
				Name: ast.Ident{Value: "Inner"},
				Item: &ast.Struct{Name: ast.Ident{Value: "Inner"}},
			}},
		},
	}

	_, err := BuildProgram(items, newModel("Foo"), types.Core())
	assert.ErrorIs(t, err, ErrInvalidImplEntry)
}
