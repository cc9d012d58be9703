package ir

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var ErrRecordNotFound = errors.New("record not found")

var storeNamespace = uuid.MustParse("0b7e9c52-1f3a-5d84-a6c2-93e4f1d07b68")

// deriveID turns a record's identity into its id. Inserting a record with
// the same identity twice yields the same id.
func deriveID(parts ...string) uuid.UUID {
	return uuid.NewSHA1(storeNamespace, []byte(strings.Join(parts, "/")))
}

// Singleton value types, registered by NewStore.
var (
	EmptyID   = deriveID("type", "empty")
	UnknownID = deriveID("type", "unknown")
	BooleanID = deriveID("type", "boolean")
	IntegerID = deriveID("type", "integer")
	FloatID   = deriveID("type", "float")
	StringID  = deriveID("type", "string")
)

// Store is an arena of IR records keyed by id.
type Store struct {
	valueTypes map[uuid.UUID]*ValueType
	options    map[uuid.UUID]*Option
	structs    map[uuid.UUID]*Struct
	fields     map[uuid.UUID]*Field
	impls      map[uuid.UUID]*Implementation
	functions  map[uuid.UUID]*Function
	parameters map[uuid.UUID]*Parameter
	variables  map[uuid.UUID]*Variable
	values     map[uuid.UUID]*Value
	blocks     map[uuid.UUID]*Block
	statements map[uuid.UUID]*Statement
	imports    map[uuid.UUID]*Import

	// fieldOrder keeps fields in declaration order per struct.
	fieldOrder map[uuid.UUID][]uuid.UUID
}

func NewStore() *Store {
	s := &Store{
		valueTypes: make(map[uuid.UUID]*ValueType),
		options:    make(map[uuid.UUID]*Option),
		structs:    make(map[uuid.UUID]*Struct),
		fields:     make(map[uuid.UUID]*Field),
		impls:      make(map[uuid.UUID]*Implementation),
		functions:  make(map[uuid.UUID]*Function),
		parameters: make(map[uuid.UUID]*Parameter),
		variables:  make(map[uuid.UUID]*Variable),
		values:     make(map[uuid.UUID]*Value),
		blocks:     make(map[uuid.UUID]*Block),
		statements: make(map[uuid.UUID]*Statement),
		imports:    make(map[uuid.UUID]*Import),
		fieldOrder: make(map[uuid.UUID][]uuid.UUID),
	}

	for id, kind := range map[uuid.UUID]ValueTypeKind{
		EmptyID:   EmptyType,
		UnknownID: UnknownType,
		BooleanID: BooleanType,
		IntegerID: IntegerType,
		FloatID:   FloatType,
		StringID:  StringType,
	} {
		s.valueTypes[id] = &ValueType{ID: id, Kind: kind}
	}
	return s
}

// Insert

// InsertObjectType interns the value type for a catalog object.
func (s *Store) InsertObjectType(object uuid.UUID) *ValueType {
	id := deriveID("type", "object", object.String())
	if vt, ok := s.valueTypes[id]; ok {
		return vt
	}
	vt := &ValueType{ID: id, Kind: ObjectType, Object: object}
	s.valueTypes[id] = vt
	return vt
}

// InsertOption interns the option wrapper around inner.
func (s *Store) InsertOption(inner uuid.UUID) *Option {
	id := deriveID("option", inner.String())
	if o, ok := s.options[id]; ok {
		return o
	}
	o := &Option{ID: id, Inner: inner}
	s.options[id] = o
	return o
}

// InsertOptionType interns the value type for an option record.
func (s *Store) InsertOptionType(option uuid.UUID) *ValueType {
	id := deriveID("type", "option", option.String())
	if vt, ok := s.valueTypes[id]; ok {
		return vt
	}
	vt := &ValueType{ID: id, Kind: OptionType, Option: option}
	s.valueTypes[id] = vt
	return vt
}

func (s *Store) InsertStruct(name string, object uuid.UUID) *Struct {
	id := deriveID("struct", object.String())
	if st, ok := s.structs[id]; ok {
		return st
	}
	st := &Struct{ID: id, Name: name, Object: object}
	s.structs[id] = st
	return st
}

// InsertField interns by struct and name: a second field of the same name
// returns the first. The builder rejects duplicates before inserting.
func (s *Store) InsertField(structID uuid.UUID, name string, ty uuid.UUID) *Field {
	id := deriveID("field", structID.String(), name)
	if f, ok := s.fields[id]; ok {
		return f
	}
	f := &Field{ID: id, Name: name, Struct: structID, Type: ty}
	s.fields[id] = f
	s.fieldOrder[structID] = append(s.fieldOrder[structID], id)
	return f
}

func (s *Store) InsertImplementation(structID uuid.UUID) *Implementation {
	id := deriveID("impl", structID.String())
	if impl, ok := s.impls[id]; ok {
		return impl
	}
	impl := &Implementation{ID: id, Struct: structID}
	s.impls[id] = impl
	return impl
}

// FunctionID is the id InsertFunction assigns to name within impl.
func (s *Store) FunctionID(impl *uuid.UUID, name string) uuid.UUID {
	scope := "loose"
	if impl != nil {
		scope = impl.String()
	}
	return deriveID("fn", scope, name)
}

func (s *Store) InsertFunction(name string, block uuid.UUID, impl *uuid.UUID, ret uuid.UUID) *Function {
	id := s.FunctionID(impl, name)
	if fn, ok := s.functions[id]; ok {
		return fn
	}
	fn := &Function{ID: id, Name: name, Block: block, Implementation: copyID(impl), Return: ret}
	s.functions[id] = fn
	return fn
}

// ParameterID is the id InsertParameter assigns to position index of fn.
func (s *Store) ParameterID(fn uuid.UUID, index int) uuid.UUID {
	return deriveID("param", fn.String(), strconv.Itoa(index))
}

func (s *Store) InsertParameter(fn uuid.UUID, index int, variable uuid.UUID) *Parameter {
	id := s.ParameterID(fn, index)
	if p, ok := s.parameters[id]; ok {
		return p
	}
	p := &Parameter{ID: id, Function: fn, Index: index, Variable: variable}
	s.parameters[id] = p
	return p
}

// InsertVariable interns a variable named name declared by scope, which is
// the parameter or statement introducing it.
func (s *Store) InsertVariable(scope uuid.UUID, name string, kind VariableKind, ty uuid.UUID) *Variable {
	id := deriveID("var", scope.String(), name)
	if v, ok := s.variables[id]; ok {
		return v
	}
	v := &Variable{ID: id, Name: name, Kind: kind, Type: ty}
	s.variables[id] = v
	return v
}

func (s *Store) InsertValue(ty uuid.UUID, variable uuid.UUID) *Value {
	id := deriveID("value", variable.String())
	if v, ok := s.values[id]; ok {
		return v
	}
	v := &Value{ID: id, Type: ty, Variable: variable}
	s.values[id] = v
	return v
}

// InsertBlock creates the block owned by owner. Its type starts as Empty.
func (s *Store) InsertBlock(owner uuid.UUID) *Block {
	id := deriveID("block", owner.String())
	if b, ok := s.blocks[id]; ok {
		return b
	}
	b := &Block{ID: id, Owner: owner, Type: EmptyID}
	s.blocks[id] = b
	return b
}

// StatementID is the id InsertStatement assigns to position index of block.
func (s *Store) StatementID(block uuid.UUID, index int) uuid.UUID {
	return deriveID("stmt", block.String(), strconv.Itoa(index))
}

// OperandID identifies operand index of the expression owned by owner. It
// owns any block written as that operand.
func (s *Store) OperandID(owner uuid.UUID, index int) uuid.UUID {
	return deriveID("operand", owner.String(), strconv.Itoa(index))
}

func (s *Store) InsertStatement(block uuid.UUID, index int, kind StatementKind, variable *uuid.UUID, ty uuid.UUID) *Statement {
	id := s.StatementID(block, index)
	if st, ok := s.statements[id]; ok {
		return st
	}
	st := &Statement{ID: id, Block: block, Index: index, Kind: kind, Variable: copyID(variable), Type: ty}
	s.statements[id] = st
	return st
}

func (s *Store) InsertImport(path string) *Import {
	id := deriveID("import", path)
	if imp, ok := s.imports[id]; ok {
		return imp
	}
	imp := &Import{ID: id, Path: path}
	s.imports[id] = imp
	return imp
}

// Update by id

func (s *Store) SetFirstParameter(fn, param uuid.UUID) error {
	f, ok := s.functions[fn]
	if !ok {
		return fmt.Errorf("%w: function %s", ErrRecordNotFound, fn)
	}
	f.FirstParameter = &param
	return nil
}

func (s *Store) SetParameterNext(param, next uuid.UUID) error {
	p, ok := s.parameters[param]
	if !ok {
		return fmt.Errorf("%w: parameter %s", ErrRecordNotFound, param)
	}
	p.Next = &next
	return nil
}

func (s *Store) SetFirstStatement(block, stmt uuid.UUID) error {
	b, ok := s.blocks[block]
	if !ok {
		return fmt.Errorf("%w: block %s", ErrRecordNotFound, block)
	}
	b.FirstStatement = &stmt
	return nil
}

func (s *Store) SetStatementNext(stmt, next uuid.UUID) error {
	st, ok := s.statements[stmt]
	if !ok {
		return fmt.Errorf("%w: statement %s", ErrRecordNotFound, stmt)
	}
	st.Next = &next
	return nil
}

func (s *Store) SetBlockType(block, ty uuid.UUID) error {
	b, ok := s.blocks[block]
	if !ok {
		return fmt.Errorf("%w: block %s", ErrRecordNotFound, block)
	}
	b.Type = ty
	return nil
}

// Lookups

func (s *Store) ValueType(id uuid.UUID) (*ValueType, bool) {
	vt, ok := s.valueTypes[id]
	return vt, ok
}

func (s *Store) Option(id uuid.UUID) (*Option, bool) {
	o, ok := s.options[id]
	return o, ok
}

func (s *Store) Struct(id uuid.UUID) (*Struct, bool) {
	st, ok := s.structs[id]
	return st, ok
}

// StructByObject finds the struct bound to a catalog object.
func (s *Store) StructByObject(object uuid.UUID) (*Struct, bool) {
	return s.Struct(deriveID("struct", object.String()))
}

func (s *Store) StructByName(name string) (*Struct, bool) {
	for _, st := range s.structs {
		if st.Name == name {
			return st, true
		}
	}
	return nil, false
}

// Structs returns all structs ordered by name.
func (s *Store) Structs() []*Struct {
	out := make([]*Struct, 0, len(s.structs))
	for _, st := range s.structs {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Fields returns the struct's fields in declaration order.
func (s *Store) Fields(structID uuid.UUID) []*Field {
	ids := s.fieldOrder[structID]
	out := make([]*Field, len(ids))
	for i, id := range ids {
		out[i] = s.fields[id]
	}
	return out
}

func (s *Store) Implementation(id uuid.UUID) (*Implementation, bool) {
	impl, ok := s.impls[id]
	return impl, ok
}

// ImplementationFor finds the impl block attached to a struct.
func (s *Store) ImplementationFor(structID uuid.UUID) (*Implementation, bool) {
	return s.Implementation(deriveID("impl", structID.String()))
}

// Implementations returns all impl blocks ordered by struct name.
func (s *Store) Implementations() []*Implementation {
	out := make([]*Implementation, 0, len(s.impls))
	for _, impl := range s.impls {
		out = append(out, impl)
	}
	sort.Slice(out, func(i, j int) bool {
		return s.structName(out[i].Struct) < s.structName(out[j].Struct)
	})
	return out
}

func (s *Store) Function(id uuid.UUID) (*Function, bool) {
	fn, ok := s.functions[id]
	return fn, ok
}

func (s *Store) FunctionByName(impl *uuid.UUID, name string) (*Function, bool) {
	return s.Function(s.FunctionID(impl, name))
}

// Functions returns loose functions first, then methods grouped by struct
// name; each group is ordered by function name.
func (s *Store) Functions() []*Function {
	out := make([]*Function, 0, len(s.functions))
	for _, fn := range s.functions {
		out = append(out, fn)
	}
	sort.Slice(out, func(i, j int) bool {
		oi, oj := s.ownerName(out[i]), s.ownerName(out[j])
		if oi != oj {
			return oi < oj
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Methods returns the functions of an impl block ordered by name.
func (s *Store) Methods(impl uuid.UUID) []*Function {
	var out []*Function
	for _, fn := range s.Functions() {
		if fn.Implementation != nil && *fn.Implementation == impl {
			out = append(out, fn)
		}
	}
	return out
}

// Parameters walks the function's parameter list.
func (s *Store) Parameters(fn uuid.UUID) []*Parameter {
	f, ok := s.functions[fn]
	if !ok {
		return nil
	}
	var out []*Parameter
	for next := f.FirstParameter; next != nil; {
		p, ok := s.parameters[*next]
		if !ok {
			break
		}
		out = append(out, p)
		next = p.Next
	}
	return out
}

func (s *Store) Block(id uuid.UUID) (*Block, bool) {
	b, ok := s.blocks[id]
	return b, ok
}

// BlockOf finds the block owned by a function or statement.
func (s *Store) BlockOf(owner uuid.UUID) (*Block, bool) {
	return s.Block(deriveID("block", owner.String()))
}

// Statements walks the block's statement list.
func (s *Store) Statements(block uuid.UUID) []*Statement {
	b, ok := s.blocks[block]
	if !ok {
		return nil
	}
	var out []*Statement
	for next := b.FirstStatement; next != nil; {
		st, ok := s.statements[*next]
		if !ok {
			break
		}
		out = append(out, st)
		next = st.Next
	}
	return out
}

func (s *Store) Variable(id uuid.UUID) (*Variable, bool) {
	v, ok := s.variables[id]
	return v, ok
}

// ValueOf returns the value wrapping a variable.
func (s *Store) ValueOf(variable uuid.UUID) (*Value, bool) {
	v, ok := s.values[deriveID("value", variable.String())]
	return v, ok
}

// Imports returns all imports ordered by path.
func (s *Store) Imports() []*Import {
	out := make([]*Import, 0, len(s.imports))
	for _, imp := range s.imports {
		out = append(out, imp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

func (s *Store) structName(id uuid.UUID) string {
	if st, ok := s.structs[id]; ok {
		return st.Name
	}
	return ""
}

func (s *Store) ownerName(fn *Function) string {
	if fn.Implementation == nil {
		return ""
	}
	if impl, ok := s.impls[*fn.Implementation]; ok {
		return s.structName(impl.Struct)
	}
	return ""
}

func copyID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
