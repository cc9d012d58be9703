// Package types holds the external catalogs that struct declarations and
// type names are resolved against during lowering.
package types

import (
	"fmt"

	"github.com/google/uuid"
)

// TypeKind discriminates the entries of a catalog's type list.
type TypeKind int

const (
	Boolean TypeKind = iota
	Integer
	Float
	String
	Object
)

func (k TypeKind) String() string {
	switch k {
	case Boolean:
		return "Boolean"
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	case String:
		return "String"
	case Object:
		return "Object"
	}
	return fmt.Sprintf("TypeKind(%d)", int(k))
}

// Type is one entry of a catalog's type list. Object is set only for the
// Object kind.
type Type struct {
	Kind   TypeKind
	Object uuid.UUID
}

// ObjectDef is a named object definition owned by a catalog.
type ObjectDef struct {
	ID          uuid.UUID
	Name        string
	Description string
	Catalog     string
}

// Catalog is a read-only collection of object definitions.
type Catalog interface {
	Name() string
	// FindObject matches the exact object name.
	FindObject(name string) (uuid.UUID, bool)
	Object(id uuid.UUID) (*ObjectDef, bool)
	Types() []Type
}

var primitives = []Type{{Kind: Boolean}, {Kind: Integer}, {Kind: Float}, {Kind: String}}
