package types

import (
	"github.com/google/uuid"
	"github.com/iancoleman/strcase"
)

// UpperCamel converts a catalog object name to the form type annotations
// use, e.g. "uuid" -> "Uuid", "line_item" -> "LineItem".
func UpperCamel(name string) string {
	return strcase.ToCamel(name)
}

// Chain is an ordered list of catalogs. Earlier catalogs win on a name
// collision.
type Chain []Catalog

// FindType returns the first Object type whose name, in upper camel case,
// equals name.
func (c Chain) FindType(name string) (*ObjectDef, bool) {
	for _, cat := range c {
		if cat == nil {
			continue
		}
		for _, t := range cat.Types() {
			if t.Kind != Object {
				continue
			}
			obj, ok := cat.Object(t.Object)
			if ok && UpperCamel(obj.Name) == name {
				return obj, true
			}
		}
	}
	return nil, false
}

// Object finds the definition for id in any catalog of the chain.
func (c Chain) Object(id uuid.UUID) (*ObjectDef, bool) {
	for _, cat := range c {
		if cat == nil {
			continue
		}
		if obj, ok := cat.Object(id); ok {
			return obj, true
		}
	}
	return nil, false
}

// TypeNames lists every resolvable object type name, in chain order.
func (c Chain) TypeNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, cat := range c {
		if cat == nil {
			continue
		}
		for _, t := range cat.Types() {
			if t.Kind != Object {
				continue
			}
			if obj, ok := cat.Object(t.Object); ok {
				n := UpperCamel(obj.Name)
				if !seen[n] {
					seen[n] = true
					names = append(names, n)
				}
			}
		}
	}
	return names
}
