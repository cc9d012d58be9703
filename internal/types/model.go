package types

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var (
	ErrDuplicateObject = errors.New("duplicate object")
	ErrEmptyName       = errors.New("empty name")
)

// catalogNamespace seeds per-catalog id namespaces.
var catalogNamespace = uuid.MustParse("6f1c2e0a-4b7d-5e3f-9a21-d0c4b8e7f315")

// Model is an in-memory catalog. Object ids are derived from the catalog
// name and the object name, so loading the same model twice yields the
// same ids.
type Model struct {
	name      string
	namespace uuid.UUID
	objects   map[uuid.UUID]*ObjectDef
	byName    map[string]uuid.UUID
	order     []uuid.UUID
}

func NewModel(name string) *Model {
	return &Model{
		name:      name,
		namespace: uuid.NewSHA1(catalogNamespace, []byte(name)),
		objects:   make(map[uuid.UUID]*ObjectDef),
		byName:    make(map[string]uuid.UUID),
	}
}

func (m *Model) Name() string { return m.name }

// AddObject registers an object. Adding a name twice returns the existing
// definition unchanged.
func (m *Model) AddObject(name, description string) *ObjectDef {
	if id, ok := m.byName[name]; ok {
		return m.objects[id]
	}
	obj := &ObjectDef{
		ID:          uuid.NewSHA1(m.namespace, []byte(name)),
		Name:        name,
		Description: description,
		Catalog:     m.name,
	}
	m.objects[obj.ID] = obj
	m.byName[name] = obj.ID
	m.order = append(m.order, obj.ID)
	return obj
}

func (m *Model) FindObject(name string) (uuid.UUID, bool) {
	id, ok := m.byName[name]
	return id, ok
}

func (m *Model) Object(id uuid.UUID) (*ObjectDef, bool) {
	obj, ok := m.objects[id]
	return obj, ok
}

// Types lists the primitives followed by one Object type per object in
// insertion order.
func (m *Model) Types() []Type {
	out := make([]Type, 0, len(primitives)+len(m.order))
	out = append(out, primitives...)
	for _, id := range m.order {
		out = append(out, Type{Kind: Object, Object: id})
	}
	return out
}

// Objects returns the definitions in insertion order.
func (m *Model) Objects() []*ObjectDef {
	out := make([]*ObjectDef, len(m.order))
	for i, id := range m.order {
		out[i] = m.objects[id]
	}
	return out
}

type modelFile struct {
	Name    string       `yaml:"name"`
	Objects []objectFile `yaml:"objects"`
}

type objectFile struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ParseModel reads a YAML model:
//
//	name: shop
//	objects:
//	  - name: Order
//	    description: a customer order
func ParseModel(data []byte) (*Model, error) {
	var file modelFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}
	if file.Name == "" {
		return nil, fmt.Errorf("parse model: %w: model has no name", ErrEmptyName)
	}

	model := NewModel(file.Name)
	for i, obj := range file.Objects {
		if obj.Name == "" {
			return nil, fmt.Errorf("parse model %s: %w: object %d", file.Name, ErrEmptyName, i)
		}
		if _, ok := model.FindObject(obj.Name); ok {
			return nil, fmt.Errorf("parse model %s: %w: %s", file.Name, ErrDuplicateObject, obj.Name)
		}
		model.AddObject(obj.Name, obj.Description)
	}
	return model, nil
}

// LoadModel reads and parses a YAML model file.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	return ParseModel(data)
}
