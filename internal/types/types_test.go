package types

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelAddAndFind(t *testing.T) {
	m := NewModel("shop")
	order := m.AddObject("Order", "a customer order")
	item := m.AddObject("LineItem", "")

	id, ok := m.FindObject("Order")
	require.True(t, ok)
	assert.Equal(t, order.ID, id)

	_, ok = m.FindObject("order")
	assert.False(t, ok, "object lookup is exact")

	got, ok := m.Object(item.ID)
	require.True(t, ok)
	assert.Equal(t, "LineItem", got.Name)
	assert.Equal(t, "shop", got.Catalog)

	again := m.AddObject("Order", "ignored")
	assert.Same(t, order, again)
	assert.Len(t, m.Objects(), 2)
}

func TestModelIDsAreStable(t *testing.T) {
	a := NewModel("shop").AddObject("Order", "")
	b := NewModel("shop").AddObject("Order", "")
	c := NewModel("other").AddObject("Order", "")

	assert.Equal(t, a.ID, b.ID)
	assert.NotEqual(t, a.ID, c.ID)
}

func TestModelTypes(t *testing.T) {
	m := NewModel("shop")
	first := m.AddObject("Zebra", "")
	second := m.AddObject("Apple", "")

	types := m.Types()
	require.Len(t, types, 6)
	assert.Equal(t, []TypeKind{Boolean, Integer, Float, String}, []TypeKind{
		types[0].Kind, types[1].Kind, types[2].Kind, types[3].Kind,
	})
	assert.Equal(t, Type{Kind: Object, Object: first.ID}, types[4])
	assert.Equal(t, Type{Kind: Object, Object: second.ID}, types[5])
}

func TestParseModel(t *testing.T) {
	data := []byte(`
name: shop
objects:
  - name: Order
    description: a customer order
  - name: line_item
`)
	m, err := ParseModel(data)
	require.NoError(t, err)
	assert.Equal(t, "shop", m.Name())

	objs := m.Objects()
	require.Len(t, objs, 2)
	assert.Equal(t, "Order", objs[0].Name)
	assert.Equal(t, "a customer order", objs[0].Description)
	assert.Equal(t, "line_item", objs[1].Name)
}

func TestParseModelErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		err  error
	}{
		{"no name", "objects: []", ErrEmptyName},
		{"unnamed object", "name: m\nobjects:\n  - description: x\n", ErrEmptyName},
		{"duplicate", "name: m\nobjects:\n  - name: A\n  - name: A\n", ErrDuplicateObject},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseModel([]byte(tt.data))
			assert.ErrorIs(t, err, tt.err)
		})
	}

	_, err := ParseModel([]byte("name: [unclosed"))
	assert.Error(t, err)
}

func TestLoadModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: shop\nobjects:\n  - name: Foo\n"), 0o644))

	m, err := LoadModel(path)
	require.NoError(t, err)
	_, ok := m.FindObject("Foo")
	assert.True(t, ok)

	_, err = LoadModel(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestUpperCamel(t *testing.T) {
	assert.Equal(t, "Uuid", UpperCamel("uuid"))
	assert.Equal(t, "LineItem", UpperCamel("line_item"))
	assert.Equal(t, "Foo", UpperCamel("Foo"))
	assert.Equal(t, "FooBar", UpperCamel("FooBar"))
}

func TestCoreCatalog(t *testing.T) {
	core := Core()
	assert.Equal(t, CoreName, core.Name())
	for _, name := range []string{"uuid", "object", "attribute", "type", "option", "struct"} {
		_, ok := core.FindObject(name)
		assert.True(t, ok, name)
	}
	assert.Equal(t, Core().Objects()[0].ID, core.Objects()[0].ID)
}

func TestChainPrecedence(t *testing.T) {
	domain := NewModel("shop")
	domain.AddObject("Order", "")
	core := Core()

	chain := Chain{domain, core}

	order, ok := chain.FindType("Order")
	require.True(t, ok)
	assert.Equal(t, "shop", order.Catalog)

	id, ok := chain.FindType("Uuid")
	require.True(t, ok)
	assert.Equal(t, CoreName, id.Catalog)
	assert.Equal(t, "uuid", id.Name)

	_, ok = chain.FindType("Missing")
	assert.False(t, ok)

	// A domain object with the same camel-cased name shadows core.
	shadow := domain.AddObject("uuid", "domain uuid")
	found, ok := chain.FindType("Uuid")
	require.True(t, ok)
	assert.Equal(t, shadow.ID, found.ID)

	obj, ok := chain.Object(found.ID)
	require.True(t, ok)
	assert.Equal(t, "domain uuid", obj.Description)
}

func TestChainTypeNames(t *testing.T) {
	domain := NewModel("shop")
	domain.AddObject("Order", "")
	domain.AddObject("uuid", "")

	names := Chain{domain, nil, Core()}.TypeNames()
	assert.Equal(t, []string{"Order", "Uuid", "Object", "Attribute", "Type", "Option", "Struct"}, names)
}
