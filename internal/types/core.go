package types

// CoreName is the name of the foundational catalog.
const CoreName = "core"

var coreObjects = []struct{ name, description string }{
	{"uuid", "universally unique identifier"},
	{"object", "a named domain object"},
	{"attribute", "a named, typed property of an object"},
	{"type", "the type of an attribute or value"},
	{"option", "a value that may be absent"},
	{"struct", "a record of named fields"},
}

// Core returns the foundational catalog consulted after the domain model.
// Each call returns a fresh catalog with the same ids.
func Core() *Model {
	m := NewModel(CoreName)
	for _, o := range coreObjects {
		m.AddObject(o.name, o.description)
	}
	return m
}
