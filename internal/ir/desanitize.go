package ir

// desanitized maps names that were renamed to avoid clashing with reserved
// identifiers back to the domain concept they stand for.
var desanitized = map[string]string{
	"Ty":         "Type",
	"WoogOption": "Option",
	"WoogStruct": "Struct",
}

// Desanitize is applied to every name before it is looked up in a catalog.
func Desanitize(name string) string {
	if d, ok := desanitized[name]; ok {
		return d
	}
	return name
}
