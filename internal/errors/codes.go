package errors

// Error codes for the dwarf front end.
//
// Error code ranges:
// E0001-E0099: Declaration checks
// E0100-E0199: Scanner and parser errors
// E0200-E0299: Type resolution and lowering errors
// E0800-E0899: Warning codes

const (
	// E0006: A struct declares the same field twice
	ErrorDuplicateField = "E0006"

	// E0009: A function declares the same parameter twice
	ErrorDuplicateParameter = "E0009"

	// E0100: Character no lexical rule accepts
	ErrorInvalidCharacter = "E0100"

	// E0101: Token did not fit the grammar
	ErrorUnexpectedToken = "E0101"

	// E0102: Delimiter opened but never closed
	ErrorUnclosedDelimiter = "E0102"

	// E0103: Two items with the same name and kind
	ErrorDuplicateItem = "E0103"

	// E0104: String literal runs to end of input
	ErrorUnterminatedString = "E0104"

	// E0200: Named object is in no catalog
	ErrorObjectNotFound = "E0200"

	// E0201: Self used where no impl block encloses it
	ErrorSelfOutsideImpl = "E0201"

	// E0202: Catalog object has no struct declared for it
	ErrorStructNotFound = "E0202"

	// E0203: Type name resolves in no catalog
	ErrorTypeNotFound = "E0203"

	// E0204: Impl block entry is not a function
	ErrorInvalidImplEntry = "E0204"

	// E0205: Construct accepted by the parser but not lowered
	ErrorUnimplemented = "E0205"

	// E0800: impl block names a type with no struct declaration
	WarningImplWithoutStruct = "E0800"

	// E0801: Import is recorded but never resolved
	WarningUnresolvedImport = "E0801"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorDuplicateField:
		return "Struct declares the same field more than once"
	case ErrorDuplicateParameter:
		return "Function declares the same parameter more than once"
	case ErrorInvalidCharacter:
		return "Character is not part of the language"
	case ErrorUnexpectedToken:
		return "Token does not fit the grammar at this point"
	case ErrorUnclosedDelimiter:
		return "Delimiter is opened but never closed"
	case ErrorDuplicateItem:
		return "Item with the same name and kind is already defined"
	case ErrorUnterminatedString:
		return "String literal is missing its closing quote"
	case ErrorObjectNotFound:
		return "Type name does not match any object in the model or core catalog"
	case ErrorSelfOutsideImpl:
		return "Self is only meaningful inside an impl block"
	case ErrorStructNotFound:
		return "Object has no struct declaration in this file"
	case ErrorTypeNotFound:
		return "Type cannot be resolved"
	case ErrorInvalidImplEntry:
		return "Only functions may appear in an impl block"
	case ErrorUnimplemented:
		return "Construct is parsed but cannot be lowered yet"
	case WarningImplWithoutStruct:
		return "impl block has no matching struct"
	case WarningUnresolvedImport:
		return "Import is recorded but not resolved"
	default:
		return "Unknown error code"
	}
}

// IsWarning returns true if the error code represents a warning rather than an error
func IsWarning(code string) bool {
	return code >= "E0800" && code < "E0900"
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0001" && code < "E0100":
		return "Declaration"
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0200" && code < "E0300":
		return "Lowering"
	case code >= "E0800" && code < "E0900":
		return "Warning"
	default:
		return "Unknown"
	}
}
