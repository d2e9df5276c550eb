package values

import "reflect"

// Kind is the coercion target derived from a default value.
type Kind int

const (
	// Unsupported defaults are returned unchanged by Cast.
	Unsupported Kind = iota
	// Int covers every signed and unsigned integer width.
	Int
	// Float covers float32 and float64.
	Float
	// Bool uses the boolean token grammar.
	Bool
	// String falls back to the default only for empty input.
	String
	// Structured covers maps and slices decoded from JSON or serialized arrays.
	Structured
)

var kindNames = map[Kind]string{
	Unsupported: "unsupported",
	Int:         "int",
	Float:       "float",
	Bool:        "bool",
	String:      "string",
	Structured:  "structured",
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind maps a kind name back to its Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return Unsupported, false
}

// KindOf derives the coercion target from the runtime type of def.
func KindOf(def any) Kind {
	if def == nil {
		return Unsupported
	}
	switch reflect.TypeOf(def).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Int
	case reflect.Float32, reflect.Float64:
		return Float
	case reflect.Bool:
		return Bool
	case reflect.String:
		return String
	case reflect.Map, reflect.Slice:
		return Structured
	default:
		return Unsupported
	}
}
