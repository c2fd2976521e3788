package toolcore

import "strings"

// Kind is the shape of a compiled native type.
type Kind int

const (
	KindAny Kind = iota
	KindString
	KindInteger
	KindNumber
	KindBoolean
	KindNull
	KindArray
	KindObject
	KindUnion
)

var kindNames = [...]string{
	KindAny:     "any",
	KindString:  "string",
	KindInteger: "integer",
	KindNumber:  "number",
	KindBoolean: "boolean",
	KindNull:    "null",
	KindArray:   "array",
	KindObject:  "object",
	KindUnion:   "union",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Type is a compiled native type. Elem is set for arrays, Members for unions and Model
// for objects with declared properties; an object with a nil Model is free-form. Enum,
// when set, restricts the type to the listed values.
type Type struct {
	Kind    Kind
	Elem    *Type
	Members []Type
	Model   *Model
	Enum    []any
}

// Scalar types produced by MapPrimitive.
var (
	AnyType     = Type{Kind: KindAny}
	StringType  = Type{Kind: KindString}
	IntegerType = Type{Kind: KindInteger}
	NumberType  = Type{Kind: KindNumber}
	BooleanType = Type{Kind: KindBoolean}
	NullType    = Type{Kind: KindNull}
)

var primitives = map[string]Type{
	"string":  StringType,
	"integer": IntegerType,
	"number":  NumberType,
	"boolean": BooleanType,
	"null":    NullType,
}

// MapPrimitive maps a JSON Schema primitive type name to its native scalar type.
func MapPrimitive(name string) (Type, error) {
	if t, ok := primitives[name]; ok {
		return t, nil
	}
	return Type{}, &UnsupportedSchemaTypeError{Type: name}
}

// ArrayOf returns a sequence of elem.
func ArrayOf(elem Type) Type {
	return Type{Kind: KindArray, Elem: &elem}
}

// ObjectOf returns the object type of m; a nil m is a free-form object.
func ObjectOf(m *Model) Type {
	return Type{Kind: KindObject, Model: m}
}

// UnionOf returns a union of members. A single member is returned as is.
func UnionOf(members ...Type) Type {
	if len(members) == 1 {
		return members[0]
	}
	return Type{Kind: KindUnion, Members: members}
}

func (t Type) String() string {
	switch t.Kind {
	case KindArray:
		if t.Elem == nil {
			return "[]any"
		}
		return "[]" + t.Elem.String()
	case KindObject:
		if t.Model == nil {
			return "map[string]any"
		}
		return t.Model.Name
	case KindUnion:
		parts := make([]string, len(t.Members))
		for i, m := range t.Members {
			parts[i] = m.String()
		}
		return strings.Join(parts, " | ")
	default:
		return t.Kind.String()
	}
}

// fallback returns a fresh zero value used as the default of optional fields.
func (t Type) fallback() any {
	switch t.Kind {
	case KindString:
		return ""
	case KindInteger:
		return 0
	case KindNumber:
		return 0.0
	case KindBoolean:
		return false
	case KindArray:
		return []any{}
	case KindObject:
		return map[string]any{}
	default:
		return nil
	}
}
