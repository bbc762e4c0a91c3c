package jsonschema

import "math"

// PrimitiveType is the closed set of JSON Schema primitive type names.
// Integer is a refinement of Number: every Integer value also satisfies
// Number, but not vice versa.
type PrimitiveType int

const (
	TypeNull PrimitiveType = iota
	TypeBoolean
	TypeString
	TypeArray
	TypeObject
	TypeNumber
	TypeInteger
)

// primitiveTypeNames mirrors the JSON Schema Draft 2020-12 "type" keyword
// vocabulary.
var primitiveTypeNames = map[string]PrimitiveType{
	"null":    TypeNull,
	"boolean": TypeBoolean,
	"string":  TypeString,
	"array":   TypeArray,
	"object":  TypeObject,
	"number":  TypeNumber,
	"integer": TypeInteger,
}

func (t PrimitiveType) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	case TypeNumber:
		return "number"
	case TypeInteger:
		return "integer"
	default:
		return "unknown"
	}
}

// matchesType reports whether instance satisfies the named primitive type
// under the given draft. The draft only affects the Integer refinement:
// draft-4 considers only values already tagged KindInteger, while draft-7
// additionally accepts a KindFloat with a zero fractional part (rejecting
// NaN and Inf, which have no well-defined fractional part).
func matchesType(instance Value, t PrimitiveType, draft Draft) bool {
	switch t {
	case TypeNull:
		return instance.Kind() == KindNull
	case TypeBoolean:
		return instance.Kind() == KindBool
	case TypeString:
		return instance.Kind() == KindString
	case TypeArray:
		return instance.Kind() == KindArray
	case TypeObject:
		return instance.Kind() == KindObject
	case TypeNumber:
		return instance.IsNumber()
	case TypeInteger:
		return isInteger(instance, draft)
	default:
		return false
	}
}

func isInteger(instance Value, draft Draft) bool {
	if instance.Kind() == KindInteger {
		return true
	}
	if instance.Kind() != KindFloat {
		return false
	}
	if draft != Draft7 {
		return false
	}
	f := instance.float
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return f == math.Trunc(f)
}
