package jsonschema

import "fmt"

// Kind identifies which variant of Value is populated.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInteger
	KindFloat
	KindString
	KindArray
	KindObject
)

// String returns the JSON Schema name for the underlying JSON type, not
// the refined "integer" distinction (matchesType in primitivetype.go makes
// that distinction).
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInteger, KindFloat:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is the closed JSON data model the compiler and evaluator operate
// on: Null, Bool, Integer, Float, String, Array, or Object. It never holds
// any Go type outside this set; conversion from host-native values happens
// once, at the bridge (see bridge.go).
type Value struct {
	kind    Kind
	boolean bool
	integer int64
	float   float64
	str     string
	array   []Value
	object  *Object
}

// Null returns the JSON null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// Integer wraps an exact integer value.
func Integer(n int64) Value { return Value{kind: KindInteger, integer: n} }

// Float wraps a floating-point value.
func Float(f float64) Value { return Value{kind: KindFloat, float: f} }

// String wraps a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array wraps a slice of values, in order.
func Array(items []Value) Value { return Value{kind: KindArray, array: items} }

// FromObject wraps an already-built Object.
func FromObject(o *Object) Value { return Value{kind: KindObject, object: o} }

// Kind reports which variant is populated.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload; only meaningful when Kind() == KindBool.
func (v Value) Bool() bool { return v.boolean }

// String returns the string payload; only meaningful when Kind() == KindString.
func (v Value) String() string { return v.str }

// Array returns the element slice; only meaningful when Kind() == KindArray.
func (v Value) Array() []Value { return v.array }

// Object returns the object payload; only meaningful when Kind() == KindObject.
func (v Value) Object() *Object { return v.object }

// IsNumber reports whether v is an Integer or a Float.
func (v Value) IsNumber() bool { return v.kind == KindInteger || v.kind == KindFloat }

// Float64 returns the numeric payload as a float64, converting from the
// Integer representation when necessary. The conversion is lossy for
// integers outside float64's exact range, matching the source's f64-based
// comparison semantics for bound keywords.
func (v Value) Float64() (float64, bool) {
	switch v.kind {
	case KindInteger:
		return float64(v.integer), true
	case KindFloat:
		return v.float, true
	default:
		return 0, false
	}
}

// Equal reports structural equality per the JSON Schema definition: numbers
// compare by mathematical value regardless of integer/float tagging (1 ==
// 1.0), strings by code-point sequence, arrays positionally, and objects by
// key set with recursively equal values, ignoring key order.
func (v Value) Equal(other Value) bool {
	if v.IsNumber() && other.IsNumber() {
		vf, _ := v.Float64()
		of, _ := other.Float64()
		return vf == of
	}
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolean == other.boolean
	case KindString:
		return v.str == other.str
	case KindArray:
		if len(v.array) != len(other.array) {
			return false
		}
		for i := range v.array {
			if !v.array[i].Equal(other.array[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return v.object.equal(other.object)
	default:
		return false
	}
}

// GoString renders v for diagnostics and error-message interpolation.
func (v Value) GoString() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return fmt.Sprint(v.boolean)
	case KindInteger:
		return fmt.Sprint(v.integer)
	case KindFloat:
		return FormatRat(NewRat(v.float))
	case KindString:
		return v.str
	case KindArray:
		return fmt.Sprintf("array[%d]", len(v.array))
	case KindObject:
		return fmt.Sprintf("object[%d]", v.object.Len())
	default:
		return "unknown"
	}
}

// Object is an insertion-ordered string-keyed map; member order has no
// weight for equality. FromAny inserts the members of a map[string]any in
// lexicographic key order (FromJSON and FromYAML decode through it), so a
// decoded document's own member order is not kept, and compiled keywords
// run in that sorted order.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject returns an empty, ready-to-use Object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Set inserts or overwrites the value for key, preserving first-insertion
// order.
func (o *Object) Set(key string, v Value) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get returns the value for key and whether it was present.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the member names in insertion order.
func (o *Object) Keys() []string { return o.keys }

// Len returns the number of members.
func (o *Object) Len() int { return len(o.keys) }

func (o *Object) equal(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}
	for _, key := range o.keys {
		v, ok := other.Get(key)
		if !ok {
			return false
		}
		if !o.values[key].Equal(v) {
			return false
		}
	}
	return true
}
