package jsonschema

import (
	"bytes"
	"math/big"
	"reflect"
	"sort"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// newReader adapts raw bytes for json.NewDecoder.
func newReader(data []byte) *bytes.Reader {
	return bytes.NewReader(data)
}

// sortedKeys returns m's keys in lexicographic order, so converting a Go
// map into an Object is deterministic even though map iteration order
// isn't.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FromJSON decodes raw JSON bytes into a Value, preserving the
// integer/float distinction of each number literal: a literal with no
// fractional part and no exponent becomes an Integer, everything else a
// Float.
func FromJSON(data []byte) (Value, error) {
	decoder := json.NewDecoder(newReader(data))
	decoder.UseNumber()
	var raw any
	if err := decoder.Decode(&raw); err != nil {
		return Value{}, newValueError(data, err.Error())
	}
	return FromAny(raw)
}

// FromYAML decodes raw YAML bytes into a Value via the same bridge
// FromJSON uses, so a schema or instance document may be authored in
// either encoding.
func FromYAML(data []byte) (Value, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Value{}, newValueError(data, err.Error())
	}
	return FromAny(raw)
}

// FromAny converts a host-native Go value into the canonical Value sum
// type. It accepts the shapes produced by encoding/json-family decoders
// (nil, bool, string, json.Number, float64, []any, map[string]any) and the
// literal Go numeric types, plus a reflect-based fallback for other
// slice/array/map-shaped values. Anything else, or a map keyed by
// something other than a string, is reported as a *ValueError naming the
// offending Go type.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case json.Number:
		return numberFromLiteral(string(x))
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case int:
		return Integer(int64(x)), nil
	case int8:
		return Integer(int64(x)), nil
	case int16:
		return Integer(int64(x)), nil
	case int32:
		return Integer(int64(x)), nil
	case int64:
		return Integer(x), nil
	case uint:
		return Integer(int64(x)), nil
	case uint8:
		return Integer(int64(x)), nil
	case uint16:
		return Integer(int64(x)), nil
	case uint32:
		return Integer(int64(x)), nil
	case uint64:
		return Integer(int64(x)), nil
	case []any:
		items := make([]Value, len(x))
		for i, item := range x {
			converted, err := FromAny(item)
			if err != nil {
				return Value{}, err
			}
			items[i] = converted
		}
		return Array(items), nil
	case map[string]any:
		obj := NewObject()
		for _, key := range sortedKeys(x) {
			converted, err := FromAny(x[key])
			if err != nil {
				return Value{}, err
			}
			obj.Set(key, converted)
		}
		return FromObject(obj), nil
	default:
		return fromReflect(v)
	}
}

// numberFromLiteral classifies a decoded number literal as Integer or
// Float: a literal that parses as a big.Int with no remainder is an
// Integer, everything else is a Float.
func numberFromLiteral(literal string) (Value, error) {
	if i, ok := new(big.Int).SetString(literal, 10); ok {
		return Integer(i.Int64()), nil
	}
	f, ok := new(big.Float).SetString(literal)
	if !ok {
		return Value{}, newValueError(literal, "not a valid number literal")
	}
	asFloat, _ := f.Float64()
	return Float(asFloat), nil
}

// fromReflect handles slice/array/map-shaped host values that didn't match
// FromAny's fast-path type switch (for example, a named slice type or a
// map with a non-empty-interface value type).
func fromReflect(v any) (Value, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]Value, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			converted, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return Value{}, err
			}
			items[i] = converted
		}
		return Array(items), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Value{}, newValueError(v, ErrNonStringMapKey.Error())
		}
		obj := NewObject()
		iter := rv.MapRange()
		for iter.Next() {
			converted, err := FromAny(iter.Value().Interface())
			if err != nil {
				return Value{}, err
			}
			obj.Set(iter.Key().String(), converted)
		}
		return FromObject(obj), nil
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return FromAny(rv.Elem().Interface())
	default:
		return Value{}, newValueError(v, "unsupported host type")
	}
}
