package jsonschema

import (
	"iter"
	"strings"
)

// enumValidator checks that an instance equals one of a fixed set of
// values. It keeps both the original schema array (options, used to list
// the allowed values in error payloads) and an extracted slice of
// candidates (items, used for the comparison loop).
type enumValidator struct {
	sealedValidator
	options Value
	items   []Value
}

func (v *enumValidator) Name() string { return "enum" }

func (v *enumValidator) IsValid(root *JSONSchema, instance Value) bool {
	for _, candidate := range v.items {
		if instance.Equal(candidate) {
			return true
		}
	}
	return false
}

func (v *enumValidator) Validate(root *JSONSchema, instance Value) iter.Seq[*EvaluationError] {
	if v.IsValid(root, instance) {
		return noErrors()
	}
	options := make([]string, len(v.options.Array()))
	for i, option := range v.options.Array() {
		options[i] = option.GoString()
	}
	return oneError(NewEvaluationError("enum", "value_not_in_enum", "Value should match one of the values specified by the enum", map[string]any{
		"options": "[" + strings.Join(options, ", ") + "]",
	}))
}

// compileEnum implements the "enum" keyword.
//
// According to JSON Schema:
//   - The value of "enum" must be an array with at least one element, all
//     elements unique.
//   - An instance validates successfully if it equals one of the array's
//     elements. Elements may be of any type, including null.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-enum
func compileEnum(parent *Object, value Value, ctx *CompilationContext) (Validator, error) {
	if value.Kind() != KindArray {
		return nil, newCompilationError("enum", "must be an array")
	}
	items := value.Array()
	if len(items) == 0 {
		return nil, newCompilationError("enum", "must have at least one element")
	}
	return &enumValidator{options: value, items: items}, nil
}
