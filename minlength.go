package jsonschema

import (
	"iter"
	"unicode/utf8"
)

// minLengthValidator checks that a string instance has at least a minimum
// number of Unicode code points.
type minLengthValidator struct {
	sealedValidator
	limit uint64
}

func (v *minLengthValidator) Name() string { return "minLength" }

func (v *minLengthValidator) IsValid(root *JSONSchema, instance Value) bool {
	if instance.Kind() != KindString {
		return true // not a string: this keyword does not apply
	}
	return uint64(utf8.RuneCountInString(instance.String())) >= v.limit
}

func (v *minLengthValidator) Validate(root *JSONSchema, instance Value) iter.Seq[*EvaluationError] {
	if v.IsValid(root, instance) {
		return noErrors()
	}
	length := utf8.RuneCountInString(instance.String())
	return oneError(NewEvaluationError("minLength", "string_too_short", "Value should be at least {min_length} characters", map[string]any{
		"min_length": v.limit,
		"length":     length,
	}))
}

// compileMinLength implements the "minLength" keyword.
//
// According to JSON Schema:
//   - The value of "minLength" must be a non-negative integer.
//   - A string instance is valid if its length is greater than or equal
//     to this value.
//   - The length of a string is the number of its Unicode code points, as
//     defined by RFC 8259, counted with utf8.RuneCountInString rather
//     than len() or UTF-16 code units.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-minlength
func compileMinLength(parent *Object, value Value, ctx *CompilationContext) (Validator, error) {
	limit, err := nonNegativeInteger("minLength", value)
	if err != nil {
		return nil, err
	}
	return &minLengthValidator{limit: limit}, nil
}
