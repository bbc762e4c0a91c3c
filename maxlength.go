package jsonschema

import (
	"iter"
	"unicode/utf8"
)

// maxLengthValidator checks that a string instance has at most a maximum
// number of Unicode code points.
type maxLengthValidator struct {
	sealedValidator
	limit uint64
}

func (v *maxLengthValidator) Name() string { return "maxLength" }

func (v *maxLengthValidator) IsValid(root *JSONSchema, instance Value) bool {
	if instance.Kind() != KindString {
		return true // not a string: this keyword does not apply
	}
	return uint64(utf8.RuneCountInString(instance.String())) <= v.limit
}

func (v *maxLengthValidator) Validate(root *JSONSchema, instance Value) iter.Seq[*EvaluationError] {
	if v.IsValid(root, instance) {
		return noErrors()
	}
	length := utf8.RuneCountInString(instance.String())
	return oneError(NewEvaluationError("maxLength", "string_too_long", "Value should be at most {max_length} characters", map[string]any{
		"max_length": v.limit,
		"length":     length,
	}))
}

// compileMaxLength implements the "maxLength" keyword.
//
// According to JSON Schema:
//   - The value of "maxLength" must be a non-negative integer.
//   - A string instance is valid if its length is less than or equal to
//     this value.
//   - The length of a string is the number of its Unicode code points, as
//     defined by RFC 8259.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-maxlength
func compileMaxLength(parent *Object, value Value, ctx *CompilationContext) (Validator, error) {
	limit, err := nonNegativeInteger("maxLength", value)
	if err != nil {
		return nil, err
	}
	return &maxLengthValidator{limit: limit}, nil
}

// nonNegativeInteger validates that value is a non-negative integer,
// shared by minLength and maxLength.
func nonNegativeInteger(keyword string, value Value) (uint64, error) {
	if value.Kind() != KindInteger || value.integer < 0 {
		return 0, newCompilationError(keyword, "must be a non-negative integer")
	}
	return uint64(value.integer), nil
}
