package jsonschema

import "iter"

// constValidator checks that an instance equals exactly one fixed value.
type constValidator struct {
	sealedValidator
	value Value
}

func (v *constValidator) Name() string { return "const" }

func (v *constValidator) IsValid(root *JSONSchema, instance Value) bool {
	return instance.Equal(v.value)
}

func (v *constValidator) Validate(root *JSONSchema, instance Value) iter.Seq[*EvaluationError] {
	if v.IsValid(root, instance) {
		return noErrors()
	}
	return oneError(NewEvaluationError("const", "const_mismatch", "Value does not match the constant value", map[string]any{
		"expected": v.value.GoString(),
		"received": instance.GoString(),
	}))
}

// compileConst implements the "const" keyword.
//
// According to JSON Schema:
//   - The value of "const" may be of any type, including null.
//   - An instance validates successfully if it equals the keyword's value.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-const
func compileConst(parent *Object, value Value, ctx *CompilationContext) (Validator, error) {
	return &constValidator{value: value}, nil
}
