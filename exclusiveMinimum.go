package jsonschema

import "iter"

// exclusiveMinimumValidator checks that a numeric instance is strictly
// greater than a lower limit.
type exclusiveMinimumValidator struct {
	sealedValidator
	limit float64
}

func (v *exclusiveMinimumValidator) Name() string { return "exclusiveMinimum" }

func (v *exclusiveMinimumValidator) IsValid(root *JSONSchema, instance Value) bool {
	n, ok := instance.Float64()
	if !ok {
		return true // not a number: this keyword does not apply
	}
	return n > v.limit
}

func (v *exclusiveMinimumValidator) Validate(root *JSONSchema, instance Value) iter.Seq[*EvaluationError] {
	if v.IsValid(root, instance) {
		return noErrors()
	}
	n, _ := instance.Float64()
	return oneError(NewEvaluationError("exclusiveMinimum", "exclusive_minimum_mismatch", "{value} should be greater than {exclusive_minimum}", map[string]any{
		"exclusive_minimum": FormatRat(NewRat(v.limit)),
		"value":             FormatRat(NewRat(n)),
	}))
}

// compileExclusiveMinimum implements the "exclusiveMinimum" keyword.
//
// According to JSON Schema:
//   - The value of "exclusiveMinimum" must be a number.
//   - The instance is valid only if it is strictly greater than (not
//     equal to) the value of "exclusiveMinimum".
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-exclusiveminimum
func compileExclusiveMinimum(parent *Object, value Value, ctx *CompilationContext) (Validator, error) {
	limit, ok := value.Float64()
	if !ok {
		return nil, newCompilationError("exclusiveMinimum", "must be a number")
	}
	return &exclusiveMinimumValidator{limit: limit}, nil
}
