package jsonschema

import "iter"

// exclusiveMaximumValidator checks that a numeric instance is strictly
// less than an upper limit.
type exclusiveMaximumValidator struct {
	sealedValidator
	limit float64
}

func (v *exclusiveMaximumValidator) Name() string { return "exclusiveMaximum" }

func (v *exclusiveMaximumValidator) IsValid(root *JSONSchema, instance Value) bool {
	n, ok := instance.Float64()
	if !ok {
		return true // not a number: this keyword does not apply
	}
	return n < v.limit
}

func (v *exclusiveMaximumValidator) Validate(root *JSONSchema, instance Value) iter.Seq[*EvaluationError] {
	if v.IsValid(root, instance) {
		return noErrors()
	}
	n, _ := instance.Float64()
	return oneError(NewEvaluationError("exclusiveMaximum", "exclusive_maximum_mismatch", "{value} should be less than {exclusive_maximum}", map[string]any{
		"exclusive_maximum": FormatRat(NewRat(v.limit)),
		"value":             FormatRat(NewRat(n)),
	}))
}

// compileExclusiveMaximum implements the "exclusiveMaximum" keyword.
//
// According to JSON Schema:
//   - The value of "exclusiveMaximum" must be a number.
//   - The instance is valid only if it is strictly less than (not equal
//     to) the value of "exclusiveMaximum".
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-exclusivemaximum
func compileExclusiveMaximum(parent *Object, value Value, ctx *CompilationContext) (Validator, error) {
	limit, ok := value.Float64()
	if !ok {
		return nil, newCompilationError("exclusiveMaximum", "must be a number")
	}
	return &exclusiveMaximumValidator{limit: limit}, nil
}
