package jsonschema

import "iter"

// minimumValidator checks that a numeric instance is greater than or
// exactly equal to an inclusive lower limit.
type minimumValidator struct {
	sealedValidator
	limit float64
}

func (v *minimumValidator) Name() string { return "minimum" }

func (v *minimumValidator) IsValid(root *JSONSchema, instance Value) bool {
	n, ok := instance.Float64()
	if !ok {
		return true // not a number: this keyword does not apply
	}
	return n >= v.limit
}

func (v *minimumValidator) Validate(root *JSONSchema, instance Value) iter.Seq[*EvaluationError] {
	if v.IsValid(root, instance) {
		return noErrors()
	}
	n, _ := instance.Float64()
	return oneError(NewEvaluationError("minimum", "value_below_minimum", "{value} should be at least {minimum}", map[string]any{
		"value":   FormatRat(NewRat(n)),
		"minimum": FormatRat(NewRat(v.limit)),
	}))
}

// compileMinimum implements the "minimum" keyword.
//
// According to JSON Schema:
//   - The value of "minimum" must be a number, an inclusive lower limit
//     for a numeric instance.
//   - This keyword validates only if the instance is greater than or
//     exactly equal to "minimum".
//   - Comparison is performed in float64; a lossy conversion for very
//     large integers is acceptable and matches the source.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-minimum
func compileMinimum(parent *Object, value Value, ctx *CompilationContext) (Validator, error) {
	limit, ok := value.Float64()
	if !ok {
		return nil, newCompilationError("minimum", "must be a number")
	}
	return &minimumValidator{limit: limit}, nil
}
