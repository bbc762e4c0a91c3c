package jsonschema

import "iter"

// maximumValidator checks that a numeric instance is less than or exactly
// equal to an inclusive upper limit.
type maximumValidator struct {
	sealedValidator
	limit float64
}

func (v *maximumValidator) Name() string { return "maximum" }

func (v *maximumValidator) IsValid(root *JSONSchema, instance Value) bool {
	n, ok := instance.Float64()
	if !ok {
		return true // not a number: this keyword does not apply
	}
	return n <= v.limit
}

func (v *maximumValidator) Validate(root *JSONSchema, instance Value) iter.Seq[*EvaluationError] {
	if v.IsValid(root, instance) {
		return noErrors()
	}
	n, _ := instance.Float64()
	return oneError(NewEvaluationError("maximum", "value_above_maximum", "{value} should be at most {maximum}", map[string]any{
		"value":   FormatRat(NewRat(n)),
		"maximum": FormatRat(NewRat(v.limit)),
	}))
}

// compileMaximum implements the "maximum" keyword.
//
// According to JSON Schema:
//   - The value of "maximum" must be a number, an inclusive upper limit
//     for a numeric instance.
//   - This keyword validates only if the instance is less than or exactly
//     equal to "maximum".
//   - Comparison is performed in float64; a lossy conversion for very
//     large integers is acceptable and matches the source.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-maximum
func compileMaximum(parent *Object, value Value, ctx *CompilationContext) (Validator, error) {
	limit, ok := value.Float64()
	if !ok {
		return nil, newCompilationError("maximum", "must be a number")
	}
	return &maximumValidator{limit: limit}, nil
}
