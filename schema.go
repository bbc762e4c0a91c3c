package jsonschema

import "iter"

// JSONSchema is a compiled schema: an ordered list of keyword validators
// plus the draft it was compiled under. Nothing in it is modified after
// compilation, so it is safe to share across goroutines. The const and enum
// validators keep the schema's own Values rather than copies, so a schema
// compiled with CompileValue shares their Array and Object contents with
// the caller's schema Value.
type JSONSchema struct {
	draft      Draft
	validators []Validator
}

// Draft reports which draft this schema was compiled under.
func (s *JSONSchema) Draft() Draft { return s.draft }

// IsValid reports whether instance satisfies every compiled keyword. It
// short-circuits on the first failing validator and never builds an
// error value, making it the allocation-light fast path.
func (s *JSONSchema) IsValid(instance any) bool {
	v, err := FromAny(instance)
	if err != nil {
		return false
	}
	return s.IsValidValue(v)
}

// IsValidValue is IsValid for an already-bridged Value, skipping the
// host-to-Value conversion.
func (s *JSONSchema) IsValidValue(instance Value) bool {
	for _, validator := range s.validators {
		if !validator.IsValid(s, instance) {
			return false
		}
	}
	return true
}

// Validate returns a lazy, pull-based sequence of every validation error
// instance has against this schema. Ranging over the sequence and
// breaking early (for example, after the first error) never runs the
// remaining validators and never leaks resources; IsValid ⇔ ranging over
// Validate's result yields nothing.
func (s *JSONSchema) Validate(instance any) (iter.Seq[*EvaluationError], error) {
	v, err := FromAny(instance)
	if err != nil {
		return nil, err
	}
	return s.ValidateValue(v), nil
}

// ValidateValue is Validate for an already-bridged Value.
func (s *JSONSchema) ValidateValue(instance Value) iter.Seq[*EvaluationError] {
	seqs := make([]iter.Seq[*EvaluationError], len(s.validators))
	for i, validator := range s.validators {
		seqs[i] = func(yield func(*EvaluationError) bool) {
			for err := range validator.Validate(s, instance) {
				if !yield(err) {
					return
				}
			}
		}
	}
	return concatErrors(seqs...)
}

// ValidateJSON decodes instanceJSON and validates it against this schema,
// returning the lazy error sequence.
func (s *JSONSchema) ValidateJSON(instanceJSON []byte) (iter.Seq[*EvaluationError], error) {
	v, err := FromJSON(instanceJSON)
	if err != nil {
		return nil, err
	}
	return s.ValidateValue(v), nil
}

// IsValidJSON decodes instanceJSON and reports whether it satisfies this
// schema.
func (s *JSONSchema) IsValidJSON(instanceJSON []byte) bool {
	v, err := FromJSON(instanceJSON)
	if err != nil {
		return false
	}
	return s.IsValidValue(v)
}
