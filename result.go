package jsonschema

import (
	"iter"

	"github.com/kaptinlin/go-i18n"
)

// EvaluationError represents a single keyword validation failure.
type EvaluationError struct {
	Keyword string         `json:"keyword"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Params  map[string]any `json:"params"`
}

// NewEvaluationError creates a new evaluation error with the specified
// details.
func NewEvaluationError(keyword, code, message string, params ...map[string]any) *EvaluationError {
	e := &EvaluationError{Keyword: keyword, Code: code, Message: message}
	if len(params) > 0 {
		e.Params = params[0]
	}
	return e
}

func (e *EvaluationError) Error() string {
	return replace(e.Message, e.Params)
}

// Localize returns a localized error message using the provided localizer,
// falling back to the default English message when localizer is nil.
func (e *EvaluationError) Localize(localizer *i18n.Localizer) string {
	if localizer != nil {
		return localizer.Get(e.Code, i18n.Vars(e.Params))
	}
	return e.Error()
}

// noErrors is the empty error sequence, returned by a validator that found
// no problem.
func noErrors() iter.Seq[*EvaluationError] {
	return func(yield func(*EvaluationError) bool) {}
}

// oneError wraps a single error as a one-element sequence.
func oneError(err *EvaluationError) iter.Seq[*EvaluationError] {
	return func(yield func(*EvaluationError) bool) {
		yield(err)
	}
}

// firstError drains seq only as far as its first element, matching
// IsValid's allocation-light short-circuit semantics while reusing a
// validator's Validate implementation.
func firstError(seq iter.Seq[*EvaluationError]) (*EvaluationError, bool) {
	for err := range seq {
		return err, true
	}
	return nil, false
}

// concatErrors lazily chains multiple error sequences, stopping as soon as
// the consumer stops pulling, so abandoning iteration mid-sequence never
// forces the remaining validators to run.
func concatErrors(seqs ...iter.Seq[*EvaluationError]) iter.Seq[*EvaluationError] {
	return func(yield func(*EvaluationError) bool) {
		for _, seq := range seqs {
			for err := range seq {
				if !yield(err) {
					return
				}
			}
		}
	}
}
