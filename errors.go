package jsonschema

import (
	"errors"
	"fmt"
)

// ErrUnsupportedTypeForRat is returned when a numeric limit or instance
// value cannot be converted to a big.Rat for formatting.
var ErrUnsupportedTypeForRat = errors.New("jsonschema: value cannot be represented as a number")

// ErrFailedToConvertToRat is returned when a numeric string cannot be
// parsed as a rational number.
var ErrFailedToConvertToRat = errors.New("jsonschema: value is not a valid number literal")

// ErrSchemaMustBeObject is returned when the root of a schema document is
// not a JSON object (boolean schemas and bare scalars are not supported by
// this compiler).
var ErrSchemaMustBeObject = errors.New("jsonschema: schema document must be a JSON object")

// ErrNonStringMapKey is returned by the value bridge when a host map has a
// key that is not a string, since the canonical Object type is
// string-keyed only.
var ErrNonStringMapKey = errors.New("jsonschema: map keys must be strings")

// CompilationError reports a malformed schema: a keyword present with a
// value of the wrong shape. It corresponds to the "malformed schema"
// outcome of a keyword's compile step.
type CompilationError struct {
	Keyword string
	Message string
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("jsonschema: keyword %q: %s", e.Keyword, e.Message)
}

func newCompilationError(keyword, format string, args ...any) *CompilationError {
	return &CompilationError{Keyword: keyword, Message: fmt.Sprintf(format, args...)}
}

// ValueError reports a failure converting a host-native value into the
// canonical Value sum type.
type ValueError struct {
	HostType string
	Message  string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("jsonschema: cannot convert %s to a schema value: %s", e.HostType, e.Message)
}

func newValueError(v any, message string) *ValueError {
	return &ValueError{HostType: fmt.Sprintf("%T", v), Message: message}
}
