package jsonschema

import "iter"

// Validator is the capability every compiled keyword exposes: a fast
// allocation-light boolean check, a lazy error stream for diagnostics, and
// its own keyword name. IsValid(root, v) must report false if and only if
// Validate(root, v) yields at least one error.
//
// The interface is sealed (the unexported sealed method can only be
// satisfied from within this package) so that the set of validator kinds
// stays closed, the Go analogue of a tagged-variant enum: callers pattern
// match by type switch over a fixed, package-owned set of concrete types,
// never by implementing Validator themselves.
type Validator interface {
	IsValid(root *JSONSchema, instance Value) bool
	Validate(root *JSONSchema, instance Value) iter.Seq[*EvaluationError]
	Name() string

	sealed()
}

// sealedValidator is embedded by every concrete validator type to close
// the Validator interface to this package.
type sealedValidator struct{}

func (sealedValidator) sealed() {}

// CompilationContext carries the information a keyword's compile function
// needs beyond its own value: currently just the draft in effect. It is
// threaded through compilation rather than stored on the schema so that
// compiling the same document under two drafts never shares state.
type CompilationContext struct {
	Draft Draft
}

// compileFunc compiles one keyword's value into a Validator. parent is the
// full schema object the keyword was found in, so a compile function may
// consult sibling keywords if it ever needs to (none of the keywords in
// this module's scope do, but the signature matches the source's
// per-keyword compile contract). A non-nil error means the schema is
// malformed; every keyword in keywordCompilers is unconditionally
// applicable once present, so there is no "not applicable" outcome to
// represent here (an absent or unknown keyword simply never reaches this
// function — see compiler.go).
type compileFunc func(parent *Object, value Value, ctx *CompilationContext) (Validator, error)
