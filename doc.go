// Package jsonschema compiles a JSON Schema document into a tree of
// keyword validators and evaluates instances against it, exposing both an
// allocation-light boolean check and a lazy stream of validation errors.
package jsonschema
