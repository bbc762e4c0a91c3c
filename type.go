package jsonschema

import (
	"iter"
	"strings"
)

// singleTypeValidator checks that an instance matches one required
// primitive type.
type singleTypeValidator struct {
	sealedValidator
	typ   PrimitiveType
	draft Draft
}

func (v *singleTypeValidator) Name() string { return "type" }

func (v *singleTypeValidator) IsValid(root *JSONSchema, instance Value) bool {
	return matchesType(instance, v.typ, v.draft)
}

func (v *singleTypeValidator) Validate(root *JSONSchema, instance Value) iter.Seq[*EvaluationError] {
	if v.IsValid(root, instance) {
		return noErrors()
	}
	return oneError(NewEvaluationError("type", "single_type_mismatch", "Value is {received} but should be {expected}", map[string]any{
		"expected": v.typ.String(),
		"received": instance.Kind().String(),
	}))
}

// multipleTypesValidator checks that an instance matches at least one of
// several required primitive types.
type multipleTypesValidator struct {
	sealedValidator
	types []PrimitiveType
	draft Draft
}

func (v *multipleTypesValidator) Name() string { return "type" }

func (v *multipleTypesValidator) IsValid(root *JSONSchema, instance Value) bool {
	for _, t := range v.types {
		if matchesType(instance, t, v.draft) {
			return true
		}
	}
	return false
}

func (v *multipleTypesValidator) Validate(root *JSONSchema, instance Value) iter.Seq[*EvaluationError] {
	if v.IsValid(root, instance) {
		return noErrors()
	}
	return oneError(NewEvaluationError("type", "multiple_types_mismatch", "Value is {received} but should be one of {expected}", map[string]any{
		"expected": typeNames(v.types),
		"received": instance.Kind().String(),
	}))
}

// compileType implements the "type" keyword, dispatching to a single- or
// multiple-type validator depending on the schema's shape, and to
// draft-4 or draft-7 integer semantics depending on ctx.Draft.
//
// According to JSON Schema:
//   - The value of "type" must be either a string or an array of unique
//     strings, each one of the seven primitive type names.
//   - A single string means the instance must match that type.
//   - An array means the instance must match at least one listed type.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-type
func compileType(parent *Object, value Value, ctx *CompilationContext) (Validator, error) {
	switch value.Kind() {
	case KindString:
		t, ok := primitiveTypeNames[value.String()]
		if !ok {
			return nil, newCompilationError("type", "unknown type name %q", value.String())
		}
		return &singleTypeValidator{typ: t, draft: ctx.Draft}, nil
	case KindArray:
		items := value.Array()
		if len(items) == 0 {
			return nil, newCompilationError("type", "type array must not be empty")
		}
		if len(items) == 1 {
			if items[0].Kind() != KindString {
				return nil, newCompilationError("type", "type array elements must be strings")
			}
			return compileType(parent, items[0], ctx)
		}
		types := make([]PrimitiveType, 0, len(items))
		for _, item := range items {
			if item.Kind() != KindString {
				return nil, newCompilationError("type", "type array elements must be strings")
			}
			t, ok := primitiveTypeNames[item.String()]
			if !ok {
				return nil, newCompilationError("type", "unknown type name %q", item.String())
			}
			types = append(types, t)
		}
		return &multipleTypesValidator{types: types, draft: ctx.Draft}, nil
	default:
		return nil, newCompilationError("type", "must be a string or an array of strings")
	}
}

func typeNames(types []PrimitiveType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}
