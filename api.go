package jsonschema

// IsValid compiles schema at DefaultDraft and reports whether instance
// satisfies it. Both schema and instance are bridged through FromAny, so
// either may be anything FromAny accepts: a decoded JSON document
// (map[string]any/[]any/...), a Value, or a JSON/YAML-decoded Go literal.
func IsValid(schema, instance any) (bool, error) {
	schemaValue, err := FromAny(schema)
	if err != nil {
		return false, err
	}
	s, err := NewCompiler().CompileValue(schemaValue)
	if err != nil {
		return false, err
	}
	return s.IsValid(instance), nil
}
