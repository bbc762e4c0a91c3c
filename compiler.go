package jsonschema

// keywordCompilers maps a recognized keyword name to the function that
// compiles its value into a Validator. A schema object's keys are matched
// against this table one at a time; a key absent from the table (whether
// unknown entirely or a keyword outside this package's scope) is silently
// skipped, exactly as an unrecognized keyword should be.
var keywordCompilers = map[string]compileFunc{
	"type":             compileType,
	"const":            compileConst,
	"enum":             compileEnum,
	"minimum":          compileMinimum,
	"maximum":          compileMaximum,
	"exclusiveMinimum": compileExclusiveMinimum,
	"exclusiveMaximum": compileExclusiveMaximum,
	"minLength":        compileMinLength,
	"maxLength":        compileMaxLength,
}

// Compiler turns a schema document into a compiled JSONSchema. NewCompiler
// returns one set to DefaultDraft; the zero value compiles under Draft4,
// the zero Draft. Use WithDraft to choose a draft explicitly.
type Compiler struct {
	draft Draft
}

// NewCompiler returns a Compiler configured for DefaultDraft.
func NewCompiler() *Compiler {
	return &Compiler{draft: DefaultDraft}
}

// WithDraft selects which draft's "type" keyword semantics subsequent
// Compile calls use.
func (c *Compiler) WithDraft(d Draft) *Compiler {
	c.draft = d
	return c
}

// Compile parses schemaJSON and compiles it into a JSONSchema. The
// resulting JSONSchema is immutable and safe to share across goroutines;
// concurrent calls to IsValid/Validate on disjoint instances always match
// the result of calling them sequentially.
func (c *Compiler) Compile(schemaJSON []byte) (*JSONSchema, error) {
	root, err := FromJSON(schemaJSON)
	if err != nil {
		return nil, err
	}
	return c.CompileValue(root)
}

// CompileValue compiles an already-bridged schema Value.
func (c *Compiler) CompileValue(schema Value) (*JSONSchema, error) {
	if schema.Kind() != KindObject {
		return nil, ErrSchemaMustBeObject
	}
	obj := schema.Object()
	ctx := &CompilationContext{Draft: c.draft}

	js := &JSONSchema{draft: c.draft}
	for _, key := range obj.Keys() {
		compile, known := keywordCompilers[key]
		if !known {
			continue
		}
		value, _ := obj.Get(key)
		validator, err := compile(obj, value, ctx)
		if err != nil {
			return nil, err
		}
		js.validators = append(js.validators, validator)
	}
	return js, nil
}

// Compile compiles schemaJSON at DefaultDraft. It is a convenience
// wrapper around NewCompiler().Compile.
func Compile(schemaJSON []byte) (*JSONSchema, error) {
	return NewCompiler().Compile(schemaJSON)
}
