package jsonschema

// Draft selects which "type" keyword semantics a schema is compiled under.
// The difference only matters for the "integer" refinement: see
// primitivetype.go.
type Draft int

const (
	// Draft4 uses the legacy integer test: is_u64() || is_i64(), i.e. a
	// number that was never tagged as anything but an integer.
	Draft4 Draft = iota
	// Draft7 additionally accepts a float with a zero fractional part as
	// an integer.
	Draft7
)

// DefaultDraft is the draft a Compiler returned by NewCompiler uses until
// it is configured with WithDraft.
const DefaultDraft = Draft7

func (d Draft) String() string {
	switch d {
	case Draft4:
		return "draft4"
	case Draft7:
		return "draft7"
	default:
		return "unknown"
	}
}
