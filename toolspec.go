package toolspec

// Parameter is one formal parameter of a callable: a name, a type descriptor,
// and the metadata the member-enumeration facility discovered for it.
// The zero value of Optional means required; Injected parameters (session or
// conversation identifiers supplied by the calling runtime) never appear in
// the generated schema at all.
type Parameter struct {
	Name        string
	Type        TypeDescriptor
	Description string
	Optional    bool
	Injected    bool
}

// Callable carries a callable's tool-worthy metadata into Build. Name is the
// callable's own name; Alias, when non-empty, overrides it. Description holds
// the human-authored description lines, joined with newlines in the output.
type Callable struct {
	Name        string
	Alias       string
	Description []string
	Params      []Parameter
}

// ToolSpecification pairs a callable's name and description with the schema
// of its parameters. It is immutable once built: accessors return copies, and
// nothing here is mutated after Build returns, so a specification may be read
// from any number of goroutines.
type ToolSpecification struct {
	name        string
	description string
	order       []string
	params      map[string]map[string]any
	required    []string
	strict      bool
}

// Name returns the tool name (alias if one was set, the callable's own name otherwise).
func (s *ToolSpecification) Name() string { return s.name }

// Description returns the tool description; empty when the callable had none.
func (s *ToolSpecification) Description() string { return s.description }

// ParameterNames returns the schema parameter names in declaration order.
// Injected parameters are absent.
func (s *ToolSpecification) ParameterNames() []string {
	return append([]string(nil), s.order...)
}

// Parameter returns a deep copy of the named parameter's schema fragment,
// or (nil, false) if the callable has no such parameter.
func (s *ToolSpecification) Parameter(name string) (map[string]any, bool) {
	frag, ok := s.params[name]
	if !ok {
		return nil, false
	}
	return copySchema(frag), true
}

// Required returns the names of the required parameters, in declaration order.
func (s *ToolSpecification) Required() []string {
	return append([]string(nil), s.required...)
}

// Schema exports the full parameters schema as a JSON-Schema-like object:
// {type: "object", properties: {...}, required: [...]}. The required key is
// omitted when no parameter is required. The returned map is a deep copy.
//
// When the specification was built with WithStrict, the exported schema has
// additionalProperties: false on every object and all nested properties
// required, matching what strict structured-output endpoints expect.
func (s *ToolSpecification) Schema() map[string]any {
	props := make(map[string]any, len(s.params))
	for name, frag := range s.params {
		props[name] = copySchema(frag)
	}
	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(s.required) > 0 {
		required := make([]any, len(s.required))
		for i, name := range s.required {
			required[i] = name
		}
		schema["required"] = required
	}
	if s.strict {
		applyStrictMode(schema)
	}
	return schema
}
