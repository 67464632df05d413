package toolspec

// Decorator reshapes an exported schema before it leaves the registry
// (provider-specific tightening, vendor extensions, etc.). A decorator
// receives its own deep copy and may mutate or replace it.
type Decorator func(schema map[string]any) map[string]any

// Strict returns a decorator applying strict structured-output shape:
// additionalProperties: false on every object and all properties required.
func Strict() Decorator {
	return func(schema map[string]any) map[string]any {
		applyStrictMode(schema)
		return schema
	}
}

// NoIDs returns a decorator that strips id and $id keys from the schema tree,
// for consumers that resolve schemas without honoring embedded identifiers.
func NoIDs() Decorator {
	return func(schema map[string]any) map[string]any {
		stripSchemaIDs(schema)
		return schema
	}
}
