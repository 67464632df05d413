package toolspec

import (
	"encoding/json"
	"slices"

	"github.com/google/jsonschema-go/jsonschema"
)

// copySchema deep-copies a schema tree (maps and slices; leaf values are
// shared, which is safe because they are immutable strings and numbers).
func copySchema(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copySchemaValue(v)
	}
	return out
}

func copySchemaValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return copySchema(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = copySchemaValue(item)
		}
		return out
	default:
		return v
	}
}

// walkSchema recursively visits every map node in the schema tree.
func walkSchema(schemaMap map[string]any, visit func(map[string]any)) {
	if schemaMap == nil {
		return
	}
	visit(schemaMap)
	for _, val := range schemaMap {
		switch v := val.(type) {
		case map[string]any:
			walkSchema(v, visit)
		case []any:
			for _, item := range v {
				if m2, ok := item.(map[string]any); ok {
					walkSchema(m2, visit)
				}
			}
		}
	}
}

// applyStrictMode sets additionalProperties: false for every object in the
// schema and makes all of an object's properties required (sorted for
// deterministic output). Strict structured-output endpoints require both.
func applyStrictMode(schemaMap map[string]any) {
	walkSchema(schemaMap, func(n map[string]any) {
		if _, isObj := n["properties"]; isObj {
			n["additionalProperties"] = false
			if props, ok := n["properties"].(map[string]any); ok {
				keys := make([]string, 0, len(props))
				for k := range props {
					keys = append(keys, k)
				}
				slices.Sort(keys)
				required := make([]any, len(keys))
				for i, k := range keys {
					required[i] = k
				}
				if len(required) > 0 {
					n["required"] = required
				}
			}
		}
	})
}

// stripSchemaIDs removes id and $id from schema so resolution does not depend on them.
func stripSchemaIDs(schemaMap map[string]any) {
	walkSchema(schemaMap, func(n map[string]any) {
		delete(n, "id")
		delete(n, "$id")
	})
}

// compileRawSchema compiles a raw schema map into a resolved validator.
// The map is not mutated.
func compileRawSchema(schemaMap map[string]any) (*jsonschema.Resolved, error) {
	data, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, err
	}
	var s jsonschema.Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return s.Resolve(nil)
}

// AsJSONSchema converts the exported parameters schema into a typed
// *jsonschema.Schema for callers integrating with that ecosystem.
func (s *ToolSpecification) AsJSONSchema() (*jsonschema.Schema, error) {
	data, err := json.Marshal(s.Schema())
	if err != nil {
		return nil, err
	}
	var out jsonschema.Schema
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Compile resolves the exported parameters schema into a validator the caller
// can run against incoming argument documents. The specification itself never
// validates argument values; it only describes them. Compilation errors from
// the schema library are returned as-is.
func (s *ToolSpecification) Compile() (*jsonschema.Resolved, error) {
	schema := s.Schema()
	stripSchemaIDs(schema)
	return compileRawSchema(schema)
}
