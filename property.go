package toolspec

// Property is one key/value fragment of a schema (e.g. type: "string",
// description: "the city name"). A single parameter is usually described by
// several properties emitted together and merged into one schema object.
type Property struct {
	Key   string
	Value any
}

// Merge combines properties into a single schema object. Properties with an
// empty key or a nil value are dropped, so an absent optional description
// never shows up as a literal null in the output.
func Merge(props ...Property) map[string]any {
	m := make(map[string]any, len(props))
	for _, p := range props {
		if p.Key == "" || p.Value == nil {
			continue
		}
		m[p.Key] = p.Value
	}
	return m
}

func typeProp(name string) Property { return Property{Key: "type", Value: name} }

// descriptionProp returns a zero Property for empty text; Merge drops it.
func descriptionProp(text string) Property {
	if text == "" {
		return Property{}
	}
	return Property{Key: "description", Value: text}
}

func enumProp(values []string) Property {
	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return Property{Key: "enum", Value: vals}
}

func itemsProp(items map[string]any) Property {
	if items == nil {
		return Property{}
	}
	return Property{Key: "items", Value: items}
}

// propertiesProp wraps a field-name → fragment mapping. A nil mapping (cycle
// truncation) yields a zero Property so the properties key stays absent.
func propertiesProp(fields map[string]any) Property {
	if fields == nil {
		return Property{}
	}
	return Property{Key: "properties", Value: fields}
}
