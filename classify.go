package toolspec

// classifySimple maps a descriptor to one of the simple schema fragments:
// string, boolean, integer, number, fixed array, or enum. It reports ok=false
// for anything else (collections and structured types), and the caller falls
// through to resolveFragment's remaining branches.
//
// Case order matters: a descriptor may satisfy several variant interfaces,
// and the first match wins (primitives before arrays before enums).
func classifySimple(td TypeDescriptor, description string, visited visitedSet) (map[string]any, bool) {
	switch d := td.(type) {
	case PrimitiveDescriptor:
		switch d.Primitive() {
		case PrimitiveString:
			return Merge(typeProp("string"), descriptionProp(description)), true
		case PrimitiveBool:
			return Merge(typeProp("boolean"), descriptionProp(description)), true
		case PrimitiveInteger:
			return Merge(typeProp("integer"), descriptionProp(description)), true
		case PrimitiveNumber:
			return Merge(typeProp("number"), descriptionProp(description)), true
		}
		return nil, false
	case ArrayDescriptor:
		items := resolveFragment(d.Component(), "", visited)
		return Merge(typeProp("array"), itemsProp(items), descriptionProp(description)), true
	case EnumDescriptor:
		return Merge(typeProp("string"), enumProp(d.EnumValues()), descriptionProp(description)), true
	}
	return nil, false
}
