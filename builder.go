package toolspec

import "strings"

// visitedSet tracks structured descriptors on the active expansion path. It is
// not a cache: sibling branches referencing the same type expand independently
// because each parameter starts with a fresh set, and only ancestors of the
// current branch are in it when a descriptor is re-checked.
type visitedSet map[TypeDescriptor]struct{}

// Build produces the ToolSpecification for a callable. Parameters marked
// Injected (conversation/session identifiers supplied by the runtime) are
// excluded entirely; every other parameter is required unless marked Optional.
// An explicit Alias overrides the callable's own name; description lines are
// joined with newlines, and an empty description stays empty.
//
// Build has no failure path: cyclic or otherwise awkward type graphs degrade
// to truncated or generic-object fragments rather than errors, so a malformed
// domain model never blocks a callable from being exposed.
func Build(c Callable, opts ...BuildOption) *ToolSpecification {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}
	name := c.Name
	if c.Alias != "" {
		name = c.Alias
	}
	spec := &ToolSpecification{
		name:        name,
		description: strings.Join(c.Description, "\n"),
		params:      make(map[string]map[string]any, len(c.Params)),
		strict:      o.strict,
	}
	for _, p := range c.Params {
		if p.Injected {
			continue
		}
		if _, seen := spec.params[p.Name]; seen {
			// Duplicate parameter name: the first declaration wins, so the
			// parameter map, order, and required set never carry duplicates.
			continue
		}
		spec.order = append(spec.order, p.Name)
		spec.params[p.Name] = resolveFragment(p.Type, p.Description, make(visitedSet))
		if !p.Optional {
			spec.required = append(spec.required, p.Name)
		}
	}
	return spec
}

// resolveFragment computes the schema fragment for one parameter or field.
// Simple shapes come from the classifier; collections emit an array schema
// with a generic-object fallback when the element type is unknown; everything
// else is treated as a structured object and expanded field by field.
func resolveFragment(td TypeDescriptor, description string, visited visitedSet) map[string]any {
	if td == nil {
		return Merge(typeProp("object"), descriptionProp(description))
	}
	if frag, ok := classifySimple(td, description, visited); ok {
		return frag
	}
	if list, ok := td.(ListDescriptor); ok {
		items := Merge(typeProp("object"))
		if elem, ok := list.Element(); ok {
			items = resolveFragment(elem, "", visited)
		}
		return Merge(typeProp("array"), itemsProp(items), descriptionProp(description))
	}
	return Merge(typeProp("object"), propertiesProp(expandFields(td, visited)), descriptionProp(description))
}

// expandFields maps a structured descriptor's fields to their fragments.
// A descriptor already on the current expansion path returns nil, so the
// recursive reference renders as an object without a properties key instead
// of recursing forever. The entry is removed again when this branch returns:
// only ancestors of the field being resolved are guarded, never cousins. The
// set travels through array and list elements too, so cycles via collections
// ("[]Node inside Node") terminate the same way.
func expandFields(td TypeDescriptor, visited visitedSet) map[string]any {
	if _, seen := visited[td]; seen {
		return nil
	}
	visited[td] = struct{}{}
	defer delete(visited, td)
	obj, ok := td.(ObjectDescriptor)
	if !ok {
		// Not structured and not simple: nothing to expand.
		return map[string]any{}
	}
	fields := obj.Fields()
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		if f.Meta {
			continue
		}
		out[f.Name] = resolveFragment(f.Type, f.Description, visited)
	}
	return out
}
