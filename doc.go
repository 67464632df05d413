// Package toolspec converts a description of a callable's parameters into a
// declarative JSON-Schema-like document, the shape LLM providers expect when
// a tool (function) is exposed to a model.
//
// # Overview
//
// The package is split into two cooperating passes. The type classifier maps
// a single TypeDescriptor to one of six schema shapes (string, boolean,
// integer, number, array, object). The schema builder walks a callable's
// parameter list, asks the classifier for each shape, recurses into
// structured types, merges per-parameter descriptions, and guards against
// cyclic type graphs with a path-scoped visited set. The result is an
// immutable ToolSpecification.
//
// Descriptors are decoupled from reflection: build them by hand (String,
// EnumOf, ObjectOf, ...) or derive them from Go types with DescribeType and
// CallableFor. Schema generation never fails — cycles truncate to empty
// objects and unknown element types fall back to a generic object schema —
// because a degenerate type model must not block a callable from being
// exposed.
//
// # Key concepts
//
//   - TypeDescriptor: "what shape of type is this", independent of any
//     introspection mechanism, so the core is testable with fake descriptors.
//   - ToolSpecification: name + description + parameter schemas + required
//     set; immutable once built.
//   - Registry: holds specifications and exports transport-ready definitions,
//     with an optional decorator chain (e.g. Strict for structured outputs).
//
// # Example
//
//	type Args struct {
//	    City string `json:"city" description:"the city name"`
//	    Days *int   `json:"days,omitempty"`
//	}
//	c, err := toolspec.CallableFor[Args]("weather", "Get the weather forecast")
//	if err != nil { ... }
//	spec := toolspec.Build(c)
//	reg := toolspec.NewRegistry()
//	reg.Register(spec)
//	defs := reg.Definitions() // hand these to the LLM provider
package toolspec
