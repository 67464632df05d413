package toolspec

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func param(t *testing.T, spec *ToolSpecification, name string) map[string]any {
	t.Helper()
	frag, ok := spec.Parameter(name)
	require.True(t, ok, "parameter %q must exist", name)
	return frag
}

func TestBuild_EndToEnd_Weather(t *testing.T) {
	t.Parallel()
	spec := Build(Callable{
		Name:        "weather",
		Description: []string{"Get the weather forecast"},
		Params: []Parameter{
			{Name: "city", Type: String, Description: "the city name"},
			{Name: "days", Type: Int, Optional: true},
		},
	})
	assert.Equal(t, []string{"city"}, spec.Required())
	assert.Equal(t, map[string]any{"type": "string", "description": "the city name"}, param(t, spec, "city"))
	assert.Equal(t, map[string]any{"type": "integer"}, param(t, spec, "days"))
}

func TestBuild_ArrayParameter(t *testing.T) {
	t.Parallel()
	spec := Build(Callable{
		Name:   "tagger",
		Params: []Parameter{{Name: "tags", Type: ListOf(String)}},
	})
	assert.Equal(t, map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}, param(t, spec, "tags"))
}

func TestBuild_StructParameter(t *testing.T) {
	t.Parallel()
	address := ObjectOf("Address",
		Field{Name: "street", Type: String},
		Field{Name: "zip", Type: Int},
	)
	spec := Build(Callable{
		Name:   "geocode",
		Params: []Parameter{{Name: "address", Type: address}},
	})
	assert.Equal(t, map[string]any{
		"type": "object",
		"properties": map[string]any{
			"street": map[string]any{"type": "string"},
			"zip":    map[string]any{"type": "integer"},
		},
	}, param(t, spec, "address"))
}

func TestBuild_RawCollectionFallsBackToObjectItems(t *testing.T) {
	t.Parallel()
	spec := Build(Callable{
		Name:   "t",
		Params: []Parameter{{Name: "bag", Type: RawList()}},
	})
	assert.Equal(t, map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "object"},
	}, param(t, spec, "bag"))
}

func TestBuild_InjectedParameterExcluded(t *testing.T) {
	t.Parallel()
	spec := Build(Callable{
		Name: "chat",
		Params: []Parameter{
			{Name: "session", Type: String, Injected: true},
			{Name: "message", Type: String},
		},
	})
	assert.Equal(t, []string{"message"}, spec.ParameterNames())
	assert.Equal(t, []string{"message"}, spec.Required())
	_, ok := spec.Parameter("session")
	assert.False(t, ok, "injected parameter must be entirely absent")
}

func TestBuild_OptionalAbsentFromRequired(t *testing.T) {
	t.Parallel()
	spec := Build(Callable{
		Name: "t",
		Params: []Parameter{
			{Name: "a", Type: String},
			{Name: "b", Type: String, Optional: true},
		},
	})
	assert.Equal(t, []string{"a", "b"}, spec.ParameterNames())
	assert.Equal(t, []string{"a"}, spec.Required())
}

func TestBuild_AliasOverridesName(t *testing.T) {
	t.Parallel()
	spec := Build(Callable{Name: "getWeather", Alias: "weather"})
	assert.Equal(t, "weather", spec.Name())
	spec = Build(Callable{Name: "getWeather"})
	assert.Equal(t, "getWeather", spec.Name())
}

func TestBuild_DirectCycleTruncates(t *testing.T) {
	t.Parallel()
	node := ObjectOf("Node", Field{Name: "name", Type: String})
	node.Add(Field{Name: "next", Type: node})
	spec := Build(Callable{
		Name:   "walk",
		Params: []Parameter{{Name: "root", Type: node}},
	})
	frag := param(t, spec, "root")
	props := frag["properties"].(map[string]any)
	// The recursive reference renders as an object without properties.
	assert.Equal(t, map[string]any{"type": "object"}, props["next"])
	assert.Equal(t, map[string]any{"type": "string"}, props["name"])
}

func TestBuild_IndirectCycleTruncates(t *testing.T) {
	t.Parallel()
	a := ObjectOf("A")
	b := ObjectOf("B", Field{Name: "a", Type: a})
	a.Add(Field{Name: "b", Type: b})
	spec := Build(Callable{
		Name:   "t",
		Params: []Parameter{{Name: "a", Type: a}},
	})
	frag := param(t, spec, "a")
	bFrag := frag["properties"].(map[string]any)["b"].(map[string]any)
	aAgain := bFrag["properties"].(map[string]any)["a"].(map[string]any)
	_, hasProps := aAgain["properties"]
	assert.False(t, hasProps, "cycle back to the ancestor must have absent properties")
}

func TestBuild_CycleThroughCollectionTerminates(t *testing.T) {
	t.Parallel()
	node := ObjectOf("Node", Field{Name: "name", Type: String})
	node.Add(Field{Name: "children", Type: ListOf(node)})
	spec := Build(Callable{
		Name:   "tree",
		Params: []Parameter{{Name: "root", Type: node}},
	})
	frag := param(t, spec, "root")
	children := frag["properties"].(map[string]any)["children"].(map[string]any)
	assert.Equal(t, "array", children["type"])
	assert.Equal(t, map[string]any{"type": "object"}, children["items"])
}

func TestBuild_SiblingsOfSameTypeExpandIndependently(t *testing.T) {
	t.Parallel()
	inner := ObjectOf("Inner", Field{Name: "x", Type: Int})
	outer := ObjectOf("Outer",
		Field{Name: "first", Type: inner},
		Field{Name: "second", Type: inner},
	)
	spec := Build(Callable{
		Name:   "t",
		Params: []Parameter{{Name: "outer", Type: outer}},
	})
	props := param(t, spec, "outer")["properties"].(map[string]any)
	want := map[string]any{
		"type":       "object",
		"properties": map[string]any{"x": map[string]any{"type": "integer"}},
	}
	// Only ancestors on the active path are guarded, never cousins.
	assert.Equal(t, want, props["first"])
	assert.Equal(t, want, props["second"])
}

func TestBuild_SiblingParametersOfSameType(t *testing.T) {
	t.Parallel()
	address := ObjectOf("Address", Field{Name: "street", Type: String})
	spec := Build(Callable{
		Name: "t",
		Params: []Parameter{
			{Name: "from", Type: address},
			{Name: "to", Type: address},
		},
	})
	from := param(t, spec, "from")
	to := param(t, spec, "to")
	assert.Equal(t, from, to)
	_, hasProps := from["properties"]
	assert.True(t, hasProps, "each parameter gets a fresh visited set")
}

func TestBuild_MetaFieldsSkipped(t *testing.T) {
	t.Parallel()
	obj := ObjectOf("T",
		Field{Name: "data", Type: String},
		Field{Name: "typeinfo", Type: String, Meta: true},
	)
	spec := Build(Callable{Name: "t", Params: []Parameter{{Name: "v", Type: obj}}})
	props := param(t, spec, "v")["properties"].(map[string]any)
	assert.Contains(t, props, "data")
	assert.NotContains(t, props, "typeinfo")
}

func TestBuild_FieldDescriptionsMerged(t *testing.T) {
	t.Parallel()
	obj := ObjectOf("T", Field{Name: "street", Type: String, Description: "street name"})
	spec := Build(Callable{Name: "t", Params: []Parameter{{Name: "v", Type: obj}}})
	props := param(t, spec, "v")["properties"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "string", "description": "street name"}, props["street"])
}

func TestBuild_DuplicateParameterNamesCollapse(t *testing.T) {
	t.Parallel()
	spec := Build(Callable{
		Name: "t",
		Params: []Parameter{
			{Name: "a", Type: String, Description: "first"},
			{Name: "a", Type: Int, Optional: true},
			{Name: "b", Type: Bool},
		},
	})
	assert.Equal(t, []string{"a", "b"}, spec.ParameterNames())
	assert.Equal(t, []string{"a", "b"}, spec.Required())
	assert.Equal(t, map[string]any{"type": "string", "description": "first"}, param(t, spec, "a"))
	required := spec.Schema()["required"].([]any)
	assert.Equal(t, []any{"a", "b"}, required, "exported required array must not carry duplicates")
}

func TestBuild_NilDescriptorBecomesGenericObject(t *testing.T) {
	t.Parallel()
	spec := Build(Callable{Name: "t", Params: []Parameter{{Name: "v"}}})
	assert.Equal(t, map[string]any{"type": "object"}, param(t, spec, "v"))
}

func TestBuild_Idempotent(t *testing.T) {
	t.Parallel()
	node := ObjectOf("Node", Field{Name: "name", Type: String})
	node.Add(Field{Name: "next", Type: node})
	c := Callable{
		Name:        "walk",
		Description: []string{"line one", "line two"},
		Params: []Parameter{
			{Name: "root", Type: node, Description: "tree root"},
			{Name: "depth", Type: Int, Optional: true},
		},
	}
	first := Build(c)
	second := Build(c)
	assert.Equal(t, first.Schema(), second.Schema())
	assert.Equal(t, first.Required(), second.Required())
	assert.Equal(t, first.ParameterNames(), second.ParameterNames())
}

func TestBuild_ConcurrentBuildsAgree(t *testing.T) {
	t.Parallel()
	address := ObjectOf("Address",
		Field{Name: "street", Type: String},
		Field{Name: "zip", Type: Int},
	)
	c := Callable{
		Name:   "geocode",
		Params: []Parameter{{Name: "address", Type: address}},
	}
	want := Build(c).Schema()
	var wg sync.WaitGroup
	results := make([]map[string]any, 8)
	for i := range results {
		wg.Go(func() {
			results[i] = Build(c).Schema()
		})
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
