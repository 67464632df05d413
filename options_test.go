package toolspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithStrict_SchemaShape(t *testing.T) {
	t.Parallel()
	address := ObjectOf("Address",
		Field{Name: "street", Type: String},
		Field{Name: "zip", Type: Int},
	)
	spec := Build(Callable{
		Name: "geocode",
		Params: []Parameter{
			{Name: "address", Type: address},
			{Name: "hint", Type: String, Optional: true},
		},
	}, WithStrict())
	schema := spec.Schema()
	assert.Equal(t, false, schema["additionalProperties"])
	// Strict mode requires every property, optional markers included.
	assert.Equal(t, []any{"address", "hint"}, schema["required"])
	nested := schema["properties"].(map[string]any)["address"].(map[string]any)
	assert.Equal(t, false, nested["additionalProperties"])
	assert.Equal(t, []any{"street", "zip"}, nested["required"])
}

func TestWithStrict_CompiledRejectsExtraKeys(t *testing.T) {
	t.Parallel()
	spec := Build(Callable{
		Name:   "t",
		Params: []Parameter{{Name: "x", Type: Int}},
	}, WithStrict())
	resolved, err := spec.Compile()
	require.NoError(t, err)
	assert.NoError(t, resolved.Validate(map[string]any{"x": 1.0}))
	assert.Error(t, resolved.Validate(map[string]any{"x": 1.0, "extra": "nope"}))
}

func TestBuild_DefaultNotStrict(t *testing.T) {
	t.Parallel()
	spec := Build(Callable{
		Name:   "t",
		Params: []Parameter{{Name: "x", Type: Int}},
	})
	assert.NotContains(t, spec.Schema(), "additionalProperties")
}
