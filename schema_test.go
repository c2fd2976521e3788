package toolcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_JSONSchemaUsesOriginalNames(t *testing.T) {
	m, err := CompileModel(mustParse(t, `{
		"title": "Q", "description": "a query", "type": "object",
		"properties": {
			"type": {"type": "string", "description": "kind"},
			"ids": {"type": "array", "items": {"anyOf": [{"type": "string"}, {"type": "integer"}]}},
			"meta": {"type": "object"}
		},
		"required": ["type"]
	}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"type":        "object",
		"title":       "Q",
		"description": "a query",
		"required":    []any{"type"},
		"properties": map[string]any{
			"type": map[string]any{"type": "string", "description": "kind"},
			"ids": map[string]any{
				"type":  "array",
				"items": map[string]any{"anyOf": []any{map[string]any{"type": "string"}, map[string]any{"type": "integer"}}},
			},
			"meta": map[string]any{"type": "object"},
		},
	}, m.JSONSchema())
}

func TestApplyStrictMode(t *testing.T) {
	m := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"a": map[string]any{"type": "string"},
			"b": map[string]any{
				"type":       "object",
				"properties": map[string]any{"c": map[string]any{"type": "integer"}},
			},
			"free": map[string]any{"type": "object"},
		},
	}
	applyStrictMode(m)
	assert.Equal(t, false, m["additionalProperties"])
	props := m["properties"].(map[string]any)
	b := props["b"].(map[string]any)
	assert.Equal(t, false, b["additionalProperties"])
	free := props["free"].(map[string]any)
	_, set := free["additionalProperties"]
	assert.False(t, set, "free-form objects stay open")
}

func TestCompileRawSchema_Invalid(t *testing.T) {
	_, err := compileRawSchema(map[string]any{"type": 123})
	require.Error(t, err)
}
