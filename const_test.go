package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstValidator(t *testing.T) {
	schema, err := Compile([]byte(`{"const": 42}`))
	require.NoError(t, err)

	assert.True(t, schema.IsValid(42))
	assert.True(t, schema.IsValid(42.0), "integer const matches equal float instance")
	assert.False(t, schema.IsValid(43))
}

func TestConstNull(t *testing.T) {
	schema, err := Compile([]byte(`{"const": null}`))
	require.NoError(t, err)

	assert.True(t, schema.IsValid(nil))
	assert.False(t, schema.IsValid(0))
}

func TestConstObject(t *testing.T) {
	schema, err := Compile([]byte(`{"const": {"a": 1, "b": 2}}`))
	require.NoError(t, err)

	assert.True(t, schema.IsValid(map[string]any{"b": 2, "a": 1}), "object const ignores key order")
	assert.False(t, schema.IsValid(map[string]any{"a": 1}))
}
