package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimumValidator(t *testing.T) {
	schema, err := Compile([]byte(`{"minimum": 3}`))
	require.NoError(t, err)

	assert.True(t, schema.IsValid(3), "inclusive bound")
	assert.True(t, schema.IsValid(3.5))
	assert.False(t, schema.IsValid(2.999))
}

func TestMinimumIgnoresNonNumericInstances(t *testing.T) {
	schema, err := Compile([]byte(`{"minimum": 3}`))
	require.NoError(t, err)
	assert.True(t, schema.IsValid("not a number"))
}

func TestMinimumRejectsNonNumericSchemaValue(t *testing.T) {
	_, err := Compile([]byte(`{"minimum": "big"}`))
	require.Error(t, err)
}
