package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaximumValidator(t *testing.T) {
	schema, err := Compile([]byte(`{"maximum": 3}`))
	require.NoError(t, err)

	assert.True(t, schema.IsValid(3), "inclusive bound")
	assert.True(t, schema.IsValid(2.5))
	assert.False(t, schema.IsValid(3.001))
}

func TestMaximumIgnoresNonNumericInstances(t *testing.T) {
	schema, err := Compile([]byte(`{"maximum": 3}`))
	require.NoError(t, err)
	assert.True(t, schema.IsValid("not a number"))
}
