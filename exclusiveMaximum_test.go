package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExclusiveMaximumValidator(t *testing.T) {
	schema, err := Compile([]byte(`{"exclusiveMaximum": 3}`))
	require.NoError(t, err)

	assert.False(t, schema.IsValid(3), "equal to the limit is rejected")
	assert.True(t, schema.IsValid(2.999))
	assert.False(t, schema.IsValid(3.001))
}
