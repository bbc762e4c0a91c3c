package jsonschema

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaValidateJSONAndIsValidJSONAgree(t *testing.T) {
	schema, err := Compile([]byte(`{"type": "integer", "minimum": 0, "maximum": 100}`))
	require.NoError(t, err)

	assert.True(t, schema.IsValidJSON([]byte("50")))
	seq, err := schema.ValidateJSON([]byte("50"))
	require.NoError(t, err)
	_, hasErr := firstError(seq)
	assert.False(t, hasErr)

	assert.False(t, schema.IsValidJSON([]byte("-1")))
	seq, err = schema.ValidateJSON([]byte("-1"))
	require.NoError(t, err)
	errs := collectAll(seq)
	assert.Len(t, errs, 1)
	assert.Equal(t, "minimum", errs[0].Keyword)
}

func TestValidateStopsEarlyWithoutRunningRemainingValidators(t *testing.T) {
	schema, err := Compile([]byte(`{"type": "string", "minLength": 5, "maxLength": 1}`))
	require.NoError(t, err)

	seq, err := schema.Validate(42)
	require.NoError(t, err)

	var seen int
	for range seq {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func TestIsValidMatchesAbsenceOfValidationErrors(t *testing.T) {
	schema, err := Compile([]byte(`{"type": "string", "minLength": 2, "maxLength": 4}`))
	require.NoError(t, err)

	for _, instance := range []any{"ok", "a", "toolong", 3} {
		seq, err := schema.Validate(instance)
		require.NoError(t, err)
		_, hasErr := firstError(seq)
		assert.Equal(t, !hasErr, schema.IsValid(instance), "instance=%v", instance)
	}
}

func TestConcurrentIsValidMatchesSequential(t *testing.T) {
	schema, err := Compile([]byte(`{"type": "integer", "minimum": 0, "maximum": 1000}`))
	require.NoError(t, err)

	instances := make([]int, 200)
	for i := range instances {
		instances[i] = i - 50
	}

	var wg sync.WaitGroup
	results := make([]bool, len(instances))
	for i, n := range instances {
		wg.Add(1)
		go func(i, n int) {
			defer wg.Done()
			results[i] = schema.IsValid(n)
		}(i, n)
	}
	wg.Wait()

	for i, n := range instances {
		assert.Equal(t, schema.IsValid(n), results[i], "instance=%d", n)
	}
}

func collectAll(seq func(func(*EvaluationError) bool)) []*EvaluationError {
	var out []*EvaluationError
	for err := range seq {
		out = append(out, err)
	}
	return out
}
