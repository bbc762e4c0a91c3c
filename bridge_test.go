package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSONPreservesIntegerFloatDistinction(t *testing.T) {
	v, err := FromJSON([]byte(`{"a": 1, "b": 1.5, "c": "s", "d": null, "e": [1, 2], "f": true}`))
	require.NoError(t, err)
	require.Equal(t, KindObject, v.Kind())

	a, _ := v.Object().Get("a")
	assert.Equal(t, KindInteger, a.Kind())

	b, _ := v.Object().Get("b")
	assert.Equal(t, KindFloat, b.Kind())

	c, _ := v.Object().Get("c")
	assert.Equal(t, KindString, c.Kind())

	d, _ := v.Object().Get("d")
	assert.True(t, d.IsNull())

	e, _ := v.Object().Get("e")
	assert.Equal(t, KindArray, e.Kind())
	assert.Len(t, e.Array(), 2)

	f, _ := v.Object().Get("f")
	assert.Equal(t, KindBool, f.Kind())
}

func TestFromYAMLMatchesFromJSON(t *testing.T) {
	jsonValue, err := FromJSON([]byte(`{"type": "integer", "minimum": 1}`))
	require.NoError(t, err)

	yamlValue, err := FromYAML([]byte("type: integer\nminimum: 1\n"))
	require.NoError(t, err)

	assert.True(t, jsonValue.Equal(yamlValue))
}

func TestFromAnyRejectsNonStringMapKeys(t *testing.T) {
	_, err := FromAny(map[int]any{1: "x"})
	require.Error(t, err)
	var valueErr *ValueError
	require.ErrorAs(t, err, &valueErr)
	assert.Contains(t, valueErr.Message, "strings")
}

func TestFromAnyNamesOffendingType(t *testing.T) {
	_, err := FromAny(make(chan int))
	require.Error(t, err)
	var valueErr *ValueError
	require.ErrorAs(t, err, &valueErr)
	assert.Equal(t, "chan int", valueErr.HostType)
}
