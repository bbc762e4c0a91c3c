package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Value
		equal bool
	}{
		{"null equals null", Null(), Null(), true},
		{"integer equals equal float", Integer(1), Float(1.0), true},
		{"integer differs from float", Integer(1), Float(1.5), false},
		{"strings differ", String("a"), String("b"), false},
		{"bools differ", Bool(true), Bool(false), false},
		{"arrays equal positionally", Array([]Value{Integer(1), String("x")}), Array([]Value{Integer(1), String("x")}), true},
		{"arrays differ in order", Array([]Value{Integer(1), Integer(2)}), Array([]Value{Integer(2), Integer(1)}), false},
		{"null does not equal zero", Null(), Integer(0), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.equal, tc.a.Equal(tc.b))
		})
	}
}

func TestObjectEqualIgnoresKeyOrder(t *testing.T) {
	a := NewObject()
	a.Set("x", Integer(1))
	a.Set("y", Integer(2))

	b := NewObject()
	b.Set("y", Integer(2))
	b.Set("x", Integer(1))

	assert.True(t, FromObject(a).Equal(FromObject(b)))
}

func TestObjectPreservesInsertionOrder(t *testing.T) {
	o := NewObject()
	o.Set("b", Integer(1))
	o.Set("a", Integer(2))
	assert.Equal(t, []string{"b", "a"}, o.Keys())
}
