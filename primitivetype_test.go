package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesTypeInteger(t *testing.T) {
	tests := []struct {
		name     string
		instance Value
		draft    Draft
		want     bool
	}{
		{"integer tag always matches under draft4", Integer(1), Draft4, true},
		{"integer tag always matches under draft7", Integer(1), Draft7, true},
		{"zero-fraction float rejected under draft4", Float(2.0), Draft4, false},
		{"zero-fraction float accepted under draft7", Float(2.0), Draft7, true},
		{"fractional float rejected under draft7", Float(2.5), Draft7, false},
		{"NaN rejected under draft7", Float(nan()), Draft7, false},
		{"Inf rejected under draft7", Float(inf()), Draft7, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, matchesType(tc.instance, TypeInteger, tc.draft))
		})
	}
}

func TestMatchesTypeNumberAcceptsIntegerAndFloat(t *testing.T) {
	assert.True(t, matchesType(Integer(1), TypeNumber, Draft7))
	assert.True(t, matchesType(Float(1.5), TypeNumber, Draft7))
	assert.False(t, matchesType(String("1"), TypeNumber, Draft7))
}

func nan() float64 { var z float64; return z / z }
func inf() float64 { var z float64; return 1 / z }
