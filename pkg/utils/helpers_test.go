package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{nil, ""},
		{"Kenya", "Kenya"},
		{2, "2"},
		{int64(1990), "1990"},
		{51234.5, "51234.5"},
		{101110.0, "101110"},
		// Large counts must not switch to scientific notation.
		{1234567.89, "1234567.89"},
		{true, "true"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatValue(tt.in))
	}
}

func TestNumeric(t *testing.T) {
	assert.Equal(t, 2.0, Numeric(2))
	assert.Equal(t, 2.5, Numeric(2.5))
	assert.Equal(t, 3.0, Numeric(int64(3)))
	assert.Equal(t, 0.0, Numeric("not a number"))
	assert.Equal(t, 0.0, Numeric(nil))
}
