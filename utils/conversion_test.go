package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"199", 199, true},
		{"50.5", 50.5, true},
		{"₹1,299", 1299, true},
		{"Rs. 80", 0.80, true}, // strips to ".80"
		{"free", 0, false},
		{"", 0, false},
		{"1.2.3", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParsePrice(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.InDelta(t, tc.want, got, 1e-9, tc.in)
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "199", FormatPrice(199))
	assert.Equal(t, "50.5", FormatPrice(50.5))
}

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "₹0.00", FormatINR(0))
	assert.Equal(t, "₹249.50", FormatINR(249.5))
	assert.Equal(t, "₹1,299.00", FormatINR(1299))
	assert.Equal(t, "₹12,34,567.80", FormatINR(1234567.8))
}
