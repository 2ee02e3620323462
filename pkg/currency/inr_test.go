package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "zero", input: 0, expected: "₹ 0"},
		{name: "under one thousand", input: 500, expected: "₹ 500"},
		{name: "one thousand", input: 1000, expected: "₹ 1,000"},
		{name: "one lakh", input: 100000, expected: "₹ 1,00,000"},
		{name: "ten lakh", input: 1000000, expected: "₹ 10,00,000"},
		{name: "one crore", input: 10000000, expected: "₹ 1,00,00,000"},
		{name: "mixed digits with decimals", input: 1234567.89, expected: "₹ 12,34,567.89"},
		{name: "two decimal places", input: 2500.5, expected: "₹ 2,500.5"},
		{name: "negative amount", input: -1234567, expected: "₹ -12,34,567"},
		{name: "small negative", input: -42, expected: "₹ -42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatINR(tt.input))
		})
	}
}
