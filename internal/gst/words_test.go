package gst

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "Zero"},
		{"single unit", 1, "One Only"},
		{"teens", 19, "Nineteen Only"},
		{"tens with units", 42, "Forty Two Only"},
		{"hundred", 100, "One Hundred Only"},
		{"thousand scale", 1180, "One Thousand One Hundred Eighty Only"},
		{"lakh scale", 123456, "One Lakh Twenty Three Thousand Four Hundred Fifty Six Only"},
		{"crore scale", 10000000, "One Crore Only"},
		{"nested crores", 1e12, "One Lakh Crore Only"},
		{"paise only", 0.5, "Zero and Fifty Paise"},
		{"rupees and paise", 1180.75, "One Thousand One Hundred Eighty and Seventy Five Paise"},
		{"paise rounding", 99.999, "One Hundred Only"},
		{"negative", -42, "Minus Forty Two Only"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AmountInWords(tc.amount))
		})
	}
}

func TestAmountInWords_Ceiling(t *testing.T) {
	assert.Equal(t, AmountTooLarge, AmountInWords(1e13))
	assert.Equal(t, AmountTooLarge, AmountInWords(math.NaN()))
	assert.Equal(t, AmountTooLarge, AmountInWords(math.Inf(1)))
	assert.NotEqual(t, AmountTooLarge, AmountInWords(1e13-1))
}
