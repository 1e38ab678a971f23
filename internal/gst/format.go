package gst

import (
	"fmt"
	"strings"
)

// FormatCurrency renders an amount in Indian Rupee notation with the Indian
// digit grouping: the rightmost three integer digits form one group, then
// pairs (e.g. ₹1,23,45,678.90). Always exactly two decimal places.
func FormatCurrency(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)

	result := "₹" + groupIndian(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// groupIndian inserts commas into a digit string: last three digits together,
// then groups of two from the right.
func groupIndian(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 2 {
		result = remaining[len(remaining)-2:] + "," + result
		remaining = remaining[:len(remaining)-2]
	}
	return remaining + "," + result
}
