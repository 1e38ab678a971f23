package gst

import (
	"math"
	"strings"
)

// AmountTooLarge is returned for amounts beyond what the Indian scale spelling
// supports, so documents show a flag instead of garbage.
const AmountTooLarge = "Amount Too Large"

// wordsCeiling caps spellable amounts at under ten lakh crore rupees.
const wordsCeiling = 1e13

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// AmountInWords spells an amount in Indian English using the Indian numbering
// scale (Crore, Lakh, Thousand, Hundred). Whole amounts terminate with
// "Only"; fractional amounts append "and <paise> Paise". Zero spells as
// "Zero". Amounts at or above the ceiling return the AmountTooLarge sentinel.
func AmountInWords(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return AmountTooLarge
	}
	negative := amount < 0
	if negative {
		amount = -amount
	}
	if amount >= wordsCeiling {
		return AmountTooLarge
	}

	totalPaise := int64(math.Round(amount * 100))
	rupees := totalPaise / 100
	paise := totalPaise % 100

	if rupees == 0 && paise == 0 {
		return "Zero"
	}

	var b strings.Builder
	if negative {
		b.WriteString("Minus ")
	}
	if rupees == 0 {
		b.WriteString("Zero")
	} else {
		b.WriteString(indianWords(rupees))
	}
	if paise == 0 {
		b.WriteString(" Only")
	} else {
		b.WriteString(" and ")
		b.WriteString(belowHundred(paise))
		b.WriteString(" Paise")
	}
	return b.String()
}

// indianWords converts a positive integer to words on the crore/lakh scale.
func indianWords(n int64) string {
	var parts []string

	if n >= 1_00_00_000 {
		parts = append(parts, indianWords(n/1_00_00_000)+" Crore")
		n %= 1_00_00_000
	}
	if n >= 1_00_000 {
		parts = append(parts, belowHundred(n/1_00_000)+" Lakh")
		n %= 1_00_000
	}
	if n >= 1_000 {
		parts = append(parts, belowHundred(n/1_000)+" Thousand")
		n %= 1_000
	}
	if n >= 100 {
		parts = append(parts, onesWords[n/100]+" Hundred")
		n %= 100
	}
	if n > 0 {
		parts = append(parts, belowHundred(n))
	}

	return strings.Join(parts, " ")
}

func belowHundred(n int64) string {
	if n < 20 {
		return onesWords[n]
	}
	result := tensWords[n/10]
	if n%10 != 0 {
		result += " " + onesWords[n%10]
	}
	return result
}
