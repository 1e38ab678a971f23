package gst

import (
	"strconv"
	"strings"
)

// GSTIN structure: 2-digit state code, 10-char PAN, entity digit, 'Z', checksum.
const (
	gstinLength     = 15
	panLength       = 10
	panStartOffset  = 2
	panMarkerOffset = 3
)

// ExtractStateCode parses the leading two characters of a GSTIN as a state
// code. Returns false for strings shorter than two characters or with a
// non-numeric prefix.
func ExtractStateCode(gstin string) (int, bool) {
	if len(gstin) < 2 {
		return 0, false
	}
	code, err := strconv.Atoi(gstin[:2])
	if err != nil {
		return 0, false
	}
	return code, true
}

// ExtractPAN returns the PAN segment embedded at positions 2-11 of a GSTIN,
// upper-cased. Returns false when the GSTIN is too short to hold one.
func ExtractPAN(gstin string) (string, bool) {
	if len(gstin) < panStartOffset+panLength {
		return "", false
	}
	return strings.ToUpper(gstin[panStartOffset : panStartOffset+panLength]), true
}

// SameState reports whether two GSTINs share the same 2-digit state prefix.
// Either side failing to parse counts as a different state.
func SameState(a, b string) bool {
	sa, okA := ExtractStateCode(a)
	sb, okB := ExtractStateCode(b)
	return okA && okB && sa == sb
}
