package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var (
	gstinPattern   = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	panPattern     = regexp.MustCompile(`^[A-Z]{5}\d{4}[A-Z]$`)
	tanPattern     = regexp.MustCompile(`^[A-Z]{4}\d{5}[A-Z]$`)
	ifscPattern    = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	micrPattern    = regexp.MustCompile(`^\d{9}$`)
	acctPattern    = regexp.MustCompile(`^\d{9,18}$`)
	hsnPattern     = regexp.MustCompile(`^\d{4,8}$`)
	mobilePattern  = regexp.MustCompile(`^[6-9]\d{9}$`)
	pinPattern     = regexp.MustCompile(`^\d{6}$`)
	emailPattern   = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	ddoCodePattern = regexp.MustCompile(`^[A-Za-z0-9]{1,11}$`)
)

// Maximum lengths for free-text fields.
const (
	maxNameLen        = 100
	maxAddressLen     = 250
	maxCityLen        = 50
	maxDescriptionLen = 200
	minPasswordLen    = 8
)

// ValidateGSTIN checks the 15-character GSTIN structure:
// state code, PAN, entity digit, literal 'Z', checksum character.
func ValidateGSTIN(value string) Result {
	if len(value) != 15 {
		return fail("GSTIN must be exactly 15 characters")
	}
	if !gstinPattern.MatchString(value) {
		return fail("GSTIN format is invalid (expected e.g. 29ABCDE1234F1Z5)")
	}
	return ok()
}

// ValidatePAN checks the 10-character PAN structure.
func ValidatePAN(value string) Result {
	if len(value) != 10 {
		return fail("PAN must be exactly 10 characters")
	}
	if !panPattern.MatchString(value) {
		return fail("PAN format is invalid (expected e.g. ABCDE1234F)")
	}
	return ok()
}

// ValidateTAN checks the 10-character TAN structure used on Form 16/16A.
func ValidateTAN(value string) Result {
	if len(value) != 10 {
		return fail("TAN must be exactly 10 characters")
	}
	if !tanPattern.MatchString(value) {
		return fail("TAN format is invalid (expected e.g. BLRG12345D)")
	}
	return ok()
}

// ValidateIFSC checks the 11-character IFSC bank branch code.
func ValidateIFSC(value string) Result {
	if len(value) != 11 {
		return fail("IFSC code must be exactly 11 characters")
	}
	if !ifscPattern.MatchString(value) {
		return fail("IFSC code format is invalid (expected e.g. SBIN0001234)")
	}
	return ok()
}

// ValidateMICR checks the 9-digit MICR code.
func ValidateMICR(value string) Result {
	if !micrPattern.MatchString(value) {
		return fail("MICR code must be exactly 9 digits")
	}
	return ok()
}

// ValidateAccountNumber checks a bank account number (9-18 digits).
func ValidateAccountNumber(value string) Result {
	if !acctPattern.MatchString(value) {
		return fail("account number must be 9 to 18 digits")
	}
	return ok()
}

// ValidateHSN checks a 4-8 digit HSN/SAC code.
func ValidateHSN(value string) Result {
	if !hsnPattern.MatchString(value) {
		return fail("HSN/SAC code must be 4 to 8 digits")
	}
	return ok()
}

// ValidateGSTRate checks a percentage in [0, 100].
func ValidateGSTRate(value string) Result {
	rate, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fail("GST rate must be a number")
	}
	if rate < 0 || rate > 100 {
		return fail("GST rate must be between 0 and 100")
	}
	return ok()
}

// ValidateEmail checks a standard email address shape.
func ValidateEmail(value string) Result {
	if !emailPattern.MatchString(value) {
		return fail("email address is invalid")
	}
	return ok()
}

// ValidateMobile checks a 10-digit Indian mobile number starting 6-9.
func ValidateMobile(value string) Result {
	if !mobilePattern.MatchString(value) {
		return fail("mobile number must be 10 digits starting with 6-9")
	}
	return ok()
}

// ValidatePIN checks a 6-digit postal PIN code.
func ValidatePIN(value string) Result {
	if !pinPattern.MatchString(value) {
		return fail("PIN code must be exactly 6 digits")
	}
	return ok()
}

// ValidateStateCode checks a numeric GST state code in [1, 99].
func ValidateStateCode(value string) Result {
	code, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fail("state code must be numeric")
	}
	if code < 1 || code > 99 {
		return fail("state code must be between 1 and 99")
	}
	return ok()
}

// ValidateDDOCode checks an alphanumeric DDO code of 1-11 characters.
func ValidateDDOCode(value string) Result {
	if !ddoCodePattern.MatchString(value) {
		return fail("DDO code must be 1 to 11 alphanumeric characters")
	}
	return ok()
}

// ValidateName checks a non-blank name within the length bound.
func ValidateName(value string) Result {
	return nonBlank(value, "name", maxNameLen)
}

// ValidateAddress checks a non-blank address within the length bound.
func ValidateAddress(value string) Result {
	return nonBlank(value, "address", maxAddressLen)
}

// ValidateCity checks a non-blank city within the length bound.
func ValidateCity(value string) Result {
	return nonBlank(value, "city", maxCityLen)
}

// ValidateDescription checks a non-blank description within the length bound.
func ValidateDescription(value string) Result {
	return nonBlank(value, "description", maxDescriptionLen)
}

func nonBlank(value, label string, maxLen int) Result {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fail(label + " must not be empty")
	}
	if len(trimmed) > maxLen {
		return fail(fmt.Sprintf("%s must not exceed %d characters", label, maxLen))
	}
	return ok()
}

// ValidateAmount checks a strictly positive numeric amount; line items with
// zero or negative amounts are rejected here rather than being dropped by
// the calculator.
func ValidateAmount(value string) Result {
	amount, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fail("amount must be a number")
	}
	return ValidateAmountValue(amount)
}

// ValidateAmountValue is the numeric form of ValidateAmount, used where the
// caller already holds a parsed amount.
func ValidateAmountValue(amount float64) Result {
	if amount <= 0 {
		return fail("amount must be greater than zero")
	}
	return ok()
}

// ValidatePassword checks minimum length and character-class mix: at least
// one lower-case letter, one upper-case letter, one digit, and one symbol.
func ValidatePassword(value string) Result {
	if len(value) < minPasswordLen {
		return fail(fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range value {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	if !hasLower || !hasUpper || !hasDigit || !hasSymbol {
		return fail("password must mix upper and lower case letters, digits, and symbols")
	}
	return ok()
}

// billDateFormats lists the date layouts accepted on bill entry screens.
var billDateFormats = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
}

// ValidateBillDate checks a parseable date not later than today.
func ValidateBillDate(value string) Result {
	parsed, err := parseBillDate(value)
	if err != nil {
		return fail("bill date is not a valid date")
	}
	// Parsed dates carry UTC midnight, so build today from the local
	// calendar date rather than truncating the absolute instant.
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if parsed.After(today) {
		return fail("bill date must not be in the future")
	}
	return ok()
}

// ParseBillDate parses a bill date in any of the accepted layouts.
func ParseBillDate(value string) (time.Time, error) {
	return parseBillDate(value)
}

func parseBillDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	for _, layout := range billDateFormats {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date: %s", value)
}
