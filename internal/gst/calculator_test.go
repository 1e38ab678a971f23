package gst

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate_GovernmentHomeState_Exempt(t *testing.T) {
	calc := NewCalculator(DefaultPolicy())

	res := calc.Calculate("29AAAGO1111W1ZB", 1000)

	assert.True(t, res.IsGovernment)
	assert.True(t, res.IsHomeState)
	assert.False(t, res.GSTApplicable)
	assert.Zero(t, res.GSTRate)
	assert.Zero(t, res.CGST)
	assert.Zero(t, res.SGST)
	assert.Zero(t, res.IGST)
	assert.Zero(t, res.GSTAmount)
	assert.Equal(t, 1000.0, res.FinalAmount)
}

func TestCalculate_HomeState_SplitsCGSTAndSGST(t *testing.T) {
	calc := NewCalculator(DefaultPolicy())

	res := calc.Calculate("29ABCDE1234F1Z5", 1000)

	assert.False(t, res.IsGovernment)
	assert.True(t, res.IsHomeState)
	assert.True(t, res.GSTApplicable)
	assert.Equal(t, 18.0, res.GSTRate)
	assert.InDelta(t, 90.0, res.CGST, 1e-9)
	assert.InDelta(t, 90.0, res.SGST, 1e-9)
	assert.Zero(t, res.IGST)
	assert.InDelta(t, 180.0, res.GSTAmount, 1e-9)
	assert.InDelta(t, 1180.0, res.FinalAmount, 1e-9)
}

func TestCalculate_OtherState_IGST(t *testing.T) {
	calc := NewCalculator(DefaultPolicy())

	res := calc.Calculate("19ABCDE1234F1Z5", 1000)

	assert.False(t, res.IsHomeState)
	assert.True(t, res.GSTApplicable)
	assert.Zero(t, res.CGST)
	assert.Zero(t, res.SGST)
	assert.InDelta(t, 180.0, res.IGST, 1e-9)
	assert.InDelta(t, 1180.0, res.FinalAmount, 1e-9)
}

func TestCalculate_GovernmentOtherState_StillTaxed(t *testing.T) {
	calc := NewCalculator(DefaultPolicy())

	res := calc.Calculate("19AAAGO1111W1ZB", 1000)

	assert.True(t, res.IsGovernment)
	assert.False(t, res.IsHomeState)
	assert.True(t, res.GSTApplicable)
	assert.InDelta(t, 180.0, res.IGST, 1e-9)
}

func TestCalculate_EmptyGSTIN_TreatedAsInterState(t *testing.T) {
	calc := NewCalculator(DefaultPolicy())

	res := calc.Calculate("", 500)

	assert.False(t, res.IsGovernment)
	assert.False(t, res.IsHomeState)
	assert.True(t, res.GSTApplicable)
	assert.InDelta(t, 90.0, res.IGST, 1e-9)
}

func TestCalculate_InvalidTaxableValue_ZeroResult(t *testing.T) {
	calc := NewCalculator(DefaultPolicy())

	for _, v := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		res := calc.Calculate("29ABCDE1234F1Z5", v)
		assert.Equal(t, Result{}, res)
	}
}

// The sum of the parts always reconstructs the final amount, whichever
// branch was taken.
func TestCalculate_AdditiveConsistency(t *testing.T) {
	calc := NewCalculator(DefaultPolicy())

	cases := []struct {
		gstin   string
		taxable float64
	}{
		{"29AAAGO1111W1ZB", 1234.56},
		{"29ABCDE1234F1Z5", 1234.56},
		{"19ABCDE1234F1Z5", 1234.56},
		{"", 0.01},
		{"29ABCDE1234F1Z5", 0},
	}
	for _, tc := range cases {
		res := calc.Calculate(tc.gstin, tc.taxable)
		assert.InDelta(t, res.CGST+res.SGST+res.IGST, res.GSTAmount, 1e-9)
		assert.InDelta(t, res.TaxableValue+res.GSTAmount, res.FinalAmount, 1e-9)
	}
}

// The same inputs always produce the same breakdown.
func TestCalculate_Idempotent(t *testing.T) {
	calc := NewCalculator(DefaultPolicy())

	first := calc.Calculate("29ABCDE1234F1Z5", 999.99)
	second := calc.Calculate("29ABCDE1234F1Z5", 999.99)

	assert.Equal(t, first, second)
}

func TestCalculate_PolicyConfigurable(t *testing.T) {
	// A Maharashtra seller flips the intra/inter decision for the same buyer.
	policy := DefaultPolicy()
	policy.HomeStateCode = 27
	policy.StandardRatePct = 12
	calc := NewCalculator(policy)

	res := calc.Calculate("29ABCDE1234F1Z5", 1000)
	assert.False(t, res.IsHomeState)
	assert.InDelta(t, 120.0, res.IGST, 1e-9)

	res = calc.Calculate("27ABCDE1234F1Z5", 1000)
	assert.True(t, res.IsHomeState)
	assert.InDelta(t, 60.0, res.CGST, 1e-9)
	assert.InDelta(t, 60.0, res.SGST, 1e-9)
}

func TestCalculate_ExemptionCanBeDisabled(t *testing.T) {
	policy := DefaultPolicy()
	policy.ExemptGovtIntraState = false
	calc := NewCalculator(policy)

	res := calc.Calculate("29AAAGO1111W1ZB", 1000)

	assert.True(t, res.IsGovernment)
	assert.True(t, res.GSTApplicable)
	assert.InDelta(t, 90.0, res.CGST, 1e-9)
}
