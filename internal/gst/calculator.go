package gst

import "math"

// Result is the breakdown produced for a single taxable value. It is a plain
// value created fresh on every call; callers render or persist it and throw
// it away.
type Result struct {
	TaxableValue  float64 `json:"taxable_value"`
	GSTApplicable bool    `json:"gst_applicable"`
	IsGovernment  bool    `json:"is_government"`
	IsHomeState   bool    `json:"is_home_state"`
	GSTRate       float64 `json:"gst_rate"`
	CGST          float64 `json:"cgst"`
	SGST          float64 `json:"sgst"`
	IGST          float64 `json:"igst"`
	GSTAmount     float64 `json:"gst_amount"`
	FinalAmount   float64 `json:"final_amount"`
}

// Calculator applies a Policy to bill amounts.
type Calculator struct {
	policy Policy
}

// NewCalculator creates a Calculator for the given policy.
func NewCalculator(policy Policy) *Calculator {
	return &Calculator{policy: policy}
}

// Policy returns the policy the calculator was built with.
func (c *Calculator) Policy() Policy {
	return c.policy
}

// Calculate selects the rate regime for a buyer and produces the tax
// breakdown. Precedence, first match wins:
//
//  1. government buyer in the home state: exempt, final amount is the
//     taxable value unchanged
//  2. buyer in the home state: intra-state, standard rate split into
//     equal CGST and SGST halves
//  3. everything else (other state, empty or unparseable GSTIN):
//     inter-state, IGST at the full standard rate
//
// Sub-amounts are each computed directly from the taxable value; rounding
// happens only at the formatting boundary. A negative or non-finite taxable
// value yields a zero Result with GSTApplicable false rather than an error,
// so a bill with incomplete inputs still renders.
func (c *Calculator) Calculate(buyerGSTIN string, taxableValue float64) Result {
	if math.IsNaN(taxableValue) || math.IsInf(taxableValue, 0) || taxableValue < 0 {
		return Result{}
	}

	res := Result{
		TaxableValue: taxableValue,
		IsGovernment: c.policy.IsGovernmentGSTIN(buyerGSTIN),
		IsHomeState:  c.policy.IsHomeState(buyerGSTIN),
	}

	if res.IsGovernment && res.IsHomeState && c.policy.ExemptGovtIntraState {
		res.FinalAmount = taxableValue
		return res
	}

	res.GSTApplicable = true
	res.GSTRate = c.policy.StandardRatePct
	if res.IsHomeState {
		half := c.policy.StandardRatePct / 2
		res.CGST = taxableValue * half / 100
		res.SGST = taxableValue * half / 100
	} else {
		res.IGST = taxableValue * c.policy.StandardRatePct / 100
	}
	res.GSTAmount = res.CGST + res.SGST + res.IGST
	res.FinalAmount = taxableValue + res.GSTAmount
	return res
}
