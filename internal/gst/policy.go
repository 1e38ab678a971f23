package gst

// Policy holds the jurisdiction and rate constants the calculator decides
// with. The portal historically hardcoded these (Karnataka as home state,
// 18% standard rate, 'G' as the Income-Tax government category code); lifting
// them here keeps the decision logic untouched when a rate or home state
// changes.
type Policy struct {
	// HomeStateCode is the seller's registration state (GSTIN prefix).
	HomeStateCode int
	// StandardRatePct is the full GST rate applied to taxable supplies.
	StandardRatePct float64
	// GovernmentMarker is the PAN 4th-character category code identifying
	// government entities.
	GovernmentMarker byte
	// ExemptGovtIntraState exempts government buyers registered in the home
	// state from GST entirely.
	ExemptGovtIntraState bool
}

// DefaultPolicy returns the portal's production policy: Karnataka seller,
// 18% standard rate, intra-state government supplies exempt.
func DefaultPolicy() Policy {
	return Policy{
		HomeStateCode:        29,
		StandardRatePct:      18,
		GovernmentMarker:     'G',
		ExemptGovtIntraState: true,
	}
}

// IsGovernmentPAN reports whether a PAN carries the government category code
// at its 4th character. Anything malformed classifies as non-government,
// which is the taxed branch.
func (p Policy) IsGovernmentPAN(pan string) bool {
	if len(pan) < panMarkerOffset+1 {
		return false
	}
	return pan[panMarkerOffset] == p.GovernmentMarker
}

// IsGovernmentGSTIN classifies a GSTIN by its embedded PAN segment.
func (p Policy) IsGovernmentGSTIN(gstin string) bool {
	pan, ok := ExtractPAN(gstin)
	if !ok {
		return false
	}
	return p.IsGovernmentPAN(pan)
}

// IsHomeState reports whether a GSTIN is registered in the seller's home
// state. Unparseable state prefixes count as out-of-state.
func (p Policy) IsHomeState(gstin string) bool {
	code, ok := ExtractStateCode(gstin)
	return ok && code == p.HomeStateCode
}
