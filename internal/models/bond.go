package models

import "fjacquet/bond-analyzer/internal/analyzererror"

// DefaultFaceValue is the par value used for every bond in the built-in
// catalog and as the fallback when a catalog row omits face value.
const DefaultFaceValue = 1000.0

// CallTerms holds the call schedule of a callable bond. Both fields are
// meaningful together; a Bond carries either a complete CallTerms or none.
type CallTerms struct {
	YearsToCall float64 `json:"years_to_call"`
	CallPrice   float64 `json:"call_price"`
}

// Bond is a single fixed-income security as supplied by the catalog.
// Rates are fractions (0.04 = 4%), prices are absolute amounts.
type Bond struct {
	Name             string     `json:"name"`
	CouponRate       float64    `json:"coupon_rate"`
	MarketPrice      float64    `json:"market_price"`
	FaceValue        float64    `json:"face_value"`
	YearsToMaturity  float64    `json:"years_to_maturity"`
	Callable         bool       `json:"callable"`
	Call             *CallTerms `json:"call,omitempty"`
	FederalTaxExempt bool       `json:"federal_tax_exempt"`
	StateTaxExempt   bool       `json:"state_tax_exempt"`
}

// Validate checks the catalog invariants. A non-positive market price is
// deliberately not rejected here: the engine treats it as "quote
// unavailable" and returns sentinel zero yields.
func (b Bond) Validate() error {
	if b.Name == "" {
		return &analyzererror.ValidationError{Bond: "(unnamed)", Reason: "bond name is required"}
	}
	if b.CouponRate < 0 {
		return &analyzererror.ValidationError{Bond: b.Name, Reason: "coupon rate must be >= 0"}
	}
	if b.FaceValue <= 0 {
		return &analyzererror.ValidationError{Bond: b.Name, Reason: "face value must be > 0"}
	}
	if b.YearsToMaturity <= 0 {
		return &analyzererror.ValidationError{Bond: b.Name, Reason: "years to maturity must be > 0"}
	}
	if b.Callable && b.Call == nil {
		return &analyzererror.ValidationError{Bond: b.Name, Reason: "callable bond is missing call terms"}
	}
	if !b.Callable && b.Call != nil {
		return &analyzererror.ValidationError{Bond: b.Name, Reason: "call terms present on a non-callable bond"}
	}
	if b.Call != nil {
		if b.Call.YearsToCall <= 0 {
			return &analyzererror.ValidationError{Bond: b.Name, Reason: "years to call must be > 0"}
		}
		if b.Call.CallPrice <= 0 {
			return &analyzererror.ValidationError{Bond: b.Name, Reason: "call price must be > 0"}
		}
	}
	return nil
}
