package models

// OptionalYield is a yield that may be absent. Yield-to-call is only defined
// for bonds with call terms; modeling it as value+Valid keeps "computed
// zero" distinct from "not applicable" for display code and tests.
type OptionalYield struct {
	Value float64 `json:"value"`
	Valid bool    `json:"valid"`
}

// YieldResult carries the computed yields for a single bond, in the same
// order as the input catalog. A per-bond failure is recorded in Err so the
// rest of the batch still renders.
type YieldResult struct {
	Name                   string        `json:"name"`
	CouponRate             float64       `json:"coupon_rate"`
	MarketPrice            float64       `json:"market_price"`
	CurrentYield           float64       `json:"current_yield"`
	YieldToMaturity        float64       `json:"yield_to_maturity"`
	YieldToCall            OptionalYield `json:"yield_to_call"`
	TaxableEquivalentYield float64       `json:"taxable_equivalent_yield"`
	Err                    error         `json:"-"`
}
