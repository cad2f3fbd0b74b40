// Package yield computes comparative yield metrics for fixed-income
// securities: current yield, approximate yield-to-maturity and
// yield-to-call, and the taxable-equivalent yield for an investor's
// marginal tax rates.
//
// The YTM/YTC formulas are the standard closed-form approximations that
// amortize the price-to-par gap evenly over the remaining years. They carry
// a known bias versus the exact present-value solution; the approximation
// is a deliberate trade of precision for determinism and is preserved
// exactly.
package yield

import "fjacquet/bond-analyzer/internal/models"

// CurrentYield returns annual coupon income divided by market price.
// A non-positive market price means the quote is unavailable; the function
// returns a sentinel 0 rather than faulting.
func CurrentYield(faceValue, couponRate, marketPrice float64) float64 {
	if marketPrice <= 0 {
		return 0
	}
	annualCoupon := faceValue * couponRate
	return annualCoupon / marketPrice
}

// YieldToMaturity returns the approximate yield if the bond is held to
// maturity:
//
//	(C + (F - P) / n) / ((F + P) / 2)
//
// where C is the annual coupon, F the face value, P the market price and n
// the years to maturity. Degenerate inputs (n <= 0 or P <= 0) return the
// sentinel 0, mirroring CurrentYield.
func YieldToMaturity(faceValue, marketPrice, couponRate, yearsToMaturity float64) float64 {
	if yearsToMaturity <= 0 || marketPrice <= 0 {
		return 0
	}
	annualCoupon := faceValue * couponRate
	return (annualCoupon + (faceValue-marketPrice)/yearsToMaturity) /
		((faceValue + marketPrice) / 2)
}

// YieldToCall returns the approximate yield if the bond is redeemed at its
// first call date. Same formula shape as YieldToMaturity with the call
// price substituted for face value and the call horizon for maturity.
// Non-callable bonds supply zero call terms and naturally get the sentinel 0.
func YieldToCall(faceValue, marketPrice, couponRate, yearsToCall, callPrice float64) float64 {
	if yearsToCall <= 0 || marketPrice <= 0 || callPrice == 0 {
		return 0
	}
	annualCoupon := faceValue * couponRate
	return (annualCoupon + (callPrice-marketPrice)/yearsToCall) /
		((callPrice + marketPrice) / 2)
}

// TaxableEquivalentYield converts a bond's YTM into the pretax yield a fully
// taxable bond would need to match it, given the investor's marginal rates
// and the bond's exemption flags:
//
//	federal exempt, state exempt:  ytm / (1 - total rate)
//	federal exempt only:           ytm / (1 - federal rate)
//	state exempt only:             ytm * (1 - state rate)
//	fully taxable:                 ytm
//
// The state-exempt-only branch (Treasuries) discounts by the state tax the
// yield avoids but does not gross up for the federal tax the interest still
// incurs. That is a simplification inherited from the reference model and
// kept as-is.
func TaxableEquivalentYield(ytm float64, rates models.TaxRates, federalExempt, stateExempt bool) float64 {
	switch {
	case federalExempt && stateExempt:
		return ytm / (1 - rates.Total)
	case federalExempt:
		return ytm / (1 - rates.Federal)
	case stateExempt:
		return ytm * (1 - rates.State)
	default:
		return ytm
	}
}
