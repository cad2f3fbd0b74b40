package yield

import (
	"testing"

	"fjacquet/bond-analyzer/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCurrentYield(t *testing.T) {
	tests := []struct {
		name        string
		faceValue   float64
		couponRate  float64
		marketPrice float64
		expected    float64
	}{
		{"Par bond equals coupon", 1000, 0.04, 1000, 0.04},
		{"Discount bond above coupon", 1000, 0.05, 990, 50.0 / 990},
		{"Premium bond below coupon", 1000, 0.04, 1020, 40.0 / 1020},
		{"Zero coupon", 1000, 0, 950, 0},
		{"Zero price sentinel", 1000, 0.04, 0, 0},
		{"Negative price sentinel", 1000, 0.04, -10, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := CurrentYield(tc.faceValue, tc.couponRate, tc.marketPrice)
			assert.InDelta(t, tc.expected, result, 1e-9)
		})
	}
}

func TestYieldToMaturity(t *testing.T) {
	tests := []struct {
		name            string
		faceValue       float64
		marketPrice     float64
		couponRate      float64
		yearsToMaturity float64
		expected        float64
	}{
		// (40 + (1000-1020)/10) / ((1000+1020)/2) = 38/1010
		{"Premium muni", 1000, 1020, 0.04, 10, 0.0376238},
		// (50 + (1000-990)/10) / ((1000+990)/2) = 51/995
		{"Discount treasury", 1000, 990, 0.05, 10, 0.0512563},
		{"Par bond equals coupon", 1000, 1000, 0.06, 10, 0.06},
		{"Zero maturity sentinel", 1000, 1020, 0.04, 0, 0},
		{"Negative maturity sentinel", 1000, 1020, 0.04, -1, 0},
		{"Zero price sentinel", 1000, 0, 0.04, 10, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := YieldToMaturity(tc.faceValue, tc.marketPrice, tc.couponRate, tc.yearsToMaturity)
			assert.InDelta(t, tc.expected, result, 1e-6)
		})
	}
}

func TestYieldToCall(t *testing.T) {
	tests := []struct {
		name        string
		faceValue   float64
		marketPrice float64
		couponRate  float64
		yearsToCall float64
		callPrice   float64
		expected    float64
	}{
		// (65 + (1025-1050)/5) / ((1025+1050)/2) = 60/1037.5
		{"Premium callable", 1000, 1050, 0.065, 5, 1025, 0.0578313},
		// (72 + (1030-1000)/5) / ((1030+1000)/2) = 78/1015
		{"Par callable", 1000, 1000, 0.072, 5, 1030, 0.0768473},
		{"Zero call horizon sentinel", 1000, 1050, 0.065, 0, 1025, 0},
		{"Zero call price sentinel", 1000, 1050, 0.065, 5, 0, 0},
		{"Zero market price sentinel", 1000, 0, 0.065, 5, 1025, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := YieldToCall(tc.faceValue, tc.marketPrice, tc.couponRate, tc.yearsToCall, tc.callPrice)
			assert.InDelta(t, tc.expected, result, 1e-6)
		})
	}
}

func TestTaxableEquivalentYield(t *testing.T) {
	rates := models.TaxRates{Federal: 0.24, State: 0.133, Total: 0.373}

	tests := []struct {
		name          string
		ytm           float64
		federalExempt bool
		stateExempt   bool
		expected      float64
	}{
		{"Fully exempt grosses up by total", 0.03, true, true, 0.03 / (1 - 0.373)},
		{"Federal exempt grosses up by federal", 0.03, true, false, 0.03 / (1 - 0.24)},
		{"State exempt discounts by state", 0.05, false, true, 0.05 * (1 - 0.133)},
		{"Fully taxable unchanged", 0.065, false, false, 0.065},
		{"Zero ytm stays zero", 0, true, true, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := TaxableEquivalentYield(tc.ytm, rates, tc.federalExempt, tc.stateExempt)
			assert.InDelta(t, tc.expected, result, 1e-9)
		})
	}
}

func TestTaxableEquivalentYieldGoldenValue(t *testing.T) {
	// ytm 3%, total marginal rate 37.3%: 0.03 / 0.627 = 0.047847
	rates := models.TaxRates{Federal: 0.24, State: 0.133, Total: 0.373}
	result := TaxableEquivalentYield(0.03, rates, true, true)
	assert.InDelta(t, 0.047847, result, 1e-6)
}

func TestTaxableEquivalentYieldUnchangedForAnyRates(t *testing.T) {
	// Fully taxable bonds never get adjusted, whatever the rates are.
	for _, rates := range []models.TaxRates{
		{},
		{Federal: 0.37, State: 0.133, Total: 0.503},
		{Federal: 0.9, State: 0.2, Total: 1.1},
	} {
		assert.Equal(t, 0.05, TaxableEquivalentYield(0.05, rates, false, false))
	}
}
