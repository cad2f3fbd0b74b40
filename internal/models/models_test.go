package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilingStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected FilingStatus
		hasError bool
	}{
		{"Single", Single, false},
		{"Married Filing Jointly", MarriedFilingJointly, false},
		{"Married Filing Separately", MarriedFilingSeparately, false},
		{"Head of Household", HeadOfHousehold, false},
		{"single", "", true},
		{"Married", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			status, err := ParseFilingStatus(tc.input)
			if tc.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, status)
			}
		})
	}
}

func TestInvestorProfileValidate(t *testing.T) {
	valid := InvestorProfile{AnnualIncome: 100000, FilingStatus: Single, State: "California"}
	assert.NoError(t, valid.Validate())

	negative := InvestorProfile{AnnualIncome: -5, FilingStatus: Single, State: "California"}
	assert.Error(t, negative.Validate())

	badStatus := InvestorProfile{AnnualIncome: 100000, FilingStatus: "Plural", State: "California"}
	assert.Error(t, badStatus.Validate())
}

func validBond() Bond {
	return Bond{
		Name:            "Corporate Bond (Secured)",
		CouponRate:      0.065,
		MarketPrice:     1050,
		FaceValue:       DefaultFaceValue,
		YearsToMaturity: 15,
		Callable:        true,
		Call:            &CallTerms{YearsToCall: 5, CallPrice: 1025},
	}
}

func TestBondValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Bond)
		hasError bool
	}{
		{"valid callable bond", func(b *Bond) {}, false},
		{"valid non-callable bond", func(b *Bond) { b.Callable = false; b.Call = nil }, false},
		{"zero market price allowed as missing quote", func(b *Bond) { b.MarketPrice = 0 }, false},
		{"missing name", func(b *Bond) { b.Name = "" }, true},
		{"negative coupon", func(b *Bond) { b.CouponRate = -0.01 }, true},
		{"zero face value", func(b *Bond) { b.FaceValue = 0 }, true},
		{"zero maturity", func(b *Bond) { b.YearsToMaturity = 0 }, true},
		{"callable without call terms", func(b *Bond) { b.Call = nil }, true},
		{"call terms without callable flag", func(b *Bond) { b.Callable = false }, true},
		{"zero years to call", func(b *Bond) { b.Call = &CallTerms{YearsToCall: 0, CallPrice: 1025} }, true},
		{"zero call price", func(b *Bond) { b.Call = &CallTerms{YearsToCall: 5, CallPrice: 0} }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bond := validBond()
			tc.mutate(&bond)
			err := bond.Validate()
			if tc.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
