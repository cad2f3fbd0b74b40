// Package models defines the value objects exchanged between the tax rate
// resolver, the yield engine and the catalog parsers. All types are plain
// values recomputed per request; nothing here is shared-mutable.
package models

import "fmt"

// FilingStatus identifies a federal income tax filing status.
// The set is fixed by the bracket tables and never extended at runtime.
type FilingStatus string

const (
	Single                  FilingStatus = "Single"
	MarriedFilingJointly    FilingStatus = "Married Filing Jointly"
	MarriedFilingSeparately FilingStatus = "Married Filing Separately"
	HeadOfHousehold         FilingStatus = "Head of Household"
)

// FilingStatuses lists every recognized filing status in display order.
var FilingStatuses = []FilingStatus{
	Single,
	MarriedFilingJointly,
	MarriedFilingSeparately,
	HeadOfHousehold,
}

// ParseFilingStatus converts a user-supplied string to a FilingStatus.
func ParseFilingStatus(s string) (FilingStatus, error) {
	for _, fs := range FilingStatuses {
		if s == string(fs) {
			return fs, nil
		}
	}
	return "", fmt.Errorf("unrecognized filing status: '%s'", s)
}

// String returns the display name of the filing status.
func (fs FilingStatus) String() string {
	return string(fs)
}

// InvestorProfile captures the investor attributes that determine marginal
// tax exposure. Profiles are ephemeral: built from user input per query,
// never persisted.
type InvestorProfile struct {
	AnnualIncome float64      `json:"annual_income"`
	FilingStatus FilingStatus `json:"filing_status"`
	State        string       `json:"state"`
}

// Validate checks the profile against the resolver's input domain.
// State membership is checked separately by the state tax table.
func (p InvestorProfile) Validate() error {
	if p.AnnualIncome < 0 {
		return fmt.Errorf("annual income must be >= 0, got %f", p.AnnualIncome)
	}
	if _, err := ParseFilingStatus(string(p.FilingStatus)); err != nil {
		return err
	}
	return nil
}

// TaxRates holds an investor's resolved marginal rates.
// Total is the plain sum of Federal and State; it is deliberately not capped
// at 1.0, mirroring the reference model. The yield engine detects the
// resulting division hazard instead.
type TaxRates struct {
	Federal float64 `json:"federal"`
	State   float64 `json:"state"`
	Total   float64 `json:"total"`
}
