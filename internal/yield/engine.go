package yield

import (
	"fjacquet/bond-analyzer/internal/analyzererror"
	"fjacquet/bond-analyzer/internal/logging"
	"fjacquet/bond-analyzer/internal/models"
)

// Engine analyzes bonds against a resolved set of marginal tax rates.
// It holds no state between calls; concurrent use is safe.
type Engine struct {
	log logging.Logger
}

// NewEngine creates an engine with the given logger.
func NewEngine(logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Engine{log: logger}
}

// Analyze computes the full yield record for one bond. A fully-exempt bond
// combined with a total marginal rate >= 1 would divide by zero or a
// negative number in the gross-up; that condition is reported as a
// DivisionHazardError on the result instead of a non-finite yield.
func (e *Engine) Analyze(bond models.Bond, rates models.TaxRates) models.YieldResult {
	result := models.YieldResult{
		Name:        bond.Name,
		CouponRate:  bond.CouponRate,
		MarketPrice: bond.MarketPrice,
	}

	result.CurrentYield = CurrentYield(bond.FaceValue, bond.CouponRate, bond.MarketPrice)
	result.YieldToMaturity = YieldToMaturity(bond.FaceValue, bond.MarketPrice, bond.CouponRate, bond.YearsToMaturity)

	if bond.Call != nil {
		result.YieldToCall = models.OptionalYield{
			Value: YieldToCall(bond.FaceValue, bond.MarketPrice, bond.CouponRate,
				bond.Call.YearsToCall, bond.Call.CallPrice),
			Valid: true,
		}
	}

	if bond.FederalTaxExempt && bond.StateTaxExempt && rates.Total >= 1 {
		result.Err = &analyzererror.DivisionHazardError{Bond: bond.Name, TotalRate: rates.Total}
		e.log.WithError(result.Err).WithField(logging.FieldBond, bond.Name).
			Warn("Skipping taxable-equivalent yield")
		return result
	}

	result.TaxableEquivalentYield = TaxableEquivalentYield(
		result.YieldToMaturity, rates, bond.FederalTaxExempt, bond.StateTaxExempt)

	return result
}

// AnalyzeAll computes one result per bond, preserving catalog order.
// A failed bond carries its error in the result row; the batch never aborts.
func (e *Engine) AnalyzeAll(bonds []models.Bond, rates models.TaxRates) []models.YieldResult {
	results := make([]models.YieldResult, 0, len(bonds))
	for _, bond := range bonds {
		results = append(results, e.Analyze(bond, rates))
	}
	e.log.WithField(logging.FieldCount, len(results)).Debug("Analyzed bond catalog")
	return results
}
