package taxrates

import (
	"fjacquet/bond-analyzer/internal/analyzererror"
	"fjacquet/bond-analyzer/internal/logging"
	"fjacquet/bond-analyzer/internal/models"
)

// Resolver maps investor attributes to marginal tax rates using a loaded
// Tables value. Resolvers are stateless beyond the shared read-only tables.
type Resolver struct {
	tables *Tables
	log    logging.Logger
}

// NewResolver creates a resolver over the given tables.
func NewResolver(tables *Tables, logger logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Resolver{tables: tables, log: logger}
}

// FederalRate returns the marginal federal rate for the given income and
// filing status: the rate of the highest bracket whose threshold the income
// has reached. Every table starts at threshold 0, so there is always a
// matching bracket and the function is total.
func (r *Resolver) FederalRate(income float64, status models.FilingStatus) float64 {
	brackets := r.tables.FederalBrackets[string(status)]
	rate := 0.0
	for _, b := range brackets {
		if income >= b.Threshold {
			rate = b.Rate
		} else {
			break
		}
	}
	return rate
}

// StateRate returns the flat marginal rate for the given state name.
// Unknown names fail with InvalidStateError rather than defaulting; the
// table enumerates every valid name including the "None" sentinel.
func (r *Resolver) StateRate(state string) (float64, error) {
	rate, ok := r.tables.StateRates[state]
	if !ok {
		r.log.WithField(logging.FieldState, state).Warn("Unrecognized state name")
		return 0, &analyzererror.InvalidStateError{State: state}
	}
	return rate, nil
}

// TotalRate combines federal and state marginal rates by plain sum.
// No cap at 1.0 is applied; the combined rate is a known approximation and
// the yield engine surfaces the division hazard when it matters.
func TotalRate(federal, state float64) float64 {
	return federal + state
}

// Resolve computes the complete rate triple for an investor profile.
func (r *Resolver) Resolve(profile models.InvestorProfile) (models.TaxRates, error) {
	if err := profile.Validate(); err != nil {
		return models.TaxRates{}, err
	}

	federal := r.FederalRate(profile.AnnualIncome, profile.FilingStatus)
	state, err := r.StateRate(profile.State)
	if err != nil {
		return models.TaxRates{}, err
	}

	rates := models.TaxRates{
		Federal: federal,
		State:   state,
		Total:   TotalRate(federal, state),
	}

	r.log.WithFields(
		logging.Field{Key: logging.FieldIncome, Value: profile.AnnualIncome},
		logging.Field{Key: logging.FieldFilingStatus, Value: profile.FilingStatus},
		logging.Field{Key: logging.FieldState, Value: profile.State},
		logging.Field{Key: logging.FieldRate, Value: rates.Total},
	).Debug("Resolved marginal tax rates")

	return rates, nil
}

// StateNames exposes the recognized state names for command help and input
// validation.
func (r *Resolver) StateNames() []string {
	return r.tables.StateNames()
}
