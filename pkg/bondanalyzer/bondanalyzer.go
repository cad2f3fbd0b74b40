// Package bondanalyzer provides the stable public API for computing
// comparative bond yields adjusted for an investor's marginal tax exposure.
// It ties the tax rate resolver and the yield engine together for callers
// that embed the analyzer in their own programs.
package bondanalyzer

import (
	"fjacquet/bond-analyzer/internal/logging"
	"fjacquet/bond-analyzer/internal/models"
	"fjacquet/bond-analyzer/internal/taxrates"
	"fjacquet/bond-analyzer/internal/yield"
)

// Analyzer computes yield metrics for bond lists against investor profiles.
// It is safe for concurrent use; both components are stateless beyond the
// shared read-only tax tables.
type Analyzer struct {
	resolver *taxrates.Resolver
	engine   *yield.Engine
	log      logging.Logger
}

// New creates an Analyzer over the embedded 2024 tax tables.
func New(logger logging.Logger) (*Analyzer, error) {
	tables, err := taxrates.LoadDefault()
	if err != nil {
		return nil, err
	}
	return NewWithTables(tables, logger), nil
}

// NewWithTables creates an Analyzer over caller-supplied tax tables.
func NewWithTables(tables *taxrates.Tables, logger logging.Logger) *Analyzer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Analyzer{
		resolver: taxrates.NewResolver(tables, logger),
		engine:   yield.NewEngine(logger),
		log:      logger,
	}
}

// Rates resolves an investor profile to its marginal tax rates.
func (a *Analyzer) Rates(profile models.InvestorProfile) (models.TaxRates, error) {
	return a.resolver.Resolve(profile)
}

// Analyze resolves the profile's rates and computes one YieldResult per
// bond, preserving input order. Per-bond computation failures are carried in
// the result rows; only profile resolution errors abort the call.
func (a *Analyzer) Analyze(profile models.InvestorProfile, bonds []models.Bond) ([]models.YieldResult, models.TaxRates, error) {
	rates, err := a.resolver.Resolve(profile)
	if err != nil {
		return nil, models.TaxRates{}, err
	}
	return a.engine.AnalyzeAll(bonds, rates), rates, nil
}

// StateNames returns the recognized state names, sorted.
func (a *Analyzer) StateNames() []string {
	return a.resolver.StateNames()
}
