package taxrates

import (
	"testing"

	"fjacquet/bond-analyzer/internal/analyzererror"
	"fjacquet/bond-analyzer/internal/logging"
	"fjacquet/bond-analyzer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	tables, err := LoadDefault()
	require.NoError(t, err)
	return NewResolver(tables, &logging.MockLogger{})
}

func TestFederalRate(t *testing.T) {
	resolver := newTestResolver(t)

	tests := []struct {
		name     string
		income   float64
		status   models.FilingStatus
		expected float64
	}{
		{"Zero income lowest bracket", 0, models.Single, 0.10},
		{"Below second threshold", 11599, models.Single, 0.10},
		{"Exactly at threshold", 11600, models.Single, 0.12},
		{"Mid bracket", 100000, models.Single, 0.22},
		{"Into 24 percent", 100525, models.Single, 0.24},
		{"Top bracket", 700000, models.Single, 0.37},
		{"Joint filers wider brackets", 100000, models.MarriedFilingJointly, 0.22},
		{"Separate filers top sooner", 400000, models.MarriedFilingSeparately, 0.37},
		{"Head of household", 63100, models.HeadOfHousehold, 0.22},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, resolver.FederalRate(tc.income, tc.status))
		})
	}
}

func TestFederalRateMonotonic(t *testing.T) {
	resolver := newTestResolver(t)

	for _, status := range models.FilingStatuses {
		prev := 0.0
		for income := 0.0; income <= 800000; income += 2500 {
			rate := resolver.FederalRate(income, status)
			assert.GreaterOrEqual(t, rate, prev,
				"rate must not decrease as income increases (status %s, income %.0f)", status, income)
			prev = rate
		}
	}
}

func TestStateRate(t *testing.T) {
	resolver := newTestResolver(t)

	tests := []struct {
		state    string
		expected float64
	}{
		{"None", 0.0},
		{"California", 0.133},
		{"New York", 0.109},
		{"Texas", 0.0},
		{"Pennsylvania", 0.0307},
	}

	for _, tc := range tests {
		t.Run(tc.state, func(t *testing.T) {
			rate, err := resolver.StateRate(tc.state)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, rate)
		})
	}
}

func TestStateRateUnknown(t *testing.T) {
	resolver := newTestResolver(t)

	_, err := resolver.StateRate("Atlantis")
	var invalidState *analyzererror.InvalidStateError
	require.ErrorAs(t, err, &invalidState)
	assert.Equal(t, "Atlantis", invalidState.State)
}

func TestTotalRateUncappedSum(t *testing.T) {
	assert.InDelta(t, 0.373, TotalRate(0.24, 0.133), 1e-9)
	assert.Equal(t, 0.0, TotalRate(0, 0))
	// The sum is deliberately not capped at 1.0.
	assert.InDelta(t, 1.1, TotalRate(0.9, 0.2), 1e-9)
}

func TestResolve(t *testing.T) {
	resolver := newTestResolver(t)

	rates, err := resolver.Resolve(models.InvestorProfile{
		AnnualIncome: 100000,
		FilingStatus: models.Single,
		State:        "California",
	})

	require.NoError(t, err)
	assert.Equal(t, 0.22, rates.Federal)
	assert.Equal(t, 0.133, rates.State)
	assert.InDelta(t, 0.353, rates.Total, 1e-9)
}

func TestResolveInvalidInputs(t *testing.T) {
	resolver := newTestResolver(t)

	_, err := resolver.Resolve(models.InvestorProfile{
		AnnualIncome: -1,
		FilingStatus: models.Single,
		State:        "California",
	})
	assert.Error(t, err)

	_, err = resolver.Resolve(models.InvestorProfile{
		AnnualIncome: 100000,
		FilingStatus: "Quadruple",
		State:        "California",
	})
	assert.Error(t, err)

	_, err = resolver.Resolve(models.InvestorProfile{
		AnnualIncome: 100000,
		FilingStatus: models.Single,
		State:        "Atlantis",
	})
	var invalidState *analyzererror.InvalidStateError
	assert.ErrorAs(t, err, &invalidState)
}
