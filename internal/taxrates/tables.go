// Package taxrates resolves an investor profile to marginal federal and
// state tax rates. The bracket and state tables are static reference data
// loaded once at process start; they are never mutated afterwards, so a
// single Tables value is safe to share across concurrent calls.
package taxrates

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"fjacquet/bond-analyzer/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var defaultTablesYAML []byte

// Bracket is a single federal bracket: the marginal rate that applies from
// Threshold up to the next bracket's threshold.
type Bracket struct {
	Threshold float64 `yaml:"threshold"`
	Rate      float64 `yaml:"rate"`
}

// Tables holds the full marginal rate reference data: federal brackets per
// filing status and flat state rates keyed by state name (plus the "None"
// sentinel for investors with no state income tax exposure).
type Tables struct {
	FederalBrackets map[string][]Bracket `yaml:"federal_brackets"`
	StateRates      map[string]float64   `yaml:"state_rates"`
}

// LoadDefault parses the embedded 2024 tables.
func LoadDefault() (*Tables, error) {
	return parseTables(defaultTablesYAML)
}

// LoadFile parses a user-supplied tables file, for later tax-year vintages.
// The file must satisfy the same invariants as the embedded data.
func LoadFile(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading tax tables file: %w", err)
	}
	return parseTables(data)
}

func parseTables(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("error parsing tax tables: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("invalid tax tables: %w", err)
	}
	return &t, nil
}

// validate enforces the structural invariants: every filing status has a
// bracket table starting at threshold 0 with strictly increasing thresholds
// and ascending rates, and every rate is a fraction in [0, 1).
func (t *Tables) validate() error {
	for _, fs := range models.FilingStatuses {
		brackets, ok := t.FederalBrackets[string(fs)]
		if !ok {
			return fmt.Errorf("missing bracket table for filing status '%s'", fs)
		}
		if len(brackets) == 0 {
			return fmt.Errorf("empty bracket table for filing status '%s'", fs)
		}
		if brackets[0].Threshold != 0 {
			return fmt.Errorf("bracket table for '%s' must start at threshold 0", fs)
		}
		for i, b := range brackets {
			if b.Rate < 0 || b.Rate >= 1 {
				return fmt.Errorf("bracket rate %f for '%s' outside [0, 1)", b.Rate, fs)
			}
			if i > 0 {
				if b.Threshold <= brackets[i-1].Threshold {
					return fmt.Errorf("bracket thresholds for '%s' must be strictly increasing", fs)
				}
				if b.Rate <= brackets[i-1].Rate {
					return fmt.Errorf("bracket rates for '%s' must be ascending", fs)
				}
			}
		}
	}

	if len(t.StateRates) == 0 {
		return fmt.Errorf("state rate table is empty")
	}
	rate, ok := t.StateRates["None"]
	if !ok {
		return fmt.Errorf("state rate table is missing the 'None' sentinel")
	}
	if rate != 0 {
		return fmt.Errorf("state rate for 'None' must be 0, got %f", rate)
	}
	for name, r := range t.StateRates {
		if r < 0 || r >= 1 {
			return fmt.Errorf("state rate %f for '%s' outside [0, 1)", r, name)
		}
	}
	return nil
}

// StateNames returns every recognized state name in sorted order.
func (t *Tables) StateNames() []string {
	names := make([]string, 0, len(t.StateRates))
	for name := range t.StateRates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
