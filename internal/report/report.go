// Package report renders analysis results for the caller: a text comparison
// table for terminals, CSV for spreadsheets and JSON for downstream tools.
// Presentation policy lives here, not in the engine: a yield-to-call that is
// absent or non-positive is rendered "N/A" rather than as a zero yield.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/bond-analyzer/internal/logging"
	"fjacquet/bond-analyzer/internal/models"

	"github.com/gocarina/gocsv"
)

// Generator renders YieldResult slices in the supported output formats.
type Generator struct {
	log logging.Logger
}

// NewGenerator creates a report generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Generator{log: logger}
}

// ResultCSVRow maps one result to a CSV output row. Yields are written as
// percent strings matching the table rendering.
type ResultCSVRow struct {
	Name                   string `csv:"Name"`
	CouponRate             string `csv:"Coupon Rate"`
	MarketPrice            string `csv:"Market Price"`
	CurrentYield           string `csv:"Current Yield"`
	YieldToMaturity        string `csv:"YTM"`
	YieldToCall            string `csv:"YTC"`
	TaxableEquivalentYield string `csv:"Taxable Equivalent Yield"`
	Error                  string `csv:"Error"`
}

// WriteTaxProfile prints the investor's resolved marginal rates.
func (g *Generator) WriteTaxProfile(w io.Writer, profile models.InvestorProfile, rates models.TaxRates) {
	fmt.Fprintf(w, "Tax profile: income $%.0f, %s, state %s\n",
		profile.AnnualIncome, profile.FilingStatus, profile.State)
	fmt.Fprintf(w, "  Federal tax bracket:    %.1f%%\n", rates.Federal*100)
	fmt.Fprintf(w, "  State tax rate:         %.1f%%\n", rates.State*100)
	fmt.Fprintf(w, "  Combined marginal rate: %.1f%%\n", rates.Total*100)
}

// WriteTable prints the bond comparison table.
func (g *Generator) WriteTable(w io.Writer, results []models.YieldResult) {
	header := fmt.Sprintf("%-32s %8s %12s %9s %9s %9s %12s",
		"Bond Type", "Coupon", "Price", "Cur Yld", "YTM", "YTC", "Tax Eq Yld")
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", len(header)))

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%-32s %8s %12s  error: %v\n",
				r.Name, formatRate2(r.CouponRate), formatPrice(r.MarketPrice), r.Err)
			continue
		}
		fmt.Fprintf(w, "%-32s %8s %12s %9s %9s %9s %12s\n",
			r.Name,
			formatRate2(r.CouponRate),
			formatPrice(r.MarketPrice),
			formatRate3(r.CurrentYield),
			formatRate3(r.YieldToMaturity),
			formatYTC(r.YieldToCall),
			formatRate3(r.TaxableEquivalentYield),
		)
	}
}

// WriteFile writes results to a file, choosing the format by extension
// (.csv or .json).
func (g *Generator) WriteFile(results []models.YieldResult, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return g.writeCSV(results, path)
	case ".json":
		return g.writeJSON(results, path)
	default:
		return fmt.Errorf("unsupported report format '%s': expected .csv or .json", filepath.Ext(path))
	}
}

func (g *Generator) writeCSV(results []models.YieldResult, path string) error {
	g.log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(results)},
	).Info("Writing results to CSV file")

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			g.log.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]ResultCSVRow, 0, len(results))
	for _, r := range results {
		row := ResultCSVRow{
			Name:        r.Name,
			CouponRate:  formatRate2(r.CouponRate),
			MarketPrice: formatPrice(r.MarketPrice),
		}
		if r.Err != nil {
			row.Error = r.Err.Error()
		} else {
			row.CurrentYield = formatRate3(r.CurrentYield)
			row.YieldToMaturity = formatRate3(r.YieldToMaturity)
			row.YieldToCall = formatYTC(r.YieldToCall)
			row.TaxableEquivalentYield = formatRate3(r.TaxableEquivalentYield)
		}
		rows = append(rows, row)
	}

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}

func (g *Generator) writeJSON(results []models.YieldResult, path string) error {
	g.log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(results)},
	).Info("Writing results to JSON file")

	// Err doesn't marshal as error; mirror it into a plain string field.
	type jsonResult struct {
		models.YieldResult
		Error string `json:"error,omitempty"`
	}
	out := make([]jsonResult, 0, len(results))
	for _, r := range results {
		jr := jsonResult{YieldResult: r}
		if r.Err != nil {
			jr.Error = r.Err.Error()
		}
		out = append(out, jr)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling results: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing JSON file: %w", err)
	}
	return nil
}

func formatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func formatRate2(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

func formatRate3(v float64) string {
	return fmt.Sprintf("%.3f%%", v*100)
}

// formatYTC renders a yield-to-call, treating an absent or non-positive
// value as not applicable.
func formatYTC(y models.OptionalYield) string {
	if !y.Valid || y.Value <= 0 {
		return "N/A"
	}
	return formatRate3(y.Value)
}
