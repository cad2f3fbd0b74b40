// Package bondcsv parses bond catalogs from CSV files into Bond records.
package bondcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"fjacquet/bond-analyzer/internal/analyzererror"
	"fjacquet/bond-analyzer/internal/logging"
	"fjacquet/bond-analyzer/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// Delimiter is the CSV field separator, configurable via config or the
// CSV_DELIMITER environment variable.
var Delimiter rune = ','

// SetDelimiter sets the delimiter used when reading catalogs.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		return r
	})
}

// BondCSVRow maps one catalog CSV row. All fields are read as strings and
// converted explicitly so that a malformed cell produces a ParseError naming
// the field instead of a generic unmarshal failure.
type BondCSVRow struct {
	Name             string `csv:"Name"`
	CouponRate       string `csv:"Coupon Rate"`
	MarketPrice      string `csv:"Market Price"`
	FaceValue        string `csv:"Face Value"`
	YearsToMaturity  string `csv:"Years to Maturity"`
	Callable         string `csv:"Callable"`
	YearsToCall      string `csv:"Years to Call"`
	CallPrice        string `csv:"Call Price"`
	FederalTaxExempt string `csv:"Federal Tax Exempt"`
	StateTaxExempt   string `csv:"State Tax Exempt"`
}

// Parse reads a bond catalog CSV from an io.Reader. Rows omitting the
// Face Value cell fall back to defaultFaceValue; a non-positive value means
// the caller has no preference and par 1000 is used.
func Parse(r io.Reader, defaultFaceValue float64, logger logging.Logger) ([]models.Bond, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if defaultFaceValue <= 0 {
		defaultFaceValue = models.DefaultFaceValue
	}
	logger.Info("Reading bond catalog CSV from reader")

	var rows []BondCSVRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		logger.WithError(err).Error("Failed to parse bond catalog CSV")
		return nil, fmt.Errorf("error parsing bond catalog CSV: %w", err)
	}

	bonds := make([]models.Bond, 0, len(rows))
	for _, row := range rows {
		bond, err := convertRow(row, defaultFaceValue)
		if err != nil {
			logger.WithError(err).Warn("Skipping invalid catalog row",
				logging.Field{Key: logging.FieldBond, Value: row.Name})
			continue
		}
		bonds = append(bonds, bond)
	}

	logger.WithField(logging.FieldCount, len(bonds)).Info("Read bond catalog")
	return bonds, nil
}

// ParseFile reads a bond catalog CSV from a file path.
func ParseFile(path string, defaultFaceValue float64, logger logging.Logger) ([]models.Bond, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	valid, err := ValidateFormat(path)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, &analyzererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "bond catalog CSV",
			Msg:            "missing Name / Coupon Rate header columns",
		}
	}

	file, err := os.Open(path)
	if err != nil {
		logger.WithError(err).Error("Failed to open catalog file")
		return nil, fmt.Errorf("error opening catalog file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	return Parse(file, defaultFaceValue, logger.WithField(logging.FieldFile, path))
}

// ValidateFormat checks whether the file looks like a bond catalog CSV by
// inspecting its header row.
func ValidateFormat(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("error reading catalog file: %w", err)
	}
	header, _, _ := strings.Cut(string(data), "\n")
	return strings.Contains(header, "Name") && strings.Contains(header, "Coupon Rate"), nil
}

// convertRow turns a raw CSV row into a validated Bond.
func convertRow(row BondCSVRow, defaultFaceValue float64) (models.Bond, error) {
	bond := models.Bond{Name: strings.TrimSpace(row.Name)}

	var err error
	if bond.CouponRate, err = parseRate("Coupon Rate", row.CouponRate); err != nil {
		return models.Bond{}, err
	}
	if bond.MarketPrice, err = parseAmount("Market Price", row.MarketPrice); err != nil {
		return models.Bond{}, err
	}
	if strings.TrimSpace(row.FaceValue) == "" {
		bond.FaceValue = defaultFaceValue
	} else if bond.FaceValue, err = parseAmount("Face Value", row.FaceValue); err != nil {
		return models.Bond{}, err
	}
	if bond.YearsToMaturity, err = parseAmount("Years to Maturity", row.YearsToMaturity); err != nil {
		return models.Bond{}, err
	}

	bond.Callable = parseBool(row.Callable)
	bond.FederalTaxExempt = parseBool(row.FederalTaxExempt)
	bond.StateTaxExempt = parseBool(row.StateTaxExempt)

	if bond.Callable {
		call := models.CallTerms{}
		if call.YearsToCall, err = parseAmount("Years to Call", row.YearsToCall); err != nil {
			return models.Bond{}, err
		}
		if call.CallPrice, err = parseAmount("Call Price", row.CallPrice); err != nil {
			return models.Bond{}, err
		}
		bond.Call = &call
	}

	if err := bond.Validate(); err != nil {
		return models.Bond{}, err
	}
	return bond, nil
}

// parseAmount parses a price or horizon cell. Currency symbols, apostrophe
// thousand separators and surrounding spaces are tolerated.
func parseAmount(field, value string) (float64, error) {
	cleaned := strings.NewReplacer("$", "", "'", "", " ", "").Replace(strings.TrimSpace(value))
	if cleaned == "" {
		return 0, &analyzererror.ParseError{
			Parser: "BondCSV",
			Field:  field,
			Value:  value,
			Err:    fmt.Errorf("empty value"),
		}
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, &analyzererror.ParseError{Parser: "BondCSV", Field: field, Value: value, Err: err}
	}
	return d.InexactFloat64(), nil
}

// parseRate parses a rate cell. A trailing percent sign means the value is
// given in percent and is converted to a fraction.
func parseRate(field, value string) (float64, error) {
	trimmed := strings.TrimSpace(value)
	percent := strings.HasSuffix(trimmed, "%")
	rate, err := parseAmount(field, strings.TrimSuffix(trimmed, "%"))
	if err != nil {
		return 0, err
	}
	if percent {
		rate /= 100
	}
	return rate, nil
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "y", "1":
		return true
	default:
		return false
	}
}
