// Package catalog supplies bond lists to the analyzer: either the built-in
// sample catalog or a user file dispatched to the matching parser by
// extension.
package catalog

import (
	"fmt"
	"path/filepath"
	"strings"

	"fjacquet/bond-analyzer/internal/bondcsv"
	"fjacquet/bond-analyzer/internal/bondxml"
	"fjacquet/bond-analyzer/internal/logging"
	"fjacquet/bond-analyzer/internal/models"
)

// Sample returns the built-in comparison catalog: seven hypothetical bonds
// spanning the common tax treatments, all at par value 1000.
func Sample() []models.Bond {
	return []models.Bond{
		{
			Name:             "Municipal Bond (In-State)",
			CouponRate:       0.04,
			MarketPrice:      1020,
			FaceValue:        models.DefaultFaceValue,
			YearsToMaturity:  10,
			FederalTaxExempt: true,
			StateTaxExempt:   true,
		},
		{
			Name:             "Municipal Bond (Out-of-State)",
			CouponRate:       0.042,
			MarketPrice:      1030,
			FaceValue:        models.DefaultFaceValue,
			YearsToMaturity:  12,
			FederalTaxExempt: true,
		},
		{
			Name:            "U.S. Treasury Note",
			CouponRate:      0.05,
			MarketPrice:     990,
			FaceValue:       models.DefaultFaceValue,
			YearsToMaturity: 10,
			StateTaxExempt:  true,
		},
		{
			Name:            "Corporate Bond (Secured)",
			CouponRate:      0.065,
			MarketPrice:     1050,
			FaceValue:       models.DefaultFaceValue,
			YearsToMaturity: 15,
			Callable:        true,
			Call:            &models.CallTerms{YearsToCall: 5, CallPrice: 1025},
		},
		{
			Name:            "Corporate Bond (Unsecured)",
			CouponRate:      0.072,
			MarketPrice:     1000,
			FaceValue:       models.DefaultFaceValue,
			YearsToMaturity: 20,
			Callable:        true,
			Call:            &models.CallTerms{YearsToCall: 5, CallPrice: 1030},
		},
		{
			Name:            "Convertible Bond",
			CouponRate:      0.055,
			MarketPrice:     1100,
			FaceValue:       models.DefaultFaceValue,
			YearsToMaturity: 8,
		},
		{
			Name:            "Foreign Bond (Developed)",
			CouponRate:      0.045,
			MarketPrice:     980,
			FaceValue:       models.DefaultFaceValue,
			YearsToMaturity: 7,
		},
	}
}

// Load reads a bond catalog from a file, choosing the parser by extension
// (.csv or .xml). An empty path returns the built-in sample catalog.
// defaultFaceValue is the fallback for catalog entries that omit their face
// value, typically the configured analysis.face_value.
func Load(path string, defaultFaceValue float64, logger logging.Logger) ([]models.Bond, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	if path == "" {
		logger.Info("No catalog file given, using built-in sample catalog")
		return Sample(), nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return bondcsv.ParseFile(path, defaultFaceValue, logger)
	case ".xml":
		return bondxml.ParseFile(path, defaultFaceValue, logger)
	default:
		return nil, fmt.Errorf("unsupported catalog format '%s': expected .csv or .xml", filepath.Ext(path))
	}
}
