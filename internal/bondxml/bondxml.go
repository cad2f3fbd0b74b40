// Package bondxml parses bond catalogs from XML feeds into Bond records.
// The expected document shape is:
//
//	<catalog>
//	  <bond>
//	    <name>Municipal Bond (In-State)</name>
//	    <couponRate>0.04</couponRate>
//	    <marketPrice>1020</marketPrice>
//	    <faceValue>1000</faceValue>
//	    <yearsToMaturity>10</yearsToMaturity>
//	    <callable>false</callable>
//	    <yearsToCall/>
//	    <callPrice/>
//	    <federalTaxExempt>true</federalTaxExempt>
//	    <stateTaxExempt>true</stateTaxExempt>
//	  </bond>
//	</catalog>
package bondxml

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"fjacquet/bond-analyzer/internal/analyzererror"
	"fjacquet/bond-analyzer/internal/logging"
	"fjacquet/bond-analyzer/internal/models"

	"gopkg.in/xmlpath.v2"
)

var (
	bondPath             = xmlpath.MustCompile("/catalog/bond")
	namePath             = xmlpath.MustCompile("name")
	couponRatePath       = xmlpath.MustCompile("couponRate")
	marketPricePath      = xmlpath.MustCompile("marketPrice")
	faceValuePath        = xmlpath.MustCompile("faceValue")
	yearsToMaturityPath  = xmlpath.MustCompile("yearsToMaturity")
	callablePath         = xmlpath.MustCompile("callable")
	yearsToCallPath      = xmlpath.MustCompile("yearsToCall")
	callPricePath        = xmlpath.MustCompile("callPrice")
	federalTaxExemptPath = xmlpath.MustCompile("federalTaxExempt")
	stateTaxExemptPath   = xmlpath.MustCompile("stateTaxExempt")
)

// ParseFile parses a bond catalog XML file. Bond elements omitting
// <faceValue> fall back to defaultFaceValue; a non-positive value means the
// caller has no preference and par 1000 is used.
func ParseFile(path string, defaultFaceValue float64, logger logging.Logger) ([]models.Bond, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if defaultFaceValue <= 0 {
		defaultFaceValue = models.DefaultFaceValue
	}
	logger.WithField(logging.FieldFile, path).Info("Parsing bond catalog XML file")

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening catalog file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	root, err := xmlpath.Parse(file)
	if err != nil {
		return nil, &analyzererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "bond catalog XML",
			Msg:            err.Error(),
		}
	}

	if !bondPath.Exists(root) {
		return nil, &analyzererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "bond catalog XML",
			Msg:            "no /catalog/bond elements found",
		}
	}

	var bonds []models.Bond
	iter := bondPath.Iter(root)
	for iter.Next() {
		bond, err := extractBond(iter.Node(), defaultFaceValue)
		if err != nil {
			logger.WithError(err).Warn("Skipping invalid bond element")
			continue
		}
		bonds = append(bonds, bond)
	}

	logger.WithField(logging.FieldCount, len(bonds)).Info("Read bond catalog")
	return bonds, nil
}

// ValidateFormat checks if a file is a bond catalog XML document.
func ValidateFormat(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("error opening file: %w", err)
	}
	defer func() { _ = file.Close() }()

	root, err := xmlpath.Parse(file)
	if err != nil {
		return false, nil
	}
	return bondPath.Exists(root), nil
}

// extractBond builds a validated Bond from one <bond> node.
func extractBond(node *xmlpath.Node, defaultFaceValue float64) (models.Bond, error) {
	bond := models.Bond{}

	name, ok := namePath.String(node)
	if !ok || strings.TrimSpace(name) == "" {
		return models.Bond{}, &analyzererror.ParseError{
			Parser: "BondXML",
			Field:  "name",
			Value:  "",
			Err:    fmt.Errorf("missing element"),
		}
	}
	bond.Name = strings.TrimSpace(name)

	var err error
	if bond.CouponRate, err = extractFloat(node, couponRatePath, "couponRate", true); err != nil {
		return models.Bond{}, err
	}
	if bond.MarketPrice, err = extractFloat(node, marketPricePath, "marketPrice", true); err != nil {
		return models.Bond{}, err
	}
	if bond.FaceValue, err = extractFloat(node, faceValuePath, "faceValue", false); err != nil {
		return models.Bond{}, err
	}
	if bond.FaceValue == 0 {
		bond.FaceValue = defaultFaceValue
	}
	if bond.YearsToMaturity, err = extractFloat(node, yearsToMaturityPath, "yearsToMaturity", true); err != nil {
		return models.Bond{}, err
	}

	bond.Callable = extractBool(node, callablePath)
	bond.FederalTaxExempt = extractBool(node, federalTaxExemptPath)
	bond.StateTaxExempt = extractBool(node, stateTaxExemptPath)

	if bond.Callable {
		call := models.CallTerms{}
		if call.YearsToCall, err = extractFloat(node, yearsToCallPath, "yearsToCall", true); err != nil {
			return models.Bond{}, err
		}
		if call.CallPrice, err = extractFloat(node, callPricePath, "callPrice", true); err != nil {
			return models.Bond{}, err
		}
		bond.Call = &call
	}

	if err := bond.Validate(); err != nil {
		return models.Bond{}, err
	}
	return bond, nil
}

func extractFloat(node *xmlpath.Node, path *xmlpath.Path, field string, required bool) (float64, error) {
	value, ok := path.String(node)
	value = strings.TrimSpace(value)
	if !ok || value == "" {
		if required {
			return 0, &analyzererror.ParseError{
				Parser: "BondXML",
				Field:  field,
				Value:  value,
				Err:    fmt.Errorf("missing element"),
			}
		}
		return 0, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &analyzererror.ParseError{Parser: "BondXML", Field: field, Value: value, Err: err}
	}
	return f, nil
}

func extractBool(node *xmlpath.Node, path *xmlpath.Path) bool {
	value, _ := path.String(node)
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "1":
		return true
	default:
		return false
	}
}
