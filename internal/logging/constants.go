package logging

// Standardized field names for structured logging.
// Keeping the keys in one place makes log output consistent across the
// resolver, engine and catalog parsers.
const (
	FieldFile         = "file_path"
	FieldBond         = "bond"
	FieldState        = "state"
	FieldFilingStatus = "filing_status"
	FieldIncome       = "income"
	FieldRate         = "rate"
	FieldCount        = "count"
	FieldDelimiter    = "delimiter"
)
