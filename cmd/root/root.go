// Package root contains the root command for the application
package root

import (
	"os"

	"fjacquet/bond-analyzer/internal/bondcsv"
	"fjacquet/bond-analyzer/internal/config"
	"fjacquet/bond-analyzer/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents file input/output flags for commands that read a
// catalog and write results.
type CommonFlags struct {
	Input  string
	Output string
}

// ProfileFlags represents the investor profile supplied on the command line
type ProfileFlags struct {
	Income       float64
	FilingStatus string
	State        string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "bond-analyzer",
		Short: "A CLI tool to compare bond yields adjusted for your marginal tax rates.",
		Long: `bond-analyzer computes current yield, approximate yield-to-maturity and
yield-to-call for a bond catalog, and converts tax-advantaged yields into
taxable-equivalent yields for an investor's federal and state marginal rates.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to bond-analyzer!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Ensure CSV delimiter is updated after env variables are loaded
			if delim := os.Getenv("CSV_DELIMITER"); delim != "" {
				Log.WithField(logging.FieldDelimiter, delim).Debug("Setting CSV delimiter from environment")
				bondcsv.SetDelimiter([]rune(delim)[0])
			}
		},
	}

	// Profile holds the investor profile flags shared by analyze and rates
	Profile = ProfileFlags{}

	// TaxTablesFile optionally overrides the embedded tax tables
	TaxTablesFile string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().Float64Var(&Profile.Income, "income", 100000, "Annual taxable income ($)")
	Cmd.PersistentFlags().StringVar(&Profile.FilingStatus, "filing-status", "", "Filing status (Single, Married Filing Jointly, Married Filing Separately, Head of Household)")
	Cmd.PersistentFlags().StringVar(&Profile.State, "state", "", "State for tax purposes (or None)")
	Cmd.PersistentFlags().StringVar(&TaxTablesFile, "tax-tables", "", "YAML file overriding the embedded tax tables")
}

// GetLogrusAdapter returns the shared logger wrapped in the logging.Logger interface
func GetLogrusAdapter() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}
