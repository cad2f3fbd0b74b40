// Package rates handles the marginal tax rate resolution command
package rates

import (
	"os"

	"fjacquet/bond-analyzer/cmd/common"
	"fjacquet/bond-analyzer/cmd/root"
	"fjacquet/bond-analyzer/internal/report"
	"fjacquet/bond-analyzer/pkg/bondanalyzer"

	"github.com/spf13/cobra"
)

// Cmd represents the rates command
var Cmd = &cobra.Command{
	Use:   "rates",
	Short: "Resolve and print your marginal tax rates",
	Long: `Resolve the federal marginal bracket for your income and filing status,
the flat state rate for your state, and the combined marginal rate used for
taxable-equivalent yield conversion.`,
	Run: ratesFunc,
}

func ratesFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()
	root.Log.Info("Rates command called")

	cfg := common.LoadConfig(logger)
	profile := common.BuildProfile(cfg, logger)
	tables := common.LoadTables(cfg, logger)

	analyzer := bondanalyzer.NewWithTables(tables, logger)
	resolved, err := analyzer.Rates(profile)
	if err != nil {
		logger.Fatalf("Error resolving tax rates: %v", err)
	}

	gen := report.NewGenerator(logger)
	gen.WriteTaxProfile(os.Stdout, profile, resolved)
}
