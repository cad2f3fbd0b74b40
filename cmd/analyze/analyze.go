// Package analyze handles the bond catalog analysis command
package analyze

import (
	"fmt"
	"os"

	"fjacquet/bond-analyzer/cmd/common"
	"fjacquet/bond-analyzer/cmd/root"
	"fjacquet/bond-analyzer/internal/catalog"
	"fjacquet/bond-analyzer/internal/report"
	"fjacquet/bond-analyzer/pkg/bondanalyzer"

	"github.com/spf13/cobra"
)

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a bond catalog against your tax profile",
	Long: `Compute current yield, approximate YTM/YTC and taxable-equivalent yield
for every bond in the catalog, using the marginal tax rates resolved from
your income, filing status and state.`,
	Run: analyzeFunc,
}

// flags holds the catalog input/output flags; they are local to analyze
// because the other commands take no files.
var flags = root.CommonFlags{}

func init() {
	Cmd.Flags().StringVarP(&flags.Input, "input", "i", "", "Input bond catalog file (.csv or .xml); omit for the built-in sample catalog")
	Cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Output results file (.csv or .json)")
}

func analyzeFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()
	root.Log.Info("Analyze command called")

	cfg := common.LoadConfig(logger)
	profile := common.BuildProfile(cfg, logger)
	tables := common.LoadTables(cfg, logger)

	bonds, err := catalog.Load(flags.Input, cfg.Analysis.FaceValue, logger)
	if err != nil {
		logger.Fatalf("Error loading bond catalog: %v", err)
	}
	if len(bonds) == 0 {
		logger.Fatal("Bond catalog is empty")
	}

	analyzer := bondanalyzer.NewWithTables(tables, logger)
	results, rates, err := analyzer.Analyze(profile, bonds)
	if err != nil {
		logger.Fatalf("Error analyzing bonds: %v", err)
	}

	gen := report.NewGenerator(logger)
	gen.WriteTaxProfile(os.Stdout, profile, rates)
	fmt.Println()
	gen.WriteTable(os.Stdout, results)

	if flags.Output != "" {
		if err := gen.WriteFile(results, flags.Output); err != nil {
			logger.Fatalf("Error writing results: %v", err)
		}
	}

	root.Log.Info("Bond analysis completed successfully!")
}
