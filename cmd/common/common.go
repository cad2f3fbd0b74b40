// Package common contains shared functionality for command handlers
package common

import (
	"fjacquet/bond-analyzer/cmd/root"
	"fjacquet/bond-analyzer/internal/config"
	"fjacquet/bond-analyzer/internal/logging"
	"fjacquet/bond-analyzer/internal/models"
	"fjacquet/bond-analyzer/internal/taxrates"
)

// BuildProfile assembles the investor profile from command-line flags,
// falling back to configured defaults for filing status and state.
func BuildProfile(cfg *config.Config, log logging.Logger) models.InvestorProfile {
	statusStr := root.Profile.FilingStatus
	if statusStr == "" {
		statusStr = cfg.Analysis.DefaultFilingStatus
	}
	status, err := models.ParseFilingStatus(statusStr)
	if err != nil {
		log.Fatalf("Invalid filing status: %v", err)
	}

	state := root.Profile.State
	if state == "" {
		state = cfg.Analysis.DefaultState
	}

	profile := models.InvestorProfile{
		AnnualIncome: root.Profile.Income,
		FilingStatus: status,
		State:        state,
	}
	if err := profile.Validate(); err != nil {
		log.Fatalf("Invalid investor profile: %v", err)
	}
	return profile
}

// LoadTables loads the tax tables: an override file from the --tax-tables
// flag or configuration wins over the embedded 2024 data.
func LoadTables(cfg *config.Config, log logging.Logger) *taxrates.Tables {
	path := root.TaxTablesFile
	if path == "" {
		path = cfg.Analysis.TaxTablesFile
	}

	if path != "" {
		log.WithField(logging.FieldFile, path).Info("Loading tax tables override")
		tables, err := taxrates.LoadFile(path)
		if err != nil {
			log.Fatalf("Error loading tax tables: %v", err)
		}
		return tables
	}

	tables, err := taxrates.LoadDefault()
	if err != nil {
		log.Fatalf("Error loading embedded tax tables: %v", err)
	}
	return tables
}

// LoadConfig initializes the application configuration or exits.
func LoadConfig(log logging.Logger) *config.Config {
	cfg, err := config.InitializeConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	return cfg
}
