package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/bond-analyzer/cmd/analyze"
	"fjacquet/bond-analyzer/cmd/rates"
	"fjacquet/bond-analyzer/cmd/root"
	"fjacquet/bond-analyzer/cmd/version"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure the global log level before any logger is handed out
	configureLogLevelDirectly()

	// 3. Initialize the root command and its flags
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(analyze.Cmd)
	root.Cmd.AddCommand(rates.Cmd)
	root.Cmd.AddCommand(version.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	// Try to find .env file in current directory
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		// Try to find .env in parent directory (project root)
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	// Load .env file silently without logging
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus instances
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info" // Default log level
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		// Don't log here, just use default info level if we can't parse
		logLevel = logrus.InfoLevel
	}

	// Set the global logrus level BEFORE any logging happens so that it
	// affects all existing and future loggers
	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
