// Package version handles the version command
package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Cmd represents the version command
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bond-analyzer %s (%s/%s)\n", Version, runtime.GOOS, runtime.GOARCH)
	},
}
