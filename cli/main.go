package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/trebuchet-org/xform/internal/cli"
	"github.com/trebuchet-org/xform/internal/config"
	"github.com/trebuchet-org/xform/internal/domain"
)

// Set by -ldflags at release time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	config.SetBuildFlags(version, commit, date)

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		// Configuration problems exit with 2 so build scripts can tell them apart
		if domain.IsFatalConfigError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
