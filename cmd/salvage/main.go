package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information - will be set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	flagDB      string
	flagLocale  string
	flagVerbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "salvage",
		Short: "Recover readable data from a binary action catalog",
		Long: `Salvage decodes the schema-less binary blobs of an action catalog database,
reclaims the readable strings buried in them, repairs localization keys into
display names, and exports validated action schemas.`,
	}

	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Catalog database path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "Localization locale (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(validateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
