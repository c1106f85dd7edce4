// Package cli wires the cobra command tree: flag parsing, connection
// resolution, and the load command that drives the ingestion pipeline.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tickload",
	Short: "Bulk CSV market-data loader for PostgreSQL",
	Long: `tickload walks a directory tree of exported market-data CSV files and
loads every bar into a PostgreSQL table, in parallel, idempotently.

File names carry the metadata: symbol, datasource, exchange, market,
timeframe, and field, separated by dashes. Futures symbols like @VXJ20
are decomposed into a root (@VX) and a contract date (2020-04-01).
Re-running over the same tree inserts nothing twice.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Database connection failed
  12 - Schema creation failed
  13 - Data directory not found or not a directory`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for tickload")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
