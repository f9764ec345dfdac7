package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sif",
	Short: "Inspect and convert SIF optimization problem files",
	Long: `sif parses Standard Input Format (SIF/MPS-style) problem files
as used by the CUTEst benchmark collection.

Commands:
  check    - parse files and report the first error in each
  summary  - print problem name and section counts
  json     - print the parsed problem as JSON

Gzip-compressed inputs (.SIF.gz) are decompressed transparently.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}
