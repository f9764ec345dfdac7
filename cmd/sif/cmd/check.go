package cmd

import (
	"fmt"
	"os"

	"github.com/Neumenon/sif/sif"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Parse files and report the first error in each",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		if _, err := sif.ParseFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("%s: ok\n", path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}
