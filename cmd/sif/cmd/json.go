package cmd

import (
	"os"

	"github.com/Neumenon/sif/sif"
	"github.com/spf13/cobra"
)

var jsonCmd = &cobra.Command{
	Use:   "json FILE",
	Short: "Print the parsed problem as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runJSON,
}

func init() {
	rootCmd.AddCommand(jsonCmd)
}

func runJSON(cmd *cobra.Command, args []string) error {
	p, err := sif.ParseFile(args[0])
	if err != nil {
		return err
	}
	return p.EncodeJSON(os.Stdout)
}
