package cmd

import (
	"fmt"

	"github.com/Neumenon/sif/sif"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary FILE",
	Short: "Print problem name and section counts",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	p, err := sif.ParseFile(args[0])
	if err != nil {
		return err
	}

	var byKind [4]int
	for _, r := range p.Rows {
		byKind[r.Kind]++
	}
	nonzeros := 0
	for _, c := range p.Columns {
		nonzeros += len(c.Entries)
	}

	fmt.Printf("Name:       %s\n", p.Name)
	fmt.Printf("Rows:       %d (N=%d G=%d L=%d E=%d)\n",
		len(p.Rows), byKind[sif.RowN], byKind[sif.RowG], byKind[sif.RowL], byKind[sif.RowE])
	fmt.Printf("Columns:    %d\n", len(p.Columns))
	fmt.Printf("Nonzeros:   %d\n", nonzeros)
	fmt.Printf("RHS:        %d\n", len(p.RHS))
	fmt.Printf("Bounds:     %d\n", len(p.Bounds))
	fmt.Printf("Quadratic:  %d\n", len(p.Quadratic))
	return nil
}
