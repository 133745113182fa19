package cmd

import (
	"fmt"

	"github.com/bomcompare/bomgen/bomfile"
	"github.com/bomcompare/bomgen/diff"
	"github.com/bomcompare/bomgen/journal"
	"github.com/bomcompare/bomgen/pretty"
	"github.com/spf13/cobra"
)

var compareOutput string

var compareCmd = &cobra.Command{
	Use:   "compare <first BOM file> <second BOM file>",
	Short: "Compare two BOM files and write a comparison report.",
	Long: `Compare two BOM .xlsx files keyed by part number and write a multi
sheet report: summary counts, added and removed items, and modified
items with per field old/new values.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		first, err := bomfile.ReadBOM(args[0])
		pretty.Guard(err == nil, 2, "%v", err)
		second, err := bomfile.ReadBOM(args[1])
		pretty.Guard(err == nil, 2, "%v", err)

		comparison := diff.Compare(first, second)
		err = bomfile.WriteComparison(comparison, compareOutput)
		pretty.Guard(err == nil, 2, "%v", err)

		journal.Post("compare", compareOutput, "%s vs %s: +%d -%d ~%d =%d",
			first.Name, second.Name,
			len(comparison.Added), len(comparison.Removed),
			len(comparison.Modified), len(comparison.Unchanged))
		pretty.Box("BOM comparison", []string{
			fmt.Sprintf("BOM 1: %s (%d items)", first.Name, first.Len()),
			fmt.Sprintf("BOM 2: %s (%d items)", second.Name, second.Len()),
			fmt.Sprintf("Added: %d", len(comparison.Added)),
			fmt.Sprintf("Removed: %d", len(comparison.Removed)),
			fmt.Sprintf("Modified: %d", len(comparison.Modified)),
			fmt.Sprintf("Unchanged: %d", len(comparison.Unchanged)),
			fmt.Sprintf("Report: %s", compareOutput),
		})
		pretty.Ok()
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVarP(&compareOutput, "output", "o", "bom_comparison.xlsx", "output comparison .xlsx file path")
}
