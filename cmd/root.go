package cmd

import (
	"github.com/bomcompare/bomgen/common"
	"github.com/bomcompare/bomgen/pretty"
	"github.com/bomcompare/bomgen/settings"
	"github.com/spf13/cobra"
)

var colorlessFlag bool

var rootCmd = &cobra.Command{
	Use:   "bomgen",
	Short: "bomgen generates and compares BOM Compare import spreadsheets.",
	Long: `bomgen builds Bill of Material .xlsx files for the BOM Compare
import format, with manual or randomly generated parts in a Parent,
Level 1, Level 2, Level 3 hierarchy, and diffs two BOM files into a
comparison report.`,
	SilenceUsage: true,
}

func Execute() {
	err := rootCmd.Execute()
	pretty.Guard(err == nil, 1, "Error: %v", err)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&common.DebugFlag, "debug", false, "to get debug output where available")
	rootCmd.PersistentFlags().BoolVar(&common.TraceFlag, "trace", false, "to get trace output where available")
	rootCmd.PersistentFlags().BoolVar(&common.Silent, "silent", false, "be less verbose on output")
	rootCmd.PersistentFlags().BoolVar(&colorlessFlag, "colorless", false, "do not use colors in CLI UI")
	cobra.OnInitialize(initTooling)
}

func initTooling() {
	pretty.Disabled = colorlessFlag
	pretty.Setup()
	settings.Initialize()
	common.Trace("Tooling initialized (%s).", common.Version)
}
