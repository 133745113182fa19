package cmd

import (
	"github.com/bomcompare/bomgen/bomfile"
	"github.com/bomcompare/bomgen/pretty"
	"github.com/spf13/cobra"
)

var templateOutput string

var createTemplateCmd = &cobra.Command{
	Use:     "create-template",
	Aliases: []string{"template"},
	Short:   "Create a blank BOM template .xlsx file with the correct headers.",
	Run: func(cmd *cobra.Command, args []string) {
		err := bomfile.CreateTemplate(templateOutput)
		pretty.Guard(err == nil, 2, "%v", err)
		pretty.Highlight("Template created: %s", templateOutput)
		pretty.Ok()
	},
}

func init() {
	rootCmd.AddCommand(createTemplateCmd)
	createTemplateCmd.Flags().StringVarP(&templateOutput, "output", "o", "BOM_COMPARE_TEMPLATE.xlsx", "output template file path")
}
