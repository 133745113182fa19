package cmd

import (
	"fmt"

	"github.com/bomcompare/bomgen/bomfile"
	"github.com/bomcompare/bomgen/builder"
	"github.com/bomcompare/bomgen/common"
	"github.com/bomcompare/bomgen/generator"
	"github.com/bomcompare/bomgen/journal"
	"github.com/bomcompare/bomgen/pretty"
	"github.com/bomcompare/bomgen/schema"
	"github.com/bomcompare/bomgen/settings"
	"github.com/bomcompare/bomgen/wizard"
	"github.com/spf13/cobra"
)

var (
	generateSpecFile     string
	generateTemplate     string
	generateOutput       string
	generateIncrement    int
	generateLongPartNo   bool
	generateParent       string
	generateRandomCount  int
	generateFields       []string
	generateManufactured int
	generateForceFlag    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a BOM .xlsx file from a template.",
	Long: `Generate a BOM .xlsx file from a template. The part tree comes from
a YAML build spec file (--spec), from quick random generation
(--parent with --random), or from interactive prompts.`,
	Run: func(cmd *cobra.Command, args []string) {
		templatePath := generateTemplate
		if len(templatePath) == 0 {
			templatePath = settings.TemplatePath()
		}
		pretty.Guard(len(templatePath) > 0, 1, "Give a template file with --template (or set it in settings).")
		if len(generateOutput) == 0 {
			generateOutput = settings.OutputPath()
		}
		if generateIncrement == 0 {
			generateIncrement = settings.SequenceIncrement()
		}

		workbook, headers, err := bomfile.LoadTemplate(templatePath)
		pretty.Guard(err == nil, 2, "%v", err)
		defer workbook.Close()
		guardHeaders(headers)

		spec, err := buildSpecification()
		pretty.Guard(err == nil, 1, "%v", err)

		rows, err := builder.Assemble(spec, generator.NewAllocator())
		pretty.Guard(err == nil, 3, "%v", err)

		if issues := builder.Validate(rows); len(issues) > 0 {
			for _, issue := range issues {
				common.Log("%s- %v%s", pretty.Red, issue, pretty.Reset)
			}
			pretty.Exit(4, "Found %d problems. No output written.", len(issues))
		}

		err = bomfile.WriteRows(workbook, rows)
		pretty.Guard(err == nil, 2, "%v", err)
		err = workbook.SaveAs(generateOutput)
		pretty.Guard(err == nil, 2, "Cannot save output %q: %v", generateOutput, err)

		journal.Post("generate", generateOutput, "%d rows under parent %s",
			len(rows), spec.Parent.Value(schema.PartNo))
		showGenerateSummary(rows)
		pretty.Ok()
	},
}

func guardHeaders(headers []string) {
	err := bomfile.CheckHeaders(headers)
	if err == nil {
		return
	}
	mismatch, ok := err.(*bomfile.SchemaMismatchError)
	pretty.Guard(ok, 2, "%v", err)
	pretty.Warning("Template headers don't match the expected format.")
	common.Log("Found:    %v", mismatch.Found)
	common.Log("Expected: %v", mismatch.Expected)
	confirmed, err := wizard.Confirm("Continue anyway?", generateForceFlag)
	pretty.Guard(err == nil, 2, "%v", err)
	pretty.Guard(confirmed, 2, "Template rejected. Fix the header row or use --force.")
}

func buildSpecification() (*builder.BuildSpec, error) {
	if len(generateSpecFile) > 0 {
		spec, err := bomfile.LoadBuildSpec(generateSpecFile)
		if err != nil {
			return nil, err
		}
		if spec.Increment == 0 {
			spec.Increment = generateIncrement
		}
		return spec, nil
	}
	if generateRandomCount > 0 {
		return quickRandomSpecification()
	}
	if !pretty.Interactive {
		return nil, fmt.Errorf("no terminal to prompt on; give --spec, or --parent with --random")
	}
	return wizard.CollectBuildSpec(generateIncrement, generateLongPartNo)
}

// quickRandomSpecification covers the common case of one parent with N
// random children, entirely from flags.
func quickRandomSpecification() (*builder.BuildSpec, error) {
	if len(generateParent) == 0 {
		return nil, fmt.Errorf("--random needs --parent for the top part number")
	}
	fields, err := generator.FieldsNamed(generateFields)
	if err != nil {
		return nil, err
	}
	parent := new(schema.Row)
	parent.Set(schema.PartNo, generateParent)
	parent.Set(schema.Description, generateParent+" Assembly")
	parent.Set(schema.Quantity, "1")
	parent.Set(schema.UM, "EA")
	parent.Set(schema.Productline, "FG")
	parent.Set(schema.Source, "M")
	return &builder.BuildSpec{
		Parent: parent,
		Level1: builder.LevelOne{
			Random: &builder.RandomConfig{
				Count:        generateRandomCount,
				Fields:       fields,
				Manufactured: generateManufactured,
			},
		},
		Increment:  generateIncrement,
		LongPartNo: generateLongPartNo,
	}, nil
}

func showGenerateSummary(rows []*schema.Row) {
	counts := make(map[string]int)
	for _, row := range rows {
		counts[row.Value(schema.Level)] += 1
	}
	pretty.Box("BOM generated", []string{
		fmt.Sprintf("Parent (Level 0): %d", counts["0"]),
		fmt.Sprintf("Level 1: %d", counts["1"]),
		fmt.Sprintf("Level 2: %d", counts["2"]),
		fmt.Sprintf("Level 3: %d", counts["3"]),
		fmt.Sprintf("Total rows: %d", len(rows)),
		fmt.Sprintf("Output: %s", generateOutput),
	})
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&generateSpecFile, "spec", "s", "", "YAML build spec file describing the part tree")
	generateCmd.Flags().StringVarP(&generateTemplate, "template", "t", "", "template .xlsx file path")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output .xlsx file path")
	generateCmd.Flags().IntVarP(&generateIncrement, "increment", "i", 0, "sequence increment (1, 10, 100, 1000 or 10000)")
	generateCmd.Flags().BoolVar(&generateLongPartNo, "long-partno", false, "use 20-50 character part numbers for generated parts")
	generateCmd.Flags().StringVarP(&generateParent, "parent", "p", "", "parent part number for quick random generation")
	generateCmd.Flags().IntVarP(&generateRandomCount, "random", "r", 0, "generate this many random Level 1 components")
	generateCmd.Flags().StringSliceVarP(&generateFields, "fields", "f", []string{"PartNo", "Description", "Quantity", "Cost"}, "columns to populate on random parts")
	generateCmd.Flags().IntVar(&generateManufactured, "manufactured", 0, "how many random parts get Source Manufactured to Job (F)")
	generateCmd.Flags().BoolVar(&generateForceFlag, "force", false, "continue even when template headers don't match")
}
