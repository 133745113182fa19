package bomfile

import (
	"fmt"

	"github.com/bomcompare/bomgen/diff"
	"github.com/xuri/excelize/v2"
)

const summarySheet = "Summary"

var itemSheetHeaders = []string{"Part Number", "Description", "Quantity", "Unit", "Reference Designator", "Notes"}
var modifiedSheetHeaders = []string{"Part Number", "Field", "Old Value", "New Value"}

// WriteComparison renders a comparison into a multi sheet report: a
// Summary sheet with counts, Added/Removed item sheets only when non
// empty, and a Modified sheet with one row per changed field.
func WriteComparison(comparison *diff.Comparison, path string) error {
	workbook := excelize.NewFile()
	defer workbook.Close()
	if err := workbook.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	style, err := headerStyle(workbook)
	if err != nil {
		return err
	}
	if err := writeSummary(workbook, comparison); err != nil {
		return err
	}
	if len(comparison.Added) > 0 {
		if err := writeItemSheet(workbook, "Added Items", comparison.Added, style); err != nil {
			return err
		}
	}
	if len(comparison.Removed) > 0 {
		if err := writeItemSheet(workbook, "Removed Items", comparison.Removed, style); err != nil {
			return err
		}
	}
	if len(comparison.Modified) > 0 {
		if err := writeModifiedSheet(workbook, comparison.Modified, style); err != nil {
			return err
		}
	}
	if err := workbook.SaveAs(path); err != nil {
		return fmt.Errorf("cannot save comparison report %q: %w", path, err)
	}
	return nil
}

func writeSummary(workbook *excelize.File, comparison *diff.Comparison) error {
	title, err := workbook.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return err
	}
	if err := workbook.SetCellValue(summarySheet, "A1", "BOM Comparison Summary"); err != nil {
		return err
	}
	if err := workbook.SetCellStyle(summarySheet, "A1", "A1", title); err != nil {
		return err
	}
	lines := []struct {
		label string
		value interface{}
	}{
		{"BOM 1:", comparison.Old.Name},
		{"BOM 2:", comparison.New.Name},
		{"", nil},
		{"Added Items:", len(comparison.Added)},
		{"Removed Items:", len(comparison.Removed)},
		{"Modified Items:", len(comparison.Modified)},
		{"Unchanged Items:", len(comparison.Unchanged)},
	}
	at := 3
	for _, line := range lines {
		if len(line.label) == 0 {
			at += 1
			continue
		}
		if err := workbook.SetCellValue(summarySheet, fmt.Sprintf("A%d", at), line.label); err != nil {
			return err
		}
		if err := workbook.SetCellValue(summarySheet, fmt.Sprintf("B%d", at), line.value); err != nil {
			return err
		}
		at += 1
	}
	return nil
}

func writeHeaders(workbook *excelize.File, sheet string, headers []string, style int) error {
	for index, header := range headers {
		column, err := excelize.ColumnNumberToName(index + 1)
		if err != nil {
			return err
		}
		cell := column + "1"
		if err := workbook.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
		if err := workbook.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

func writeItemSheet(workbook *excelize.File, sheet string, items []diff.Item, style int) error {
	if _, err := workbook.NewSheet(sheet); err != nil {
		return err
	}
	if err := writeHeaders(workbook, sheet, itemSheetHeaders, style); err != nil {
		return err
	}
	for index, item := range items {
		anchor, err := excelize.CoordinatesToCellName(1, index+2)
		if err != nil {
			return err
		}
		values := []interface{}{
			item.PartNumber, item.Description, item.Quantity, item.Unit,
			item.ReferenceDesignator, item.Notes,
		}
		if err := workbook.SetSheetRow(sheet, anchor, &values); err != nil {
			return err
		}
	}
	return nil
}

func writeModifiedSheet(workbook *excelize.File, pairs []diff.Pair, style int) error {
	sheet := "Modified Items"
	if _, err := workbook.NewSheet(sheet); err != nil {
		return err
	}
	if err := writeHeaders(workbook, sheet, modifiedSheetHeaders, style); err != nil {
		return err
	}
	at := 2
	for _, pair := range pairs {
		for _, change := range pair.Changes() {
			anchor, err := excelize.CoordinatesToCellName(1, at)
			if err != nil {
				return err
			}
			values := []interface{}{pair.Old.PartNumber, change.Field, change.Old, change.New}
			if err := workbook.SetSheetRow(sheet, anchor, &values); err != nil {
				return err
			}
			at += 1
		}
	}
	return nil
}
