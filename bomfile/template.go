package bomfile

import (
	"fmt"

	"github.com/bomcompare/bomgen/common"
	"github.com/bomcompare/bomgen/schema"
	"github.com/xuri/excelize/v2"
)

// SheetName is the one sheet a template file must carry.
const SheetName = "Template"

const (
	headerFillColor = "366092"
	headerFontColor = "FFFFFF"
	columnWidth     = 15
)

// SchemaMismatchError carries both header lists so the caller can show
// the user exactly how the template drifted. Recoverable: the caller
// may proceed with an explicit override.
type SchemaMismatchError struct {
	Found    []string
	Expected []string
}

func (it *SchemaMismatchError) Error() string {
	return fmt.Sprintf("template headers do not match expected format (%d found, %d expected)", len(it.Found), len(it.Expected))
}

// LoadTemplate opens a template workbook and returns it with the header
// row of its Template sheet. Rows below the header are ignored on read.
func LoadTemplate(path string) (*excelize.File, []string, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open template %q: %w", path, err)
	}
	index, err := workbook.GetSheetIndex(SheetName)
	if err != nil || index < 0 {
		workbook.Close()
		return nil, nil, fmt.Errorf("template %q must contain a sheet named %q", path, SheetName)
	}
	rows, err := workbook.GetRows(SheetName)
	if err != nil {
		workbook.Close()
		return nil, nil, fmt.Errorf("cannot read template %q: %w", path, err)
	}
	var headers []string
	if len(rows) > 0 {
		headers = rows[0]
	}
	return workbook, headers, nil
}

// CheckHeaders verifies a found header row against the fixed schema.
func CheckHeaders(found []string) error {
	expected := schema.HeaderNames()
	if !schema.HeadersMatch(found, expected) {
		return &SchemaMismatchError{Found: found, Expected: expected}
	}
	return nil
}

// WriteRows clears any data rows left in the template and appends the
// assembled rows starting at row 2, one row per part, columns in header
// order, blank cells for absent fields.
func WriteRows(workbook *excelize.File, rows []*schema.Row) error {
	existing, err := workbook.GetRows(SheetName)
	if err != nil {
		return fmt.Errorf("cannot read sheet %q: %w", SheetName, err)
	}
	for line := len(existing); line >= 2; line -= 1 {
		if err := workbook.RemoveRow(SheetName, line); err != nil {
			return fmt.Errorf("cannot clear row %d: %w", line, err)
		}
	}
	for index, row := range rows {
		anchor, err := excelize.CoordinatesToCellName(1, index+2)
		if err != nil {
			return err
		}
		cells := row.Cells()
		values := make([]interface{}, len(cells))
		for at, cell := range cells {
			values[at] = cell
		}
		if err := workbook.SetSheetRow(SheetName, anchor, &values); err != nil {
			return fmt.Errorf("cannot write row %d: %w", index+2, err)
		}
	}
	common.Debug("Wrote %d rows into sheet %q.", len(rows), SheetName)
	return nil
}

// CreateTemplate writes a blank template workbook: the Template sheet
// with the styled 27 column header row and nothing else.
func CreateTemplate(path string) error {
	workbook := excelize.NewFile()
	defer workbook.Close()
	if err := workbook.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}
	style, err := headerStyle(workbook)
	if err != nil {
		return err
	}
	for index, header := range schema.HeaderNames() {
		column, err := excelize.ColumnNumberToName(index + 1)
		if err != nil {
			return err
		}
		cell := column + "1"
		if err := workbook.SetCellValue(SheetName, cell, header); err != nil {
			return err
		}
		if err := workbook.SetCellStyle(SheetName, cell, cell, style); err != nil {
			return err
		}
		if err := workbook.SetColWidth(SheetName, column, column, columnWidth); err != nil {
			return err
		}
	}
	if err := workbook.SaveAs(path); err != nil {
		return fmt.Errorf("cannot save template %q: %w", path, err)
	}
	return nil
}

func headerStyle(workbook *excelize.File) (int, error) {
	return workbook.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: headerFontColor},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#" + headerFillColor}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
}
