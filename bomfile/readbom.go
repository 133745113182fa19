package bomfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bomcompare/bomgen/common"
	"github.com/bomcompare/bomgen/diff"
	"github.com/xuri/excelize/v2"
)

// Header aliases accepted when reading flat BOM files: generated files
// carry the template names, exported reports carry the report names.
var (
	partNumberHeaders  = []string{"PartNo", "Part Number"}
	descriptionHeaders = []string{"Description"}
	quantityHeaders    = []string{"Quantity"}
	unitHeaders        = []string{"UM", "Unit"}
	referenceHeaders   = []string{"Reference Designator"}
	notesHeaders       = []string{"Notes", "BomComments"}
)

// ReadBOM loads a flat BOM spreadsheet into the comparison domain. The
// Template sheet is preferred; otherwise the first sheet is read. Rows
// without a part number are skipped.
func ReadBOM(path string) (*diff.BOM, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open BOM file %q: %w", path, err)
	}
	defer workbook.Close()

	sheet := SheetName
	if index, err := workbook.GetSheetIndex(SheetName); err != nil || index < 0 {
		sheet = workbook.GetSheetName(0)
	}
	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("cannot read sheet %q of %q: %w", sheet, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("BOM file %q has no header row", path)
	}

	columns := headerIndex(rows[0])
	partAt, ok := columns.any(partNumberHeaders)
	if !ok {
		return nil, fmt.Errorf("BOM file %q has no part number column", path)
	}

	bom := &diff.BOM{
		Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Date: modifiedTime(path),
	}
	for _, record := range rows[1:] {
		partNumber := strings.TrimSpace(cellAt(record, partAt))
		if len(partNumber) == 0 {
			continue
		}
		item := diff.Item{PartNumber: partNumber, Unit: "EA"}
		if at, ok := columns.any(descriptionHeaders); ok {
			item.Description = cellAt(record, at)
		}
		if at, ok := columns.any(quantityHeaders); ok {
			item.Quantity = parseQuantity(cellAt(record, at))
		}
		if at, ok := columns.any(unitHeaders); ok {
			if unit := strings.TrimSpace(cellAt(record, at)); len(unit) > 0 {
				item.Unit = unit
			}
		}
		if at, ok := columns.any(referenceHeaders); ok {
			item.ReferenceDesignator = cellAt(record, at)
		}
		if at, ok := columns.any(notesHeaders); ok {
			item.Notes = cellAt(record, at)
		}
		bom.Add(item)
	}
	common.Debug("Read %d items from %q (sheet %q).", bom.Len(), path, sheet)
	return bom, nil
}

type headerLookup map[string]int

func headerIndex(headers []string) headerLookup {
	result := make(headerLookup, len(headers))
	for index, name := range headers {
		result[name] = index
	}
	return result
}

func (it headerLookup) any(names []string) (int, bool) {
	for _, name := range names {
		if index, ok := it[name]; ok {
			return index, true
		}
	}
	return 0, false
}

func cellAt(record []string, index int) string {
	if index < len(record) {
		return record[index]
	}
	return ""
}

func parseQuantity(text string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0
	}
	return value
}

func modifiedTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Now()
	}
	return info.ModTime()
}
