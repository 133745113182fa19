package schema

import (
	"fmt"
	"strconv"
)

// Column identifies one of the fixed BOM Compare import columns.
type Column int

const (
	PartNo Column = iota
	Revision
	Description
	AltDescription1
	AltDescription2
	DescExtra
	Quantity
	IssueUM
	ConsumptionConv
	UM
	Cost
	Source
	Drawing
	Leadtime
	Level
	Location
	Memo1
	Memo2
	Parent
	Productline
	Sequence
	SortCode
	Tag
	Category
	BomComplete
	BomComments
	Router

	columnCount
)

var columnNames = [columnCount]string{
	"PartNo", "Revision", "Description", "AltDescription1", "AltDescription2", "DescExtra",
	"Quantity", "IssueUM", "ConsumptionConv", "UM", "Cost", "Source", "Drawing", "Leadtime",
	"Level", "Location", "Memo1", "Memo2", "Parent", "Productline", "Sequence", "SortCode",
	"Tag", "Category", "BomComplete", "BomComments", "Router",
}

var columnsByName = make(map[string]Column, columnCount)

func init() {
	for index, name := range columnNames {
		columnsByName[name] = Column(index)
	}
}

func (it Column) String() string {
	if it < 0 || it >= columnCount {
		return fmt.Sprintf("Column(%d)", int(it))
	}
	return columnNames[it]
}

// ColumnByName resolves a header name to its column, case-sensitively.
func ColumnByName(name string) (Column, bool) {
	column, ok := columnsByName[name]
	return column, ok
}

// Columns returns every column in template order.
func Columns() []Column {
	result := make([]Column, columnCount)
	for index := range result {
		result[index] = Column(index)
	}
	return result
}

// HeaderNames returns the 27 template header names in template order.
func HeaderNames() []string {
	result := make([]string, columnCount)
	copy(result, columnNames[:])
	return result
}

// RequiredColumns must carry a value on every output row. Parent is the
// one exception: it may be the empty string, but never absent.
var RequiredColumns = []Column{PartNo, Quantity, Parent, Sequence}

// Row is one output row: a value per column, where each column is
// either set (possibly to the empty string) or absent. Absent columns
// are written as blank cells.
type Row struct {
	values  [columnCount]string
	present [columnCount]bool
}

func (it *Row) Set(column Column, value string) {
	it.values[column] = value
	it.present[column] = true
}

func (it *Row) SetInt(column Column, value int) {
	it.Set(column, strconv.Itoa(value))
}

func (it *Row) SetFloat(column Column, value float64) {
	it.Set(column, strconv.FormatFloat(value, 'f', 2, 64))
}

func (it *Row) Clear(column Column) {
	it.values[column] = ""
	it.present[column] = false
}

func (it *Row) Has(column Column) bool {
	return it.present[column]
}

func (it *Row) Value(column Column) string {
	return it.values[column]
}

// Cells returns the row's values in template column order, blanks for
// absent columns.
func (it *Row) Cells() []string {
	result := make([]string, columnCount)
	for index := range result {
		result[index] = it.values[index]
	}
	return result
}
