package generator

import (
	"fmt"
	"math"

	"github.com/bomcompare/bomgen/schema"
)

// Sample pools for plausible field values.
var (
	locations    = []string{"GS", "WH", "FL", "RM", "WS", "DC"}
	productlines = []string{"JM", "FG", "RM", "CM", "CP"}
	sources      = []string{"M", "P", "B", "C"}
	sortcodes    = []string{"COMPBX", "HARDWARE", "LEVEL-1", "LEVEL-2", "ELECTRIC", "ELWR", "SHTCRS", "BARSS", "SHTALUM"}
	units        = []string{"EA", "FT", "M", "KG", "L", "P", "J", "F", "SF", "SI"}
	descExtras   = []string{"EXTRA", "OPTION", "VARIANT"}
	tags         = []string{"TG", "TAG1", "TAG2"}
)

// Fields selects which columns a generated row carries. A nil or empty
// set selects every column.
type Fields map[schema.Column]bool

func AllFields() Fields {
	result := make(Fields, len(schema.Columns()))
	for _, column := range schema.Columns() {
		result[column] = true
	}
	return result
}

func FieldsOf(columns ...schema.Column) Fields {
	result := make(Fields, len(columns))
	for _, column := range columns {
		result[column] = true
	}
	return result
}

// FieldsNamed resolves header names into a field set. Unknown names are
// an error so typos in build specs surface instead of silently dropping
// a column.
func FieldsNamed(names []string) (Fields, error) {
	result := make(Fields, len(names))
	for _, name := range names {
		column, ok := schema.ColumnByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown column name %q", name)
		}
		result[column] = true
	}
	return result, nil
}

// With returns a copy of the field set extended with the given columns.
func (it Fields) With(columns ...schema.Column) Fields {
	result := make(Fields, len(it)+len(columns))
	for column := range it {
		result[column] = true
	}
	for _, column := range columns {
		result[column] = true
	}
	return result
}

func (it *Allocator) choice(pool []string) string {
	return pool[it.random.Intn(len(pool))]
}

func (it *Allocator) between(low, high int) int {
	return low + it.random.Intn(high-low+1)
}

func (it *Allocator) uniform(low, high float64) float64 {
	value := low + it.random.Float64()*(high-low)
	return math.Round(value*100) / 100
}

// Generate produces one synthetic child row under the given parent.
// Only the selected fields are set; the rest stay absent and come out
// blank when written. The sequence value is provisional: the builder
// reassigns sequences in final order.
func (it *Allocator) Generate(parent string, sequence, level int, fields Fields, longForm bool) (*schema.Row, error) {
	partno, err := it.PartNumberFor(parent, longForm)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		fields = AllFields()
	}

	row := new(schema.Row)
	if fields[schema.PartNo] {
		row.Set(schema.PartNo, partno)
	}
	if fields[schema.Revision] {
		row.Set(schema.Revision, fmt.Sprintf("R%02d", it.between(1, 5)))
	}
	if fields[schema.Description] {
		row.Set(schema.Description, fmt.Sprintf("%s Desc", partno))
	}
	if fields[schema.AltDescription1] {
		row.Set(schema.AltDescription1, fmt.Sprintf("ALT-DESC-%d", it.between(1, 3)))
	}
	if fields[schema.AltDescription2] {
		row.Set(schema.AltDescription2, fmt.Sprintf("ALT-DESC-%d", it.between(1, 3)))
	}
	if fields[schema.DescExtra] {
		row.Set(schema.DescExtra, it.choice(descExtras))
	}
	if fields[schema.Quantity] {
		row.SetInt(schema.Quantity, it.between(1, 10))
	}
	if fields[schema.IssueUM] {
		row.Set(schema.IssueUM, "EA")
	}
	if fields[schema.ConsumptionConv] {
		row.SetFloat(schema.ConsumptionConv, it.uniform(0.25, 2.0))
	}
	if fields[schema.UM] {
		row.Set(schema.UM, it.choice(units))
	}
	if fields[schema.Cost] {
		row.SetFloat(schema.Cost, it.uniform(0.5, 250.0))
	}
	if fields[schema.Source] {
		row.Set(schema.Source, it.choice(sources))
	}
	if fields[schema.Drawing] {
		row.Set(schema.Drawing, fmt.Sprintf("DRAW%d", it.between(1, 99)))
	}
	if fields[schema.Leadtime] {
		row.SetInt(schema.Leadtime, it.between(1, 21))
	}
	if fields[schema.Level] {
		row.SetInt(schema.Level, level)
	}
	if fields[schema.Location] {
		row.Set(schema.Location, it.choice(locations))
	}
	if fields[schema.Memo1] {
		row.Set(schema.Memo1, fmt.Sprintf("MEM%d", it.between(1, 3)))
	}
	if fields[schema.Memo2] {
		row.Set(schema.Memo2, fmt.Sprintf("MEM%d", it.between(1, 3)))
	}
	if fields[schema.Parent] {
		row.Set(schema.Parent, parent)
	}
	if fields[schema.Productline] {
		row.Set(schema.Productline, it.choice(productlines))
	}
	if fields[schema.Sequence] {
		if sequence > 0 {
			row.SetInt(schema.Sequence, sequence*100)
		} else {
			row.SetInt(schema.Sequence, 100)
		}
	}
	if fields[schema.SortCode] {
		row.Set(schema.SortCode, it.choice(sortcodes))
	}
	if fields[schema.Tag] {
		row.Set(schema.Tag, it.choice(tags))
	}
	if fields[schema.Category] {
		if it.random.Float64() > 0.2 {
			row.Set(schema.Category, "Y")
		} else {
			row.Set(schema.Category, "")
		}
	}
	if fields[schema.BomComplete] {
		row.Set(schema.BomComplete, "")
	}
	if fields[schema.BomComments] {
		row.Set(schema.BomComments, fmt.Sprintf("BOMCOMMENTS-%d", it.between(1, 5)))
	}
	if fields[schema.Router] {
		row.Set(schema.Router, "")
	}
	return row, nil
}

// Batch produces count rows under one parent with provisional sequence
// indexes 1..count.
func (it *Allocator) Batch(parent string, count int, fields Fields, level int, longForm bool) ([]*schema.Row, error) {
	result := make([]*schema.Row, 0, count)
	for index := 0; index < count; index += 1 {
		row, err := it.Generate(parent, index+1, level, fields, longForm)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, nil
}
