package generator_test

import (
	"strconv"
	"testing"

	"github.com/bomcompare/bomgen/generator"
	"github.com/bomcompare/bomgen/hamlet"
	"github.com/bomcompare/bomgen/schema"
)

func TestBatchShape(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	alloc := generator.NewAllocator()
	rows, err := alloc.Batch("A001", 5, nil, 1, false)
	must_be.Nil(err)
	must_be.Equal(5, len(rows))
	for index, row := range rows {
		wont_be.Equal("A001", row.Value(schema.PartNo))
		must_be.Equal("A001", row.Value(schema.Parent))
		must_be.Equal("1", row.Value(schema.Level))
		must_be.Equal(strconv.Itoa((index+1)*100), row.Value(schema.Sequence))
	}
}

func TestFieldSelectionOmitsTheRest(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	alloc := generator.NewAllocator()
	fields := generator.FieldsOf(schema.PartNo, schema.Description, schema.Quantity)
	row, err := alloc.Generate("TOP", 1, 1, fields, false)
	must_be.Nil(err)
	must_be.True(row.Has(schema.PartNo))
	must_be.True(row.Has(schema.Description))
	must_be.True(row.Has(schema.Quantity))
	wont_be.True(row.Has(schema.Cost))
	wont_be.True(row.Has(schema.Parent))
	wont_be.True(row.Has(schema.Revision))
	wont_be.True(row.Has(schema.Sequence))
}

func TestEmptyFieldSelectionMeansEverything(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	alloc := generator.NewAllocator()
	row, err := alloc.Generate("TOP", 1, 2, generator.Fields{}, false)
	must_be.Nil(err)
	for _, column := range schema.Columns() {
		must_be.True(row.Has(column))
	}
	must_be.Equal(row.Value(schema.PartNo)+" Desc", row.Value(schema.Description))
	must_be.Equal("2", row.Value(schema.Level))
}

func TestGeneratedValuesStayInRange(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	alloc := generator.NewAllocator()
	rows, err := alloc.Batch("TOP", 50, nil, 1, false)
	must_be.Nil(err)
	for _, row := range rows {
		quantity, err := strconv.Atoi(row.Value(schema.Quantity))
		must_be.Nil(err)
		must_be.True(quantity >= 1 && quantity <= 10)
		cost, err := strconv.ParseFloat(row.Value(schema.Cost), 64)
		must_be.Nil(err)
		must_be.True(cost >= 0.5 && cost <= 250.0)
		conv, err := strconv.ParseFloat(row.Value(schema.ConsumptionConv), 64)
		must_be.Nil(err)
		must_be.True(conv >= 0.25 && conv <= 2.0)
		category := row.Value(schema.Category)
		must_be.True(category == "Y" || category == "")
	}
}

func TestFieldsNamedRejectsUnknownColumns(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	fields, err := generator.FieldsNamed([]string{"PartNo", "Cost"})
	must_be.Nil(err)
	must_be.Equal(2, len(fields))

	_, err = generator.FieldsNamed([]string{"PartNo", "NoSuchColumn"})
	wont_be.Nil(err)
}

func TestGroupDefaults(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	alloc := generator.NewAllocator()
	rows, err := alloc.Batch("TOP", 4, nil, 1, false)
	must_be.Nil(err)
	generator.ApplyGroupDefaults(rows, 2, "R03", "GS", true, false)

	for index, row := range rows {
		must_be.Equal("EA", row.Value(schema.UM))
		must_be.Equal("", row.Value(schema.Category))
		must_be.Equal("R03", row.Value(schema.Revision))
		wont_be.True(row.Has(schema.Location))
		if index < 2 {
			must_be.Equal("F", row.Value(schema.Source))
			must_be.Equal("CP", row.Value(schema.Productline))
		} else {
			must_be.Equal("J", row.Value(schema.Source))
			must_be.Equal("CM", row.Value(schema.Productline))
		}
	}
}
