package schema_test

import (
	"testing"

	"github.com/bomcompare/bomgen/hamlet"
	"github.com/bomcompare/bomgen/schema"
)

func TestHeaderNamesAreFixed(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	headers := schema.HeaderNames()
	must_be.Equal(27, len(headers))
	must_be.Equal("PartNo", headers[0])
	must_be.Equal("Quantity", headers[6])
	must_be.Equal("Parent", headers[18])
	must_be.Equal("Sequence", headers[20])
	must_be.Equal("Router", headers[26])

	column, ok := schema.ColumnByName("ConsumptionConv")
	must_be.True(ok)
	must_be.Equal(schema.ConsumptionConv, column)
	_, ok = schema.ColumnByName("consumptionconv")
	wont_be.True(ok)
}

func TestHeadersMatchIsExact(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	expected := schema.HeaderNames()
	must_be.True(schema.HeadersMatch(schema.HeaderNames(), expected))

	truncated := expected[:26]
	wont_be.True(schema.HeadersMatch(truncated, expected))

	lowered := schema.HeaderNames()
	lowered[0] = "partno"
	wont_be.True(schema.HeadersMatch(lowered, expected))

	swapped := schema.HeaderNames()
	swapped[0], swapped[1] = swapped[1], swapped[0]
	wont_be.True(schema.HeadersMatch(swapped, expected))
}

func TestRowTracksFieldPresence(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	row := new(schema.Row)
	wont_be.True(row.Has(schema.Parent))
	row.Set(schema.Parent, "")
	must_be.True(row.Has(schema.Parent))
	must_be.Equal("", row.Value(schema.Parent))

	row.SetFloat(schema.Cost, 2.5)
	must_be.Equal("2.50", row.Value(schema.Cost))
	row.Clear(schema.Cost)
	wont_be.True(row.Has(schema.Cost))

	cells := row.Cells()
	must_be.Equal(27, len(cells))
}

func TestCategorySourceRule(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	must_be.True(schema.CategorySourceOK("P", "M"))
	must_be.True(schema.CategorySourceOK("P", "F"))
	wont_be.True(schema.CategorySourceOK("P", "P"))
	wont_be.True(schema.CategorySourceOK("P", ""))

	must_be.True(schema.CategorySourceOK("X", "P"))
	wont_be.True(schema.CategorySourceOK("X", "M"))
	wont_be.True(schema.CategorySourceOK("X", "J"))

	must_be.True(schema.CategorySourceOK("", "G"))
	must_be.True(schema.CategorySourceOK("R", ""))
	must_be.True(schema.CategorySourceOK("1", "C"))
}

func TestCodeTablesAreBidirectional(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	code, ok := schema.CategoryCode("Phantom")
	must_be.True(ok)
	must_be.Equal("P", code)
	label, ok := schema.CategoryLabel("X")
	must_be.True(ok)
	must_be.Equal("Exclude", label)

	code, ok = schema.SourceCode("Manufactured to Job")
	must_be.True(ok)
	must_be.Equal("F", code)
	label, ok = schema.SourceLabel("G")
	must_be.True(ok)
	must_be.Equal("Consign to Job", label)

	_, ok = schema.SourceCode("Bogus")
	wont_be.True(ok)

	must_be.True(schema.Manufactured("M"))
	must_be.True(schema.Manufactured("F"))
	wont_be.True(schema.Manufactured("P"))
	wont_be.True(schema.Manufactured(""))
}
