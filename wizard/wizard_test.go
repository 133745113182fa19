package wizard

import (
	"testing"

	"github.com/bomcompare/bomgen/builder"
	"github.com/bomcompare/bomgen/hamlet"
	"github.com/bomcompare/bomgen/schema"
)

func TestValidators(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	must_be.True(anyValue(""))
	must_be.True(anyValue("anything"))

	required := notEmpty("needed")
	wont_be.True(required(""))
	wont_be.True(required("   "))
	must_be.True(required("TOP"))

	member := memberValidation([]string{"", "P", "X"}, "pick one")
	must_be.True(member(""))
	must_be.True(member("P"))
	wont_be.True(member("p"))
	wont_be.True(member("Z"))

	count := numberValidation(1, 50, "out of range")
	must_be.True(count("1"))
	must_be.True(count(" 50 "))
	wont_be.True(count("0"))
	wont_be.True(count("51"))
	wont_be.True(count("many"))
}

func TestFieldListValidation(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	valid := fieldListValidation()
	must_be.True(valid("PartNo, Description,Quantity"))
	must_be.True(valid(""))
	wont_be.True(valid("PartNo, Bogus"))
}

func TestSplitFields(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	must_be.Equal([]string{"PartNo", "Cost"}, splitFields(" PartNo , Cost "))
	must_be.Equal([]string(nil), splitFields(" , ,, "))
	must_be.Equal([]string{"One"}, splitFields("One"))
}

func TestRandomUnblocks(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	wont_be.True(randomUnblocks(nil))
	wont_be.True(randomUnblocks(&builder.RandomConfig{Count: 5}))
	must_be.True(randomUnblocks(&builder.RandomConfig{Count: 5, Manufactured: 2}))
}

func TestEligibleParents(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	must_be.Equal(0, len(eligibleParents(nil)))

	stocked := new(schema.Row)
	stocked.Set(schema.PartNo, "M100")
	stocked.Set(schema.Source, "M")
	jobbed := new(schema.Row)
	jobbed.Set(schema.PartNo, "F200")
	jobbed.Set(schema.Source, "F")
	bought := new(schema.Row)
	bought.Set(schema.PartNo, "P300")
	bought.Set(schema.Source, "P")

	must_be.Equal([]string{"M100", "F200"}, eligibleParents([]*schema.Row{stocked, jobbed, bought}))
}
