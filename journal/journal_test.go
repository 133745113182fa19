package journal_test

import (
	"testing"

	"github.com/bomcompare/bomgen/common"
	"github.com/bomcompare/bomgen/hamlet"
	"github.com/bomcompare/bomgen/journal"
)

func TestUnifyCollapsesWhitespace(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	must_be.Equal("simple", journal.Unify("simple"))
	must_be.Equal("a b c", journal.Unify("  a \t b\n\nc  "))
	must_be.Equal("", journal.Unify(" \t\n "))
}

func TestPostedEventsReadBack(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	t.Setenv(common.BOMGEN_HOME_VARIABLE, t.TempDir())

	events, err := journal.Events()
	must_be.Nil(err)
	must_be.Equal(0, len(events))

	must_be.Nil(journal.Post("generated", "output.xlsx", "%d rows", 42))
	must_be.Nil(journal.Post("compared", "a.xlsx\tvs\tb.xlsx", "+%d -%d", 1, 2))

	events, err = journal.Events()
	must_be.Nil(err)
	must_be.Equal(2, len(events))

	must_be.Equal("generated", events[0].Event)
	must_be.Equal("output.xlsx", events[0].Detail)
	must_be.Equal("42 rows", events[0].Comment)
	must_be.True(events[0].When > 0)
	wont_be.Equal("", events[0].RunID)
	wont_be.Equal(events[0].RunID, events[1].RunID)

	// Tabs inside a detail must not break the line format.
	must_be.Equal("a.xlsx vs b.xlsx", events[1].Detail)
	must_be.Equal("+1 -2", events[1].Comment)
}
