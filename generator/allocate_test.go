package generator

import (
	"errors"
	"testing"

	"github.com/bomcompare/bomgen/hamlet"
)

func TestAllocationRetryCeiling(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	calls := 0
	stuck := func() string {
		calls += 1
		return "SAME"
	}
	partno, err := allocate(stuck, "SAME")
	wont_be.Nil(err)
	must_be.Equal("", partno)
	must_be.True(errors.Is(err, ErrAllocatorExhausted))
	must_be.Equal(allocationAttempts, calls)
}

func TestAllocationTakesFirstNonCollidingCandidate(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	candidates := []string{"SAME", "SAME", "OTHER"}
	next := func() string {
		candidate := candidates[0]
		candidates = candidates[1:]
		return candidate
	}
	partno, err := allocate(next, "SAME")
	must_be.Nil(err)
	must_be.Equal("OTHER", partno)
}
