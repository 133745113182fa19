package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

const (
	numbersPerPrefix   = 999
	longFormMinimum    = 20
	longFormMaximum    = 50
	allocationAttempts = 64
)

const longFormAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ErrAllocatorExhausted marks an allocation that kept colliding with the
// parent part number past the retry ceiling.
var ErrAllocatorExhausted = errors.New("part number allocator exhausted retry budget")

// Allocator hands out unique part numbers for one generation run. It is
// a per-run value: construct one at the start of a run and discard it at
// the end. Not safe for concurrent use.
type Allocator struct {
	counter int
	random  *rand.Rand
}

func NewAllocator() *Allocator {
	return SeededAllocator(time.Now().UnixNano())
}

func SeededAllocator(seed int64) *Allocator {
	return &Allocator{random: rand.New(rand.NewSource(seed))}
}

// Reset rewinds the sequence so the next short form number is A001.
func (it *Allocator) Reset() {
	it.counter = 0
}

// prefixFrom maps 0..25 to A..Z and continues with two letter prefixes
// AA, AB, ... after that.
func prefixFrom(index int) string {
	if index < 26 {
		return string(rune('A' + index))
	}
	first := (index - 26) / 26
	second := (index - 26) % 26
	return string(rune('A'+first)) + string(rune('A'+second))
}

// Next returns the next short form part number: A001..A999, B001, and
// so on, rolling to two letter prefixes after Z999.
func (it *Allocator) Next() string {
	prefix := prefixFrom(it.counter / numbersPerPrefix)
	number := it.counter%numbersPerPrefix + 1
	it.counter += 1
	return fmt.Sprintf("%s%03d", prefix, number)
}

// NextLong returns a 20 to 50 character unique part number built from a
// zero padded counter prefix and a random alphanumeric suffix.
func (it *Allocator) NextLong() string {
	length := longFormMinimum + it.random.Intn(longFormMaximum-longFormMinimum+1)
	prefix := fmt.Sprintf("P%06d", it.counter)
	it.counter += 1
	need := length - len(prefix)
	if need <= 0 {
		return prefix[:length]
	}
	suffix := make([]byte, need)
	for index := range suffix {
		suffix[index] = longFormAlphabet[it.random.Intn(len(longFormAlphabet))]
	}
	return prefix + string(suffix)
}

// PartNumberFor allocates a part number guaranteed to differ from the
// given parent part number, retrying up to the attempt ceiling.
func (it *Allocator) PartNumberFor(parent string, longForm bool) (string, error) {
	next := it.Next
	if longForm {
		next = it.NextLong
	}
	return allocate(next, parent)
}

func allocate(next func() string, parent string) (string, error) {
	for attempt := 0; attempt < allocationAttempts; attempt += 1 {
		candidate := next()
		if candidate != parent {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w (parent %q)", ErrAllocatorExhausted, parent)
}
