package diff

import (
	"fmt"
	"sort"
	"time"
)

// Item is one line of a flat bill of materials, keyed by part number.
type Item struct {
	PartNumber          string
	Description         string
	Quantity            float64
	Unit                string
	ReferenceDesignator string
	Notes               string
}

func (it Item) String() string {
	return fmt.Sprintf("%s - %s (Qty: %g)", it.PartNumber, it.Description, it.Quantity)
}

// BOM is a named, versioned, ordered collection of items.
type BOM struct {
	Name    string
	Version string
	Date    time.Time
	Items   []Item
}

func (it *BOM) Add(item Item) {
	it.Items = append(it.Items, item)
}

func (it *BOM) ByPartNumber(partNumber string) (Item, bool) {
	for _, item := range it.Items {
		if item.PartNumber == partNumber {
			return item, true
		}
	}
	return Item{}, false
}

func (it *BOM) Len() int {
	return len(it.Items)
}

// Pair holds the before and after versions of a modified item.
type Pair struct {
	Old Item
	New Item
}

// FieldChange is one detected difference on a modified item, limited to
// the three compared fields.
type FieldChange struct {
	Field string
	Old   string
	New   string
}

// Comparison is a snapshot diff of two BOMs, partitioned into the four
// disjoint sets. It is computed once by Compare and never re-derived if
// the underlying BOMs change afterwards.
type Comparison struct {
	Old       *BOM
	New       *BOM
	Added     []Item
	Removed   []Item
	Modified  []Pair
	Unchanged []Item
}

// Compare builds part number lookups over both BOMs (last write wins on
// duplicates) and partitions the union of keys. An item counts as
// modified when quantity, description, or unit differs; quantity is
// compared by numeric equality with no tolerance. Result slices are
// sorted by part number so reports come out stable.
func Compare(before, after *BOM) *Comparison {
	oldByKey := index(before)
	newByKey := index(after)

	result := &Comparison{Old: before, New: after}
	for _, key := range sortedKeys(oldByKey) {
		item := oldByKey[key]
		other, both := newByKey[key]
		if !both {
			result.Removed = append(result.Removed, item)
			continue
		}
		if changed(item, other) {
			result.Modified = append(result.Modified, Pair{Old: item, New: other})
		} else {
			result.Unchanged = append(result.Unchanged, item)
		}
	}
	for _, key := range sortedKeys(newByKey) {
		if _, both := oldByKey[key]; !both {
			result.Added = append(result.Added, newByKey[key])
		}
	}
	return result
}

// Changes lists the per field differences of a modified pair, old and
// new values rendered as text.
func (it Pair) Changes() []FieldChange {
	var result []FieldChange
	if it.Old.Quantity != it.New.Quantity {
		result = append(result, FieldChange{"Quantity", formatQuantity(it.Old.Quantity), formatQuantity(it.New.Quantity)})
	}
	if it.Old.Description != it.New.Description {
		result = append(result, FieldChange{"Description", it.Old.Description, it.New.Description})
	}
	if it.Old.Unit != it.New.Unit {
		result = append(result, FieldChange{"Unit", it.Old.Unit, it.New.Unit})
	}
	return result
}

func formatQuantity(value float64) string {
	return fmt.Sprintf("%g", value)
}

func changed(before, after Item) bool {
	return before.Quantity != after.Quantity || before.Description != after.Description || before.Unit != after.Unit
}

func index(bom *BOM) map[string]Item {
	result := make(map[string]Item, len(bom.Items))
	for _, item := range bom.Items {
		result[item.PartNumber] = item
	}
	return result
}

func sortedKeys(items map[string]Item) []string {
	result := make([]string, 0, len(items))
	for key := range items {
		result = append(result, key)
	}
	sort.Strings(result)
	return result
}
