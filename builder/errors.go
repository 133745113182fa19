package builder

import (
	"fmt"
	"strings"

	"github.com/bomcompare/bomgen/schema"
)

// GatingError reports an attempt to add Level 2 or Level 3 rows when no
// part at the level above has a Manufactured source. It is guidance for
// the user, not a crash.
type GatingError struct {
	Level int
}

func (it *GatingError) Error() string {
	return fmt.Sprintf(
		"no Level %d part has a Manufactured source; at least one part must be Manufactured to Stock (M) or Manufactured to Job (F) to parent Level %d rows",
		it.Level-1, it.Level)
}

// BadParentError reports a group bound to a parent part that is not an
// eligible Manufactured part at the level above.
type BadParentError struct {
	Level  int
	Parent string
}

func (it *BadParentError) Error() string {
	return fmt.Sprintf("Level %d group parent %q is not a manufactured Level %d part", it.Level, it.Parent, it.Level-1)
}

// MissingFieldError names a row missing one or more required fields.
type MissingFieldError struct {
	PartNo string
	Fields []string
}

func (it *MissingFieldError) Error() string {
	return fmt.Sprintf("part %q: missing %s", it.PartNo, strings.Join(it.Fields, ", "))
}

// CategoryRuleError names a row whose Category and Source codes are
// incompatible.
type CategoryRuleError struct {
	PartNo   string
	Category string
	Source   string
}

func (it *CategoryRuleError) Error() string {
	label, _ := schema.CategoryLabel(it.Category)
	return fmt.Sprintf("part %q: %s must have Source of %s", it.PartNo, label, schema.CategorySourceWant(it.Category))
}

// ValidationErrors is the batch of everything wrong with an assembled
// row sequence. Validation never stops at the first problem so the user
// can fix every row in one pass.
type ValidationErrors []error

func (it ValidationErrors) Error() string {
	parts := make([]string, len(it))
	for index, err := range it {
		parts[index] = err.Error()
	}
	return strings.Join(parts, "; ")
}
