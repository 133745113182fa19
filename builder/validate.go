package builder

import "github.com/bomcompare/bomgen/schema"

// Validate checks every assembled row for required field presence and
// the category/source compatibility rule. All violations across all
// rows are collected; the caller gets the whole batch at once. A nil
// result means the sequence is safe to write.
func Validate(rows []*schema.Row) ValidationErrors {
	var collected ValidationErrors
	for _, row := range rows {
		if missing := missingFields(row); len(missing) > 0 {
			collected = append(collected, &MissingFieldError{
				PartNo: row.Value(schema.PartNo),
				Fields: missing,
			})
		}
		category := row.Value(schema.Category)
		source := row.Value(schema.Source)
		if !schema.CategorySourceOK(category, source) {
			collected = append(collected, &CategoryRuleError{
				PartNo:   row.Value(schema.PartNo),
				Category: category,
				Source:   source,
			})
		}
	}
	return collected
}

// missingFields reports which required columns a row is lacking. Parent
// may legitimately be the empty string (top level row or a cleared self
// reference) but must be present.
func missingFields(row *schema.Row) []string {
	var missing []string
	for _, column := range schema.RequiredColumns {
		if !row.Has(column) {
			missing = append(missing, column.String())
			continue
		}
		if column != schema.Parent && len(row.Value(column)) == 0 {
			missing = append(missing, column.String())
		}
	}
	return missing
}
