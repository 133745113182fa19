package generator

import "github.com/bomcompare/bomgen/schema"

// ApplyGroupDefaults overwrites the presentation defaults on a freshly
// generated group the way manual entry would have filled them: unit EA,
// Normal category, the first manufactured count of rows sourced as
// Manufactured to Job (F) and the rest as Purchase to Job (J), with the
// productline following the source. Revision and Location take the
// parent values when the corresponding propagate flag is set, otherwise
// they are left blank.
func ApplyGroupDefaults(rows []*schema.Row, manufactured int, revision, location string, applyRevision, applyLocation bool) {
	for index, row := range rows {
		row.Set(schema.UM, "EA")
		row.Set(schema.Category, "")
		if index < manufactured {
			row.Set(schema.Source, "F")
			row.Set(schema.Productline, "CP")
		} else {
			row.Set(schema.Source, "J")
			row.Set(schema.Productline, "CM")
		}
		applyOrClear(row, schema.Revision, revision, applyRevision)
		applyOrClear(row, schema.Location, location, applyLocation)
	}
}

func applyOrClear(row *schema.Row, column schema.Column, value string, apply bool) {
	if apply && len(value) > 0 {
		row.Set(column, value)
	} else {
		row.Clear(column)
	}
}
