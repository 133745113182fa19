package builder

import (
	"fmt"
	"strings"

	"github.com/bomcompare/bomgen/generator"
	"github.com/bomcompare/bomgen/schema"
)

// requiredRandomColumns are forced into every random field selection so
// generated rows always carry linkage and the required values.
var requiredRandomColumns = []schema.Column{
	schema.PartNo, schema.Quantity, schema.Parent, schema.Sequence, schema.Level,
}

// Assemble flattens a build spec into the final ordered row sequence:
// the top parent (Level 0) first, then every Level 1 row in entry
// order, then Level 2 rows in group-then-entry order, then Level 3.
// Sequence numbers are reassigned per level in final order, propagation
// flags applied, and self-referencing Parent values cleared. The result
// still needs Validate before it is written anywhere.
func Assemble(spec *BuildSpec, alloc *generator.Allocator) ([]*schema.Row, error) {
	if spec.Parent == nil || len(spec.Parent.Value(schema.PartNo)) == 0 {
		return nil, fmt.Errorf("build spec has no top parent part number")
	}
	if !ValidIncrement(spec.Increment) {
		return nil, fmt.Errorf("sequence increment %d is not one of %v", spec.Increment, SequenceIncrements)
	}

	parentPartNo := spec.Parent.Value(schema.PartNo)
	revision := spec.Parent.Value(schema.Revision)
	location := spec.Parent.Value(schema.Location)

	// Top parent uses its own part number as Parent so the import format
	// treats it as a valid parent row.
	spec.Parent.SetInt(schema.Level, 0)
	spec.Parent.SetInt(schema.Sequence, 0)
	spec.Parent.Set(schema.Parent, parentPartNo)

	run := &assembly{
		spec:     spec,
		alloc:    alloc,
		revision: revision,
		location: location,
	}

	level1, err := run.levelOne(parentPartNo)
	if err != nil {
		return nil, err
	}
	level2, err := run.groupedLevel(2, level1, spec.Level2PerParent, spec.Level2Groups, spec.wantsLevel2())
	if err != nil {
		return nil, err
	}
	level3, err := run.groupedLevel(3, level2, spec.Level3PerParent, spec.Level3Groups, spec.wantsLevel3())
	if err != nil {
		return nil, err
	}

	for _, level := range [][]*schema.Row{level1, level2, level3} {
		assignSequences(level, spec.Increment)
		if spec.ApplyRevision {
			overwriteAll(level, schema.Revision, revision)
		}
		if spec.ApplyLocation {
			overwriteAll(level, schema.Location, location)
		}
		clearSelfParents(level)
	}

	result := make([]*schema.Row, 0, 1+len(level1)+len(level2)+len(level3))
	result = append(result, spec.Parent)
	result = append(result, level1...)
	result = append(result, level2...)
	result = append(result, level3...)
	return result, nil
}

type assembly struct {
	spec     *BuildSpec
	alloc    *generator.Allocator
	revision string
	location string
}

func (it *assembly) generate(parent string, level int, config *RandomConfig) ([]*schema.Row, error) {
	fields := config.Fields.With(requiredRandomColumns...)
	rows, err := it.alloc.Batch(parent, config.Count, fields, level, it.spec.LongPartNo)
	if err != nil {
		return nil, err
	}
	generator.ApplyGroupDefaults(rows, config.Manufactured, it.revision, it.location,
		it.spec.ApplyRevision, it.spec.ApplyLocation)
	return rows, nil
}

func (it *assembly) levelOne(parentPartNo string) ([]*schema.Row, error) {
	if it.spec.Level1.Random != nil {
		return it.generate(parentPartNo, 1, it.spec.Level1.Random)
	}
	rows := it.spec.Level1.Manual
	for index, row := range rows {
		row.SetInt(schema.Level, 1)
		row.Set(schema.Parent, parentPartNo)
		if !row.Has(schema.Sequence) {
			row.SetInt(schema.Sequence, index+1)
		}
	}
	return rows, nil
}

// groupedLevel assembles Level 2 or Level 3 rows against the rows of
// the level above. Entry is gated on at least one Manufactured parent
// existing above; groups must each name an eligible parent.
func (it *assembly) groupedLevel(level int, above []*schema.Row, perParent *RandomConfig, groups []Group, wanted bool) ([]*schema.Row, error) {
	if !wanted {
		return nil, nil
	}
	eligible := manufacturedOf(above)
	if len(eligible) == 0 {
		return nil, &GatingError{Level: level}
	}

	rows := make([]*schema.Row, 0)
	if perParent != nil {
		for _, parent := range eligible {
			batch, err := it.generate(parent, level, perParent)
			if err != nil {
				return nil, err
			}
			rows = append(rows, batch...)
		}
	}
	allowed := make(map[string]bool, len(eligible))
	for _, parent := range eligible {
		allowed[parent] = true
	}
	for _, group := range groups {
		if !allowed[group.Parent] {
			return nil, &BadParentError{Level: level, Parent: group.Parent}
		}
		if group.Random != nil {
			batch, err := it.generate(group.Parent, level, group.Random)
			if err != nil {
				return nil, err
			}
			rows = append(rows, batch...)
			continue
		}
		for index, row := range group.Manual {
			row.SetInt(schema.Level, level)
			row.Set(schema.Parent, group.Parent)
			if !row.Has(schema.Sequence) {
				row.SetInt(schema.Sequence, index+1)
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func manufacturedOf(rows []*schema.Row) []string {
	result := make([]string, 0, len(rows))
	for _, row := range rows {
		partno := row.Value(schema.PartNo)
		if len(partno) > 0 && schema.Manufactured(row.Value(schema.Source)) {
			result = append(result, partno)
		}
	}
	return result
}

// assignSequences overwrites provisional sequence values with the final
// per level numbering: first row 1*increment, second 2*increment, and
// so on.
func assignSequences(rows []*schema.Row, increment int) {
	for index, row := range rows {
		row.SetInt(schema.Sequence, (index+1)*increment)
	}
}

func overwriteAll(rows []*schema.Row, column schema.Column, value string) {
	for _, row := range rows {
		if len(value) > 0 {
			row.Set(column, value)
		} else {
			row.Clear(column)
		}
	}
}

// clearSelfParents rewrites Parent to the empty string on any row that
// references itself, instead of rejecting the row.
func clearSelfParents(rows []*schema.Row) {
	for _, row := range rows {
		partno := strings.TrimSpace(row.Value(schema.PartNo))
		parent := strings.TrimSpace(row.Value(schema.Parent))
		if len(partno) > 0 && len(parent) > 0 && partno == parent {
			row.Set(schema.Parent, "")
		}
	}
}
