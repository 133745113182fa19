package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bomcompare/bomgen/builder"
	"github.com/bomcompare/bomgen/generator"
	"github.com/bomcompare/bomgen/pretty"
	"github.com/bomcompare/bomgen/schema"
)

const defaultRandomFields = "PartNo,Description,Quantity,Cost"

// CollectBuildSpec walks the user through the part hierarchy prompt by
// prompt and returns the same plain data tree a build spec file would
// have produced. Levels follow the import format: top parent, Level 1
// components, then Level 2 and Level 3 sub-component groups gated on
// manufactured parents.
func CollectBuildSpec(increment int, longPartNo bool) (*builder.BuildSpec, error) {
	pretty.Highlight("Top parent part (Level 0)")
	parent, err := askParentPart()
	if err != nil {
		return nil, err
	}

	spec := &builder.BuildSpec{
		Parent:     parent,
		Increment:  increment,
		LongPartNo: longPartNo,
	}
	spec.ApplyRevision, err = Confirm("Apply parent Revision to all component parts?", false)
	if err != nil {
		return nil, err
	}
	spec.ApplyLocation, err = Confirm("Apply parent Location to all component parts?", false)
	if err != nil {
		return nil, err
	}

	pretty.Highlight("Level 1 components")
	count, err := askNumber("Number of Level 1 components", 1, 100, 2)
	if err != nil {
		return nil, err
	}
	random, err := Confirm("Randomly generate the Level 1 components?", false)
	if err != nil {
		return nil, err
	}
	if random {
		config, err := askRandomConfig(count)
		if err != nil {
			return nil, err
		}
		spec.Level1.Random = config
	} else {
		for at := 0; at < count; at += 1 {
			pretty.Highlight("Level 1 component #%d", at+1)
			row, err := askComponentPart()
			if err != nil {
				return nil, err
			}
			spec.Level1.Manual = append(spec.Level1.Manual, row)
		}
	}

	eligible := eligibleParents(spec.Level1.Manual)
	level2Manual, err := askGroupedLevel(2, eligible, spec, func(perParent *builder.RandomConfig, groups []builder.Group) {
		spec.Level2PerParent = perParent
		spec.Level2Groups = groups
	})
	if err != nil {
		return nil, err
	}

	eligible3 := eligibleParents(level2Manual)
	_, err = askGroupedLevel(3, eligible3, spec, func(perParent *builder.RandomConfig, groups []builder.Group) {
		spec.Level3PerParent = perParent
		spec.Level3Groups = groups
	})
	if err != nil {
		return nil, err
	}
	return spec, nil
}

// eligibleParents lists manufactured part numbers from manual rows.
// With random generation the part numbers do not exist yet, so group
// entry is limited to per-parent generation; a random config with
// manufactured rows still unblocks that path.
func eligibleParents(manual []*schema.Row) []string {
	var result []string
	for _, row := range manual {
		if schema.Manufactured(row.Value(schema.Source)) {
			result = append(result, row.Value(schema.PartNo))
		}
	}
	return result
}

func randomUnblocks(random *builder.RandomConfig) bool {
	return random != nil && random.Manufactured > 0
}

func askGroupedLevel(level int, eligible []string, spec *builder.BuildSpec, accept func(*builder.RandomConfig, []builder.Group)) ([]*schema.Row, error) {
	pretty.Highlight("Level %d sub-components", level)
	randomAbove := spec.Level1.Random
	if level == 3 {
		randomAbove = spec.Level2PerParent
	}
	if len(eligible) == 0 && !randomUnblocks(randomAbove) {
		note("No Level %d part has a Manufactured source (M or F). Level %d entry is blocked.", level-1, level)
		return nil, nil
	}

	var perParent *builder.RandomConfig
	wanted, err := Confirm(fmt.Sprintf("Randomly generate Level %d parts under each manufactured Level %d part?", level, level-1), false)
	if err != nil {
		return nil, err
	}
	if wanted {
		count, err := askNumber(fmt.Sprintf("Number of Level %d parts per parent", level), 1, 30, 2)
		if err != nil {
			return nil, err
		}
		perParent, err = askRandomConfig(count)
		if err != nil {
			return nil, err
		}
	}

	var groups []builder.Group
	var manual []*schema.Row
	if len(eligible) > 0 {
		total, err := askNumber(fmt.Sprintf("Number of Level %d groups", level), 0, 20, 0)
		if err != nil {
			return nil, err
		}
		for at := 0; at < total; at += 1 {
			pretty.Highlight("Level %d group #%d", level, at+1)
			parent, err := ask("Parent part number", eligible[0],
				memberValidation(eligible, "Pick one of the manufactured parts: "+strings.Join(eligible, ", ")))
			if err != nil {
				return nil, err
			}
			count, err := askNumber("Number of parts", 1, 50, 2)
			if err != nil {
				return nil, err
			}
			random, err := Confirm("Randomly generate this group?", false)
			if err != nil {
				return nil, err
			}
			group := builder.Group{Parent: parent}
			if random {
				group.Random, err = askRandomConfig(count)
				if err != nil {
					return nil, err
				}
			} else {
				for part := 0; part < count; part += 1 {
					pretty.Highlight("Part #%d", part+1)
					row, err := askComponentPart()
					if err != nil {
						return nil, err
					}
					group.Manual = append(group.Manual, row)
					manual = append(manual, row)
				}
			}
			groups = append(groups, group)
		}
	}
	accept(perParent, groups)
	return manual, nil
}

func askRandomConfig(count int) (*builder.RandomConfig, error) {
	manufactured, err := askNumber("How many parts get Source Manufactured to Job (F)?", 0, count, 0)
	if err != nil {
		return nil, err
	}
	reply, err := ask("Fields to populate (comma separated column names)", defaultRandomFields, fieldListValidation())
	if err != nil {
		return nil, err
	}
	fields, err := generator.FieldsNamed(splitFields(reply))
	if err != nil {
		return nil, err
	}
	return &builder.RandomConfig{Count: count, Fields: fields, Manufactured: manufactured}, nil
}

func fieldListValidation() Validator {
	return func(input string) bool {
		for _, name := range splitFields(input) {
			if _, ok := schema.ColumnByName(name); !ok {
				note("Unknown column %q. Valid names: %s", name, strings.Join(schema.HeaderNames(), ", "))
				return false
			}
		}
		return true
	}
}

func splitFields(reply string) []string {
	var result []string
	for _, name := range strings.Split(reply, ",") {
		name = strings.TrimSpace(name)
		if len(name) > 0 {
			result = append(result, name)
		}
	}
	return result
}

func askParentPart() (*schema.Row, error) {
	row := new(schema.Row)
	partno, err := ask("Parent PartNo", "", notEmpty("Parent part number is required."))
	if err != nil {
		return nil, err
	}
	row.Set(schema.PartNo, partno)
	description, err := ask("Description", "", notEmpty("Description is required for the parent part."))
	if err != nil {
		return nil, err
	}
	row.Set(schema.Description, description)
	if err := askCommon(row, "Manufactured to Stock"); err != nil {
		return nil, err
	}
	if err := askOptional(row, schema.Revision, "Revision"); err != nil {
		return nil, err
	}
	if err := askOptional(row, schema.Location, "Location"); err != nil {
		return nil, err
	}
	productline, err := ask("Productline", "FG", anyValue)
	if err != nil {
		return nil, err
	}
	row.Set(schema.Productline, productline)
	return row, nil
}

func askComponentPart() (*schema.Row, error) {
	row := new(schema.Row)
	partno, err := ask("PartNo", "", notEmpty("Part number is required."))
	if err != nil {
		return nil, err
	}
	row.Set(schema.PartNo, partno)
	if err := askOptional(row, schema.Description, "Description"); err != nil {
		return nil, err
	}
	if err := askCommon(row, "None"); err != nil {
		return nil, err
	}
	return row, nil
}

func askCommon(row *schema.Row, sourceDefault string) error {
	quantity, err := askNumber("Quantity", 1, 1000000, 1)
	if err != nil {
		return err
	}
	row.Set(schema.Quantity, strconv.Itoa(quantity))
	um, err := ask("UM", "EA", anyValue)
	if err != nil {
		return err
	}
	row.Set(schema.UM, um)
	source, err := askOption("Source", schema.SourceOptions, sourceDefault)
	if err != nil {
		return err
	}
	row.Set(schema.Source, source)
	category, err := askOption("Category", schema.CategoryOptions, "Normal")
	if err != nil {
		return err
	}
	row.Set(schema.Category, category)
	return nil
}

func askOption(question string, options []schema.Option, defaults string) (string, error) {
	labels := make([]string, len(options))
	for index, option := range options {
		labels[index] = option.Label
	}
	reply, err := ask(fmt.Sprintf("%s (%s)", question, strings.Join(labels, ", ")), defaults,
		memberValidation(labels, "Pick one of: "+strings.Join(labels, ", ")))
	if err != nil {
		return "", err
	}
	for _, option := range options {
		if option.Label == reply {
			return option.Code, nil
		}
	}
	return "", nil
}

func askOptional(row *schema.Row, column schema.Column, question string) error {
	reply, err := ask(question, "", anyValue)
	if err != nil {
		return err
	}
	if len(reply) > 0 {
		row.Set(column, reply)
	}
	return nil
}
