package bomfile

import (
	"fmt"
	"os"

	"github.com/bomcompare/bomgen/builder"
	"github.com/bomcompare/bomgen/generator"
	"github.com/bomcompare/bomgen/schema"
	"gopkg.in/yaml.v2"
)

// Build spec document: the YAML form of a builder.BuildSpec, so the
// whole part tree can be handed to generate as plain data instead of
// being collected prompt by prompt. Part entries are maps keyed by the
// template column names.

type specDocument struct {
	Parent        map[string]interface{} `yaml:"parent"`
	Increment     int                    `yaml:"increment"`
	ApplyRevision bool                   `yaml:"apply_revision"`
	ApplyLocation bool                   `yaml:"apply_location"`
	LongPartNo    bool                   `yaml:"long_partno"`
	Level1        levelDocument          `yaml:"level1"`
	Level2        groupedDocument        `yaml:"level2"`
	Level3        groupedDocument        `yaml:"level3"`
}

type randomDocument struct {
	Count        int      `yaml:"count"`
	Manufactured int      `yaml:"manufactured"`
	Fields       []string `yaml:"fields"`
}

type levelDocument struct {
	Random *randomDocument          `yaml:"random"`
	Parts  []map[string]interface{} `yaml:"parts"`
}

type groupDocument struct {
	Parent string                   `yaml:"parent"`
	Random *randomDocument          `yaml:"random"`
	Parts  []map[string]interface{} `yaml:"parts"`
}

type groupedDocument struct {
	PerParent *randomDocument `yaml:"per_parent"`
	Groups    []groupDocument `yaml:"groups"`
}

// LoadBuildSpec reads a YAML build spec file into a builder.BuildSpec.
func LoadBuildSpec(path string) (*builder.BuildSpec, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read build spec %q: %w", path, err)
	}
	document := new(specDocument)
	if err := yaml.UnmarshalStrict(content, document); err != nil {
		return nil, fmt.Errorf("malformed build spec %q: %w", path, err)
	}
	return document.convert()
}

func (it *specDocument) convert() (*builder.BuildSpec, error) {
	if len(it.Parent) == 0 {
		return nil, fmt.Errorf("build spec has no parent part")
	}
	parent, err := rowFrom(it.Parent)
	if err != nil {
		return nil, fmt.Errorf("parent part: %w", err)
	}
	level1, err := it.Level1.convert()
	if err != nil {
		return nil, fmt.Errorf("level1: %w", err)
	}
	level2PerParent, level2Groups, err := it.Level2.convert()
	if err != nil {
		return nil, fmt.Errorf("level2: %w", err)
	}
	level3PerParent, level3Groups, err := it.Level3.convert()
	if err != nil {
		return nil, fmt.Errorf("level3: %w", err)
	}
	return &builder.BuildSpec{
		Parent:          parent,
		Level1:          level1,
		Level2PerParent: level2PerParent,
		Level2Groups:    level2Groups,
		Level3PerParent: level3PerParent,
		Level3Groups:    level3Groups,
		Increment:       it.Increment,
		ApplyRevision:   it.ApplyRevision,
		ApplyLocation:   it.ApplyLocation,
		LongPartNo:      it.LongPartNo,
	}, nil
}

func (it *levelDocument) convert() (builder.LevelOne, error) {
	result := builder.LevelOne{}
	if it.Random != nil {
		random, err := it.Random.convert()
		if err != nil {
			return result, err
		}
		result.Random = random
		return result, nil
	}
	rows, err := rowsFrom(it.Parts)
	if err != nil {
		return result, err
	}
	result.Manual = rows
	return result, nil
}

func (it *groupedDocument) convert() (*builder.RandomConfig, []builder.Group, error) {
	var perParent *builder.RandomConfig
	if it.PerParent != nil {
		converted, err := it.PerParent.convert()
		if err != nil {
			return nil, nil, err
		}
		perParent = converted
	}
	groups := make([]builder.Group, 0, len(it.Groups))
	for index, entry := range it.Groups {
		if len(entry.Parent) == 0 {
			return nil, nil, fmt.Errorf("group %d has no parent part number", index+1)
		}
		group := builder.Group{Parent: entry.Parent}
		if entry.Random != nil {
			random, err := entry.Random.convert()
			if err != nil {
				return nil, nil, err
			}
			group.Random = random
		} else {
			rows, err := rowsFrom(entry.Parts)
			if err != nil {
				return nil, nil, err
			}
			group.Manual = rows
		}
		groups = append(groups, group)
	}
	if len(groups) == 0 {
		groups = nil
	}
	return perParent, groups, nil
}

func (it *randomDocument) convert() (*builder.RandomConfig, error) {
	if it.Count < 1 {
		return nil, fmt.Errorf("random config needs a count of at least 1")
	}
	fields, err := generator.FieldsNamed(it.Fields)
	if err != nil {
		return nil, err
	}
	return &builder.RandomConfig{
		Count:        it.Count,
		Fields:       fields,
		Manufactured: it.Manufactured,
	}, nil
}

func rowsFrom(parts []map[string]interface{}) ([]*schema.Row, error) {
	result := make([]*schema.Row, 0, len(parts))
	for index, part := range parts {
		row, err := rowFrom(part)
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", index+1, err)
		}
		result = append(result, row)
	}
	return result, nil
}

func rowFrom(fields map[string]interface{}) (*schema.Row, error) {
	row := new(schema.Row)
	for name, value := range fields {
		column, ok := schema.ColumnByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown column name %q", name)
		}
		row.Set(column, fmt.Sprintf("%v", value))
	}
	return row, nil
}
