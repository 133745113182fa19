package bomfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bomcompare/bomgen/bomfile"
	"github.com/bomcompare/bomgen/diff"
	"github.com/bomcompare/bomgen/hamlet"
	"github.com/bomcompare/bomgen/schema"
	"github.com/xuri/excelize/v2"
)

func templateAt(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.xlsx")
	if err := bomfile.CreateTemplate(path); err != nil {
		t.Fatalf("cannot create template: %v", err)
	}
	return path
}

func rowOf(partno, description, quantity, parent, sequence string) *schema.Row {
	row := new(schema.Row)
	row.Set(schema.PartNo, partno)
	row.Set(schema.Description, description)
	row.Set(schema.Quantity, quantity)
	row.Set(schema.Parent, parent)
	row.Set(schema.Sequence, sequence)
	return row
}

func TestTemplateRoundTrip(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	path := templateAt(t)
	workbook, headers, err := bomfile.LoadTemplate(path)
	must_be.Nil(err)
	defer workbook.Close()

	must_be.Equal(schema.HeaderNames(), headers)
	must_be.Nil(bomfile.CheckHeaders(headers))
}

func TestCheckHeadersRejectsDrift(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	truncated := schema.HeaderNames()[:20]
	err := bomfile.CheckHeaders(truncated)
	wont_be.Nil(err)

	mismatch, ok := err.(*bomfile.SchemaMismatchError)
	must_be.True(ok)
	must_be.Equal(20, len(mismatch.Found))
	must_be.Equal(27, len(mismatch.Expected))
}

func TestLoadTemplateNeedsTheTemplateSheet(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	path := filepath.Join(t.TempDir(), "plain.xlsx")
	workbook := excelize.NewFile()
	must_be.Nil(workbook.SaveAs(path))
	must_be.Nil(workbook.Close())

	_, _, err := bomfile.LoadTemplate(path)
	wont_be.Nil(err)
}

func TestWriteRowsReplacesDataRows(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	path := templateAt(t)
	workbook, _, err := bomfile.LoadTemplate(path)
	must_be.Nil(err)
	rows := []*schema.Row{
		rowOf("TOP", "Top Desc", "1", "TOP", "0"),
		rowOf("A001", "Child Desc", "3", "TOP", "100"),
	}
	must_be.Nil(bomfile.WriteRows(workbook, rows))
	must_be.Nil(workbook.SaveAs(path))
	must_be.Nil(workbook.Close())

	workbook, _, err = bomfile.LoadTemplate(path)
	must_be.Nil(err)
	must_be.Nil(bomfile.WriteRows(workbook, rows[:1]))
	must_be.Nil(workbook.SaveAs(path))
	must_be.Nil(workbook.Close())

	reopened, err := excelize.OpenFile(path)
	must_be.Nil(err)
	defer reopened.Close()
	records, err := reopened.GetRows(bomfile.SheetName)
	must_be.Nil(err)
	must_be.Equal(2, len(records))
	must_be.Equal("TOP", records[1][0])
}

func TestReadBOMFromGeneratedFile(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	path := templateAt(t)
	workbook, _, err := bomfile.LoadTemplate(path)
	must_be.Nil(err)
	child := rowOf("A001", "Child Desc", "3", "TOP", "100")
	child.Set(schema.UM, "FT")
	blank := rowOf("", "ignored", "9", "TOP", "200")
	rows := []*schema.Row{
		rowOf("TOP", "Top Desc", "1", "TOP", "0"),
		child,
		blank,
	}
	must_be.Nil(bomfile.WriteRows(workbook, rows))
	must_be.Nil(workbook.SaveAs(path))
	must_be.Nil(workbook.Close())

	bom, err := bomfile.ReadBOM(path)
	must_be.Nil(err)
	must_be.Equal("template", bom.Name)
	must_be.Equal(2, bom.Len())

	item, found := bom.ByPartNumber("A001")
	must_be.True(found)
	must_be.Equal("Child Desc", item.Description)
	must_be.Equal(3.0, item.Quantity)
	must_be.Equal("FT", item.Unit)

	top, found := bom.ByPartNumber("TOP")
	must_be.True(found)
	must_be.Equal("EA", top.Unit)

	_, found = bom.ByPartNumber("")
	wont_be.True(found)
}

func TestWriteComparisonSheets(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	old := &diff.BOM{Name: "before"}
	old.Add(diff.Item{PartNumber: "P1", Description: "Widget", Quantity: 1, Unit: "EA"})
	old.Add(diff.Item{PartNumber: "P2", Description: "Bracket", Quantity: 2, Unit: "EA"})
	current := &diff.BOM{Name: "after"}
	current.Add(diff.Item{PartNumber: "P2", Description: "Bracket", Quantity: 5, Unit: "FT"})
	current.Add(diff.Item{PartNumber: "P3", Description: "Screw", Quantity: 8, Unit: "EA"})

	path := filepath.Join(t.TempDir(), "report.xlsx")
	must_be.Nil(bomfile.WriteComparison(diff.Compare(old, current), path))

	workbook, err := excelize.OpenFile(path)
	must_be.Nil(err)
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	must_be.Equal([]string{"Summary", "Added Items", "Removed Items", "Modified Items"}, sheets)

	name, err := workbook.GetCellValue("Summary", "B3")
	must_be.Nil(err)
	must_be.Equal("before", name)

	records, err := workbook.GetRows("Modified Items")
	must_be.Nil(err)
	// P2 changed quantity and unit, one report row per field.
	must_be.Equal(3, len(records))
	must_be.Equal("P2", records[1][0])
	wont_be.Equal(records[1][1], records[2][1])
}

func TestWriteComparisonSkipsEmptySheets(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	old := &diff.BOM{Name: "same"}
	old.Add(diff.Item{PartNumber: "P1", Quantity: 1})
	current := &diff.BOM{Name: "same again"}
	current.Add(diff.Item{PartNumber: "P1", Quantity: 1})

	path := filepath.Join(t.TempDir(), "report.xlsx")
	must_be.Nil(bomfile.WriteComparison(diff.Compare(old, current), path))

	workbook, err := excelize.OpenFile(path)
	must_be.Nil(err)
	defer workbook.Close()
	must_be.Equal([]string{"Summary"}, workbook.GetSheetList())
}

const sampleBuildSpec = `
parent:
  PartNo: TOP
  Quantity: 1
  Revision: R05
increment: 100
apply_revision: true
level1:
  parts:
    - PartNo: M100
      Quantity: 2
      Source: M
    - PartNo: P200
      Quantity: 4
      Source: P
level2:
  per_parent:
    count: 3
    manufactured: 1
    fields: [PartNo, Description, Quantity, Cost]
  groups:
    - parent: M100
      parts:
        - PartNo: C300
          Quantity: 1
`

func TestLoadBuildSpec(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	path := filepath.Join(t.TempDir(), "spec.yaml")
	must_be.Nil(os.WriteFile(path, []byte(sampleBuildSpec), 0o644))

	spec, err := bomfile.LoadBuildSpec(path)
	must_be.Nil(err)
	must_be.Equal("TOP", spec.Parent.Value(schema.PartNo))
	must_be.Equal("R05", spec.Parent.Value(schema.Revision))
	must_be.Equal(100, spec.Increment)
	must_be.True(spec.ApplyRevision)
	must_be.Equal(2, len(spec.Level1.Manual))
	must_be.Equal("M", spec.Level1.Manual[0].Value(schema.Source))
	must_be.Equal(3, spec.Level2PerParent.Count)
	must_be.Equal(1, spec.Level2PerParent.Manufactured)
	must_be.Equal(4, len(spec.Level2PerParent.Fields))
	must_be.Equal(1, len(spec.Level2Groups))
	must_be.Equal("M100", spec.Level2Groups[0].Parent)
	must_be.Nil(spec.Level3PerParent)
}

func TestLoadBuildSpecRejectsBadInput(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	cases := []struct {
		name    string
		content string
	}{
		{"no parent", "increment: 100\n"},
		{"unknown column", "parent:\n  NoSuchColumn: X\nincrement: 1\n"},
		{"unknown key", "parent:\n  PartNo: TOP\nsurprise: true\n"},
		{"zero count random", "parent:\n  PartNo: TOP\nincrement: 1\nlevel1:\n  random:\n    count: 0\n"},
	}
	for _, tc := range cases {
		path := filepath.Join(t.TempDir(), "spec.yaml")
		must_be.Nil(os.WriteFile(path, []byte(tc.content), 0o644))
		_, err := bomfile.LoadBuildSpec(path)
		if err == nil {
			t.Errorf("case %q accepted invalid spec", tc.name)
		}
		wont_be.Nil(err)
	}
}
