package schema

// Dropdown tables for the Category and Source columns. The import file
// carries the single character codes; labels are what a user sees.

type Option struct {
	Label string
	Code  string
}

var CategoryOptions = []Option{
	{"Normal", ""},
	{"Phantom", "P"},
	{"Exclude", "X"},
	{"Reference", "R"},
	{"Setup", "1"},
}

var SourceOptions = []Option{
	{"None", ""},
	{"Purchase to Stock", "P"},
	{"Purchase to Job", "J"},
	{"Manufactured to Stock", "M"},
	{"Manufactured to Job", "F"},
	{"Consign to Stock", "C"},
	{"Consign to Job", "G"},
}

func codeFor(options []Option, label string) (string, bool) {
	for _, option := range options {
		if option.Label == label {
			return option.Code, true
		}
	}
	return "", false
}

func labelFor(options []Option, code string) (string, bool) {
	for _, option := range options {
		if option.Code == code {
			return option.Label, true
		}
	}
	return "", false
}

func CategoryCode(label string) (string, bool) { return codeFor(CategoryOptions, label) }
func CategoryLabel(code string) (string, bool) { return labelFor(CategoryOptions, code) }
func SourceCode(label string) (string, bool)   { return codeFor(SourceOptions, label) }
func SourceLabel(code string) (string, bool)   { return labelFor(SourceOptions, code) }

// Manufactured reports whether a source code marks a part that can act
// as parent for deeper levels.
func Manufactured(sourceCode string) bool {
	return sourceCode == "M" || sourceCode == "F"
}

// CategorySourceOK enforces the category/source business rule: Phantom
// parts must be manufactured (M or F) and Exclude parts must be
// purchased to stock (P). Other categories accept any source.
func CategorySourceOK(categoryCode, sourceCode string) bool {
	switch categoryCode {
	case "P":
		return Manufactured(sourceCode)
	case "X":
		return sourceCode == "P"
	default:
		return true
	}
}

// CategorySourceWant describes the accepted sources for a category code
// that constrains them; empty for unconstrained categories.
func CategorySourceWant(categoryCode string) string {
	switch categoryCode {
	case "P":
		return "Manufactured to Stock (M) or Manufactured to Job (F)"
	case "X":
		return "Purchase to Stock (P)"
	default:
		return ""
	}
}
