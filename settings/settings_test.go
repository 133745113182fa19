package settings_test

import (
	"testing"

	"github.com/bomcompare/bomgen/common"
	"github.com/bomcompare/bomgen/hamlet"
	"github.com/bomcompare/bomgen/settings"
)

func TestDefaults(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	t.Setenv(common.BOMGEN_HOME_VARIABLE, t.TempDir())

	must_be.Equal("", settings.TemplatePath())
	must_be.Equal(100, settings.SequenceIncrement())
	must_be.Equal("output_bom.xlsx", settings.OutputPath())
}

func TestEnvironmentOverride(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	t.Setenv(common.BOMGEN_HOME_VARIABLE, t.TempDir())
	t.Setenv("BOMGEN_OUTPUT", "elsewhere.xlsx")

	must_be.Equal("elsewhere.xlsx", settings.OutputPath())
}
