package settings

import (
	"github.com/bomcompare/bomgen/common"
	"github.com/spf13/viper"
)

// Tool configuration: environment variables prefixed BOMGEN_ plus an
// optional settings.yaml under the bomgen home directory. Command line
// flags still win over everything here.

const (
	keyTemplate  = "template"
	keyIncrement = "increment"
	keyOutput    = "output"
)

var loaded bool

func Initialize() {
	if loaded {
		return
	}
	loaded = true
	viper.SetEnvPrefix("bomgen")
	viper.AutomaticEnv()
	viper.SetDefault(keyTemplate, "")
	viper.SetDefault(keyIncrement, 100)
	viper.SetDefault(keyOutput, "output_bom.xlsx")
	viper.SetConfigName("settings")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(common.Home())
	if err := viper.ReadInConfig(); err != nil {
		if _, missing := err.(viper.ConfigFileNotFoundError); !missing {
			common.Log("Warning: broken settings file ignored: %v", err)
		}
		return
	}
	common.Debug("Settings loaded from %q.", viper.ConfigFileUsed())
}

// TemplatePath is the default template file; empty when the user must
// provide one.
func TemplatePath() string {
	Initialize()
	return viper.GetString(keyTemplate)
}

// SequenceIncrement is the default spacing between sequence numbers.
func SequenceIncrement() int {
	Initialize()
	return viper.GetInt(keyIncrement)
}

// OutputPath is the default generated BOM filename.
func OutputPath() string {
	Initialize()
	return viper.GetString(keyOutput)
}
