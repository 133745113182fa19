package common

import (
	"os"
	"path/filepath"
)

const (
	BOMGEN_HOME_VARIABLE = `BOMGEN_HOME`
)

var (
	Version        string
	DebugFlag      bool
	TraceFlag      bool
	LogLinenumbers bool
	Silent         bool
)

func init() {
	if len(Version) == 0 {
		Version = `v0.0.0`
	}
}

// Home returns the directory where bomgen keeps its settings and journal.
// Override with the BOMGEN_HOME environment variable.
func Home() string {
	if value := os.Getenv(BOMGEN_HOME_VARIABLE); len(value) > 0 {
		return ensureDirectory(value)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ensureDirectory(".bomgen")
	}
	return ensureDirectory(filepath.Join(home, ".bomgen"))
}

func ensureDirectory(name string) string {
	os.MkdirAll(name, 0o755)
	return name
}

func UserHomeIdentity() string {
	location, err := os.UserHomeDir()
	if err != nil {
		return "unknown"
	}
	return filepath.Base(location)
}
