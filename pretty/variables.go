package pretty

import (
	"fmt"
	"os"

	"github.com/bomcompare/bomgen/common"
	"github.com/mattn/go-isatty"
)

var (
	Colorless   bool
	Disabled    bool
	Interactive bool
	White       string
	Grey        string
	Red         string
	Green       string
	Blue        string
	Yellow      string
	Cyan        string
	Reset       string
	Bold        string
	Faint       string
)

func csi(suffix string) string {
	return fmt.Sprintf("\033[%s", suffix)
}

// Setup detects terminal capabilities and fills in the color variables.
// Respects NO_COLOR and an unset/dumb TERM.
func Setup() {
	stdin := isatty.IsTerminal(os.Stdin.Fd())
	stdout := isatty.IsTerminal(os.Stdout.Fd())
	stderr := isatty.IsTerminal(os.Stderr.Fd())

	if os.Getenv("NO_COLOR") != "" {
		Colorless = true
	}
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		Colorless = true
	}

	// Prompting needs all three streams attached to a terminal.
	Interactive = stdin && stdout && stderr

	visual := stdout && !Colorless && !Disabled
	if visual {
		White = csi("97m")
		Grey = csi("90m")
		Red = csi("91m")
		Green = csi("92m")
		Yellow = csi("93m")
		Blue = csi("94m")
		Cyan = csi("96m")
		Reset = csi("0m")
		Bold = csi("1m")
		Faint = csi("2m")
	}

	common.Trace("Interactive mode enabled: %v; colors enabled: %v", Interactive, visual)
}
