package pretty

import (
	"os"
	"strings"

	"github.com/bomcompare/bomgen/common"
	"golang.org/x/term"
)

const (
	maxBoxWidth = 78
	minBoxWidth = 24
)

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < minBoxWidth {
		return maxBoxWidth
	}
	if width > maxBoxWidth {
		return maxBoxWidth
	}
	return width
}

// Box prints a titled summary box sized to the terminal, one line per entry.
func Box(title string, lines []string) {
	width := terminalWidth()
	inner := width - 4
	common.Stdout("%s+-%s-+%s\n", Grey, strings.Repeat("-", inner), Reset)
	common.Stdout("%s| %s%-*s%s |%s\n", Grey, Bold, inner, clip(title, inner), Reset+Grey, Reset)
	common.Stdout("%s+-%s-+%s\n", Grey, strings.Repeat("-", inner), Reset)
	for _, line := range lines {
		common.Stdout("%s| %s%-*s%s |%s\n", Grey, Reset, inner, clip(line, inner), Grey, Reset)
	}
	common.Stdout("%s+-%s-+%s\n", Grey, strings.Repeat("-", inner), Reset)
}

func clip(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	if limit < 4 {
		return text[:limit]
	}
	return text[:limit-3] + "..."
}
