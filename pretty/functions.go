package pretty

import (
	"fmt"

	"github.com/bomcompare/bomgen/common"
)

// Exit panics with an ExitCode carrying the given code and message.
// The panic is caught by common.ExitProtection in main.
func Exit(code int, format string, rest ...interface{}) {
	message := fmt.Sprintf(format, rest...)
	if code == 0 {
		message = fmt.Sprintf("%s%s%s", Green, message, Reset)
	} else {
		message = fmt.Sprintf("%s%s%s", Red, message, Reset)
	}
	panic(common.ExitCode{Code: code, Message: message})
}

// Guard is an assert-like helper: when the condition fails, exit with
// the given code and message.
func Guard(condition bool, code int, format string, rest ...interface{}) {
	if !condition {
		Exit(code, format, rest...)
	}
}

func Ok() error {
	common.Log("%sOK.%s", Green, Reset)
	return nil
}

func Note(format string, rest ...interface{}) {
	niceform := fmt.Sprintf("%sNote: %s%s", Cyan, format, Reset)
	common.Log(niceform, rest...)
}

func Warning(format string, rest ...interface{}) {
	niceform := fmt.Sprintf("%sWarning: %s%s", Yellow, format, Reset)
	common.Log(niceform, rest...)
}

func Highlight(format string, rest ...interface{}) {
	niceform := fmt.Sprintf("%s%s%s", Cyan, format, Reset)
	common.Log(niceform, rest...)
}
