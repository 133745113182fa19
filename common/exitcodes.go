package common

import "os"

type ExitCode struct {
	Code    int
	Message string
}

func (it ExitCode) ShowMessage() {
	Log("%s", it.Message)
}

// ExitProtection recovers an ExitCode panic raised by pretty.Exit and
// friends, flushes logs, and exits with the requested code. Any other
// panic is re-raised. Use as a deferred call in main.
func ExitProtection() {
	status := recover()
	if status != nil {
		exit, ok := status.(ExitCode)
		if ok {
			exit.ShowMessage()
			WaitLogs()
			os.Exit(exit.Code)
		}
		WaitLogs()
		panic(status)
	}
	WaitLogs()
}
