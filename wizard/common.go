package wizard

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bomcompare/bomgen/common"
	"github.com/bomcompare/bomgen/pretty"
)

const (
	unixNewline    = "\n"
	windowsNewline = "\r\n"
)

type Validator func(string) bool

func anyValue(string) bool {
	return true
}

func notEmpty(erratic string) Validator {
	return func(input string) bool {
		if len(strings.TrimSpace(input)) == 0 {
			common.Stdout("%s%s%s\n\n", pretty.Red, erratic, pretty.Reset)
			return false
		}
		return true
	}
}

func memberValidation(members []string, erratic string) Validator {
	return func(input string) bool {
		for _, member := range members {
			if input == member {
				return true
			}
		}
		common.Stdout("%s%s%s\n\n", pretty.Red, erratic, pretty.Reset)
		return false
	}
}

func numberValidation(low, high int, erratic string) Validator {
	return func(input string) bool {
		value, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil || value < low || value > high {
			common.Stdout("%s%s%s\n\n", pretty.Red, erratic, pretty.Reset)
			return false
		}
		return true
	}
}

func note(form string, details ...interface{}) {
	message := fmt.Sprintf(form, details...)
	common.Stdout("%s! %s%s%s\n", pretty.Red, pretty.White, message, pretty.Reset)
}

func ask(question, defaults string, validator Validator) (string, error) {
	for {
		common.Stdout("%s? %s%s %s[%s]:%s ", pretty.Green, pretty.White, question, pretty.Grey, defaults, pretty.Reset)
		source := bufio.NewReader(os.Stdin)
		reply, err := source.ReadString('\n')
		common.Stdout("\n")
		if err != nil {
			return "", err
		}
		if reply == unixNewline || reply == windowsNewline {
			reply = defaults
		}
		reply = strings.TrimSpace(reply)
		if !validator(reply) {
			continue
		}
		return reply, nil
	}
}

func askNumber(question string, low, high, defaults int) (int, error) {
	erratic := fmt.Sprintf("Give a number between %d and %d.", low, high)
	reply, err := ask(question, strconv.Itoa(defaults), numberValidation(low, high, erratic))
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(reply)
}
