package wizard

import (
	"errors"

	"github.com/bomcompare/bomgen/common"
	"github.com/bomcompare/bomgen/pretty"
)

// ErrConfirmationRequired is returned when a prompt is needed but there
// is no terminal to ask on.
var ErrConfirmationRequired = errors.New("confirmation required: use --force flag in non-interactive mode")

// Confirm displays a yes/no prompt and returns the choice. With force
// set, returns true without prompting. Defaults to no.
func Confirm(question string, force bool) (bool, error) {
	if force {
		return true, nil
	}
	if !pretty.Interactive {
		return false, ErrConfirmationRequired
	}
	validator := memberValidation([]string{"y", "Y", "n", "N"}, "Please answer 'y' or 'n'.")
	response, err := ask(question, "n", validator)
	if err != nil {
		return false, err
	}
	confirmed := response == "y" || response == "Y"
	if !confirmed {
		common.Stdout("%sOperation cancelled.%s\n", pretty.Grey, pretty.Reset)
	}
	return confirmed, nil
}
