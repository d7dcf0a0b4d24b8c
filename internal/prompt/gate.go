package prompt

import (
	"fmt"

	"github.com/brewblox/brewblox-ctl/internal/messages"
)

// ConfirmMode is the global gate checked once at the start of every
// mutating command. When skip is false the operator must confirm the
// invocation before anything touches the host; declining returns
// ErrAborted with no mutation performed.
func ConfirmMode(ui UI, skip bool, invocation string) error {
	if skip {
		return nil
	}
	ok, err := ui.Confirm(fmt.Sprintf(messages.PromptConfirmCmdFmt, invocation), true)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAborted
	}
	return nil
}
