package install

import (
	"io"
	"time"

	"github.com/brewblox/brewblox-ctl/internal/messages"
	"github.com/brewblox/brewblox-ctl/internal/prompt"
	"github.com/brewblox/brewblox-ctl/internal/shell"
)

// rebootDelay is how long the countdown waits before the unprompted reboot.
const rebootDelay = 10 * time.Second

var sleepFunc = time.Sleep

// FinalizeReboot issues the post-install reboot. With suppress it only
// logs a skip notice; with promptBefore it blocks for an explicit operator
// acknowledgment; otherwise it counts down a fixed delay. The reboot
// command is fire-and-forget: the process terminates alongside the host.
func FinalizeReboot(runner shell.Runner, ui prompt.UI, suppress bool, promptBefore bool, out io.Writer) error {
	if suppress {
		info(out, messages.SkippedReboot)
		return nil
	}

	if promptBefore {
		if err := ui.AwaitEnter(messages.PromptRebootEnter); err != nil {
			return err
		}
	} else {
		info(out, messages.InfoRebootCountdown)
		sleepFunc(rebootDelay)
	}

	return runner.Run("sudo reboot")
}
