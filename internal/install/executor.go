package install

import (
	"fmt"
	"io"
	"strings"

	"github.com/brewblox/brewblox-ctl/internal/ipv6"
	"github.com/brewblox/brewblox-ctl/internal/messages"
	"github.com/brewblox/brewblox-ctl/internal/probe"
	"github.com/brewblox/brewblox-ctl/internal/prompt"
	"github.com/brewblox/brewblox-ctl/internal/shell"
	"github.com/brewblox/brewblox-ctl/internal/snapshot"
)

// Executor performs the resolved host mutations in a fixed order. Each
// step is independently gated by its decision and logs a skip notice when
// disabled, so operators can audit exactly what ran.
type Executor struct {
	Runner shell.Runner
	System System
	Probe  probe.Probe
	UI     prompt.UI
	Out    io.Writer
	Err    io.Writer

	// enableIPv6 and loadSnapshot are swappable for tests.
	enableIPv6   func(shell.Runner, string, bool, io.Writer, io.Writer) error
	loadSnapshot func(shell.Runner, prompt.UI, probe.Probe, string, string, bool, io.Writer) error
}

// NewExecutor returns an Executor with the real collaborators wired in.
func NewExecutor(runner shell.Runner, pr probe.Probe, ui prompt.UI, out io.Writer, errOut io.Writer) *Executor {
	return &Executor{
		Runner:       runner,
		System:       RealSystem{},
		Probe:        pr,
		UI:           ui,
		Out:          out,
		Err:          errOut,
		enableIPv6:   ipv6.Enable,
		loadSnapshot: snapshot.Load,
	}
}

// Execute runs the install sequence for a resolved plan:
// apt packages (fatal), docker installer (tolerated), the unconditional
// IPv6 fix, group membership (fatal), then snapshot restore or directory
// initialization.
func (ex *Executor) Execute(plan *Plan) error {
	if plan.AptInstall {
		info(ex.Out, messages.InfoAptInstalling)
		err := ex.Runner.RunAll([]shell.Step{
			{Cmd: "sudo apt update"},
			{Cmd: "sudo apt upgrade -y"},
			{Cmd: fmt.Sprintf("sudo apt install -y %s", strings.Join(plan.AptPackages, " "))},
		})
		if err != nil {
			return err
		}
	} else {
		info(ex.Out, messages.SkippedAptInstall)
	}

	if plan.DockerInstall {
		info(ex.Out, messages.InfoDockerInstalling)
		// Some hosts need manual follow-up after the convenience script;
		// a failure here must not sink the rest of the install.
		err := ex.Runner.RunAll([]shell.Step{
			{Cmd: "curl -sL get.docker.com | sh", Tolerance: shell.Tolerated},
		})
		if err != nil {
			return err
		}
	} else {
		info(ex.Out, messages.SkippedDockerInstall)
	}

	if err := ex.enableIPv6(ex.Runner, "", false, ex.Out, ex.Err); err != nil {
		return err
	}

	if plan.DockerUser {
		info(ex.Out, messages.InfoDockerUserAddFmt, plan.Username)
		cmd := fmt.Sprintf("sudo usermod -aG docker %s", shell.Quote(plan.Username))
		if err := ex.Runner.Run(cmd); err != nil {
			// Downstream steps assume the permission change succeeded.
			return err
		}
	} else {
		info(ex.Out, messages.SkippedDockerUserFmt, plan.Username)
	}

	if plan.SnapshotFile != "" {
		if err := ex.loadSnapshot(ex.Runner, ex.UI, ex.Probe, plan.Dir, plan.SnapshotFile, true, ex.Out); err != nil {
			return err
		}
	} else {
		ini := &Initializer{System: ex.System, UI: ex.UI, Out: ex.Out}
		err := ini.Run(InitOptions{
			Dir:         plan.Dir,
			Release:     plan.Release,
			Force:       true,
			SkipConfirm: plan.SkipConfirm,
		})
		if err != nil {
			return err
		}
	}

	info(ex.Out, messages.InfoDone)
	return nil
}
