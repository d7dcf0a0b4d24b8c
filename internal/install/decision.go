// Package install holds the installation decision engine: it resolves, for
// each installable capability, whether an action is already satisfied on
// the host, requested by the operator, or implied by the use-defaults
// shortcut, and then executes the resulting ordered sequence of host
// mutations.
package install

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"

	"github.com/brewblox/brewblox-ctl/internal/messages"
	"github.com/brewblox/brewblox-ctl/internal/probe"
	"github.com/brewblox/brewblox-ctl/internal/prompt"
)

// TriState is an operator override that may be forced on, forced off, or
// left unset.
type TriState int

const (
	Unset TriState = iota
	ForcedOn
	ForcedOff
)

// TriFromFlag converts a flag pair (--x / --no-x) into a TriState.
func TriFromFlag(set bool, value bool) TriState {
	if !set {
		return Unset
	}
	if value {
		return ForcedOn
	}
	return ForcedOff
}

// Options are the raw install inputs, constructed fresh per invocation
// from CLI flags and settings.
type Options struct {
	UseDefaults   TriState
	AptInstall    TriState
	DockerInstall TriState
	DockerUser    TriState
	Dir           string
	NoReboot      bool
	Release       string
	SnapshotFile  string
	AptPackages   []string
}

// Plan is the fully resolved decision set consumed once by Execute.
type Plan struct {
	AptInstall    bool
	AptPackages   []string
	DockerInstall bool
	DockerUser    bool
	Username      string
	Dir           string
	Release       string
	SkipConfirm   bool
	SnapshotFile  string
	NoReboot      bool
	PromptReboot  bool
}

var infoColor = color.New(color.FgCyan)

// info prints an operator notice.
func info(out io.Writer, format string, args ...any) {
	infoColor.Fprintf(out, format+"\n", args...)
}

// Resolve combines overrides, the use-defaults shortcut, probe findings,
// and interactive confirmations into a Plan. No host mutation happens
// during resolution; a declined confirmation returns prompt.ErrAborted.
func Resolve(opts Options, pr probe.Probe, ui prompt.UI, out io.Writer) (*Plan, error) {
	useDefaults, err := resolveUseDefaults(opts.UseDefaults, ui)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		AptPackages:  opts.AptPackages,
		Username:     pr.Username(),
		Release:      opts.Release,
		SkipConfirm:  useDefaults,
		SnapshotFile: opts.SnapshotFile,
		NoReboot:     opts.NoReboot,
	}

	// Apt: without a package manager there is nothing to decide.
	aptOverride := opts.AptInstall
	if !pr.CommandExists("apt") {
		info(out, messages.InfoAptMissing)
		info(out, messages.InfoAptDepsFmt, strings.Join(plan.AptPackages, " "))
		aptOverride = ForcedOff
	}
	plan.AptInstall, err = resolveCapability(aptOverride, useDefaults, ui,
		fmt.Sprintf(messages.PromptAptInstallFmt, strings.Join(plan.AptPackages, " ")))
	if err != nil {
		return nil, err
	}

	// Docker: reinstalling a present runtime is wasteful, overrides are
	// ignored once the probe reports it satisfied.
	dockerOverride := opts.DockerInstall
	if pr.CommandExists("docker") {
		info(out, messages.InfoDockerPresent)
		dockerOverride = ForcedOff
	}
	plan.DockerInstall, err = resolveCapability(dockerOverride, useDefaults, ui, messages.PromptDockerInstall)
	if err != nil {
		return nil, err
	}

	// Group membership: re-adding an existing member is skipped the same way.
	userOverride := opts.DockerUser
	if pr.IsDockerUser() {
		info(out, messages.InfoDockerUserFmt, plan.Username)
		userOverride = ForcedOff
	}
	plan.DockerUser, err = resolveCapability(userOverride, useDefaults, ui, messages.PromptDockerUser)
	if err != nil {
		return nil, err
	}

	plan.Dir, err = resolveDir(opts.Dir, useDefaults, pr, ui)
	if err != nil {
		return nil, err
	}

	if !opts.NoReboot {
		if useDefaults {
			plan.PromptReboot = false
		} else {
			plan.PromptReboot, err = ui.Confirm(messages.PromptRebootNotice, true)
			if err != nil {
				return nil, err
			}
		}
	}

	return plan, nil
}

// resolveUseDefaults settles the use-defaults shortcut once, up front.
func resolveUseDefaults(override TriState, ui prompt.UI) (bool, error) {
	switch override {
	case ForcedOn:
		return true, nil
	case ForcedOff:
		return false, nil
	}
	return ui.Confirm(messages.PromptUseDefaults, true)
}

// resolveCapability applies the decision precedence for one capability:
// explicit override wins, else the use-defaults shortcut answers yes, else
// the operator is asked.
func resolveCapability(override TriState, useDefaults bool, ui prompt.UI, promptText string) (bool, error) {
	switch override {
	case ForcedOn:
		return true, nil
	case ForcedOff:
		return false, nil
	}
	if useDefaults {
		return true, nil
	}
	return ui.Confirm(promptText, true)
}

// resolveDir settles the target directory. Declining the default offer or
// the erase-existing confirmation aborts the whole flow cleanly.
func resolveDir(dir string, useDefaults bool, pr probe.Probe, ui prompt.UI) (string, error) {
	if dir == "" {
		defaultDir, err := filepath.Abs("./brewblox")
		if err != nil {
			return "", err
		}
		if !useDefaults {
			ok, err := ui.Confirm(fmt.Sprintf(messages.PromptDefaultDirFmt, defaultDir), true)
			if err != nil {
				return "", err
			}
			if !ok {
				return "", prompt.ErrAborted
			}
		}
		dir = defaultDir
	} else {
		expanded, err := homedir.Expand(dir)
		if err != nil {
			return "", err
		}
		dir, err = filepath.Abs(expanded)
		if err != nil {
			return "", err
		}
	}

	if pr.PathExists(dir) {
		ok, err := ui.Confirm(fmt.Sprintf(messages.PromptEraseDirFmt, dir), true)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", prompt.ErrAborted
		}
	}
	return dir, nil
}
