// Package snapshot saves and restores a Brewblox directory as a tarball.
//
// Archives are created and extracted through the shell so file ownership
// inside the directory (docker-created volumes included) survives, and so
// the operator sees the exact commands under confirm mode.
package snapshot

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/brewblox/brewblox-ctl/internal/messages"
	"github.com/brewblox/brewblox-ctl/internal/probe"
	"github.com/brewblox/brewblox-ctl/internal/prompt"
	"github.com/brewblox/brewblox-ctl/internal/shell"
)

var infoColor = color.New(color.FgCyan)

// Save archives dir into file. An existing archive requires force or a
// confirmation before being overwritten.
func Save(runner shell.Runner, ui prompt.UI, pr probe.Probe, dir string, file string, force bool, out io.Writer) error {
	if pr.PathExists(file) && !force {
		ok, err := ui.Confirm(fmt.Sprintf("`%s` already exists. Do you want to overwrite it?", file), true)
		if err != nil {
			return err
		}
		if !ok {
			return prompt.ErrAborted
		}
	}

	infoColor.Fprintln(out, messages.InfoSnapshotSave)
	parent := filepath.Dir(dir)
	base := filepath.Base(dir)
	return runner.Run(fmt.Sprintf("sudo tar -C %s -czf %s %s",
		shell.Quote(parent), shell.Quote(file), shell.Quote(base)))
}

// Load extracts the archive in file into dir, replacing whatever is there.
// An existing dir requires force or a confirmation before being erased.
func Load(runner shell.Runner, ui prompt.UI, pr probe.Probe, dir string, file string, force bool, out io.Writer) error {
	if !pr.PathExists(file) {
		return fmt.Errorf(messages.ErrSnapshotMissing, file)
	}

	if pr.PathExists(dir) {
		if !force {
			ok, err := ui.Confirm(fmt.Sprintf(messages.PromptEraseDirFmt, dir), true)
			if err != nil {
				return err
			}
			if !ok {
				return prompt.ErrAborted
			}
		}
		if err := runner.Run(fmt.Sprintf("sudo rm -rf %s", shell.Quote(dir))); err != nil {
			return err
		}
	}

	infoColor.Fprintln(out, messages.InfoSnapshotLoad)
	return runner.RunAll([]shell.Step{
		{Cmd: fmt.Sprintf("mkdir -p %s", shell.Quote(dir))},
		{Cmd: fmt.Sprintf("sudo tar -xzf %s -C %s --strip-components=1",
			shell.Quote(file), shell.Quote(dir))},
	})
}
