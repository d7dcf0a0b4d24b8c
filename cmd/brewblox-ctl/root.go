package main

import (
	"io"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/brewblox/brewblox-ctl/internal/install"
	"github.com/brewblox/brewblox-ctl/internal/messages"
	"github.com/brewblox/brewblox-ctl/internal/probe"
	"github.com/brewblox/brewblox-ctl/internal/prompt"
	"github.com/brewblox/brewblox-ctl/internal/settings"
	"github.com/brewblox/brewblox-ctl/internal/shell"
)

// Collaborator constructors, swappable for tests.
var (
	newUIFunc        = prompt.New
	loadSettingsFunc = settings.Load
	newProbeFunc     = func() probe.Probe { return probe.New() }
	newRunnerFunc    = func(out io.Writer, errOut io.Writer) shell.Runner {
		return &shell.ExecRunner{Out: out, Err: errOut}
	}
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		newInstallCmd(),
		newInitCmd(),
		newFlashCmd(),
		newWifiCmd(),
		newParticleCmd(),
		newEnableIPv6Cmd(),
		newSnapshotCmd(),
	)
	return cmd
}

// triFlag reads a bool flag as a tri-state: unset, --name, or --name=false.
func triFlag(cmd *cobra.Command, name string) install.TriState {
	value, _ := cmd.Flags().GetBool(name)
	return install.TriFromFlag(cmd.Flags().Changed(name), value)
}

// skipConfirm resolves the operator's confirm-mode preference. Confirm
// mode is opt-in: prompting before every mutating command is off unless
// the settings file asks for it.
func skipConfirm(cfg *settings.Settings) bool {
	if cfg.SkipConfirm != nil {
		return *cfg.SkipConfirm
	}
	return true
}

// resolveDirFlag expands and absolutizes a directory flag value.
func resolveDirFlag(dir string) (string, error) {
	expanded, err := homedir.Expand(dir)
	if err != nil {
		return "", err
	}
	return filepath.Abs(expanded)
}
