package main

import (
	"github.com/spf13/cobra"

	"github.com/brewblox/brewblox-ctl/internal/messages"
	"github.com/brewblox/brewblox-ctl/internal/probe"
	"github.com/brewblox/brewblox-ctl/internal/prompt"
	"github.com/brewblox/brewblox-ctl/internal/shell"
	"github.com/brewblox/brewblox-ctl/internal/snapshot"
)

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.SnapshotUse,
		Short: messages.SnapshotShort,
	}
	cmd.AddCommand(newSnapshotSaveCmd(), newSnapshotLoadCmd())
	return cmd
}

func newSnapshotSaveCmd() *cobra.Command {
	var dir, file string
	var force bool

	cmd := &cobra.Command{
		Use:   messages.SnapshotSaveUse,
		Short: messages.SnapshotSaveShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, ui, pr, target, err := snapshotCollaborators(cmd, dir)
			if err != nil {
				return err
			}
			return snapshot.Save(runner, ui, pr, target, file, force, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "./brewblox", messages.SnapshotFlagDir)
	cmd.Flags().StringVar(&file, "file", "./brewblox.tar.gz", messages.SnapshotFlagFile)
	cmd.Flags().BoolVar(&force, "force", false, messages.SnapshotFlagForce)

	return cmd
}

func newSnapshotLoadCmd() *cobra.Command {
	var dir, file string
	var force bool

	cmd := &cobra.Command{
		Use:   messages.SnapshotLoadUse,
		Short: messages.SnapshotLoadShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, ui, pr, target, err := snapshotCollaborators(cmd, dir)
			if err != nil {
				return err
			}
			return snapshot.Load(runner, ui, pr, target, file, force, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "./brewblox", messages.SnapshotFlagDir)
	cmd.Flags().StringVar(&file, "file", "./brewblox.tar.gz", messages.SnapshotFlagFile)
	cmd.Flags().BoolVar(&force, "force", false, messages.SnapshotFlagForce)

	return cmd
}

// snapshotCollaborators gates the command behind confirm mode and builds
// the shared snapshot dependencies.
func snapshotCollaborators(cmd *cobra.Command, dir string) (runner shell.Runner, ui prompt.UI, pr probe.Probe, target string, err error) {
	cfg, err := loadSettingsFunc()
	if err != nil {
		return nil, nil, nil, "", err
	}
	ui = newUIFunc()
	if err := prompt.ConfirmMode(ui, skipConfirm(cfg), cmd.CommandPath()); err != nil {
		return nil, nil, nil, "", err
	}
	target, err = resolveDirFlag(dir)
	if err != nil {
		return nil, nil, nil, "", err
	}
	runner = newRunnerFunc(cmd.OutOrStdout(), cmd.ErrOrStderr())
	pr = newProbeFunc()
	return runner, ui, pr, target, nil
}
