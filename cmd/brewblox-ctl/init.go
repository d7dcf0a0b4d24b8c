package main

import (
	"github.com/spf13/cobra"

	"github.com/brewblox/brewblox-ctl/internal/install"
	"github.com/brewblox/brewblox-ctl/internal/messages"
	"github.com/brewblox/brewblox-ctl/internal/prompt"
)

func newInitCmd() *cobra.Command {
	var dir, release string
	var force, skipConfirmFlag bool

	cmd := &cobra.Command{
		Use:   messages.InitUse,
		Short: messages.InitShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettingsFunc()
			if err != nil {
				return err
			}
			ui := newUIFunc()
			if err := prompt.ConfirmMode(ui, skipConfirm(cfg), cmd.CommandPath()); err != nil {
				return err
			}
			target, err := resolveDirFlag(dir)
			if err != nil {
				return err
			}
			ini := &install.Initializer{
				System: install.RealSystem{},
				UI:     ui,
				Out:    cmd.OutOrStdout(),
			}
			return ini.Run(install.InitOptions{
				Dir:         target,
				Release:     cfg.ReleaseOr(release),
				Force:       force,
				SkipConfirm: skipConfirmFlag,
			})
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "./brewblox", messages.InitFlagDir)
	cmd.Flags().StringVar(&release, "release", "", messages.InitFlagRelease)
	cmd.Flags().BoolVar(&force, "force", false, messages.InitFlagForce)
	cmd.Flags().BoolVar(&skipConfirmFlag, "skip-confirm", false, messages.InitFlagSkipConfirm)

	return cmd
}
