package main

import (
	"github.com/spf13/cobra"

	"github.com/brewblox/brewblox-ctl/internal/install"
	"github.com/brewblox/brewblox-ctl/internal/messages"
	"github.com/brewblox/brewblox-ctl/internal/prompt"
)

func newInstallCmd() *cobra.Command {
	var useDefaults, aptInstall, dockerInstall, dockerUser bool
	var dir, release, snapshotFile string
	var noReboot bool

	cmd := &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Long:  messages.InstallLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettingsFunc()
			if err != nil {
				return err
			}
			ui := newUIFunc()
			if err := prompt.ConfirmMode(ui, skipConfirm(cfg), cmd.CommandPath()); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			errOut := cmd.ErrOrStderr()
			pr := newProbeFunc()
			runner := newRunnerFunc(out, errOut)

			opts := install.Options{
				UseDefaults:   triFlag(cmd, "use-defaults"),
				AptInstall:    triFlag(cmd, "apt-install"),
				DockerInstall: triFlag(cmd, "docker-install"),
				DockerUser:    triFlag(cmd, "docker-user"),
				Dir:           dir,
				NoReboot:      noReboot,
				Release:       cfg.ReleaseOr(release),
				SnapshotFile:  snapshotFile,
				AptPackages:   cfg.AptPackagesOr(),
			}

			plan, err := install.Resolve(opts, pr, ui, out)
			if err != nil {
				return err
			}
			ex := install.NewExecutor(runner, pr, ui, out, errOut)
			if err := ex.Execute(plan); err != nil {
				return err
			}
			return install.FinalizeReboot(runner, ui, plan.NoReboot, plan.PromptReboot, out)
		},
	}

	cmd.Flags().BoolVarP(&useDefaults, "use-defaults", "d", false, messages.InstallFlagUseDefaults)
	cmd.Flags().BoolVar(&aptInstall, "apt-install", false, messages.InstallFlagAptInstall)
	cmd.Flags().BoolVar(&dockerInstall, "docker-install", false, messages.InstallFlagDockerInstall)
	cmd.Flags().BoolVar(&dockerUser, "docker-user", false, messages.InstallFlagDockerUser)
	cmd.Flags().StringVar(&dir, "dir", "", messages.InstallFlagDir)
	cmd.Flags().BoolVar(&noReboot, "no-reboot", false, messages.InstallFlagNoReboot)
	cmd.Flags().StringVar(&release, "release", "", messages.InstallFlagRelease)
	cmd.Flags().StringVar(&snapshotFile, "snapshot", "", messages.InstallFlagSnapshot)

	return cmd
}
