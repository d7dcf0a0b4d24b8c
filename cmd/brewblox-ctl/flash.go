package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brewblox/brewblox-ctl/internal/flasher"
	"github.com/brewblox/brewblox-ctl/internal/messages"
	"github.com/brewblox/brewblox-ctl/internal/prompt"
)

func newFlashCmd() *cobra.Command {
	var release string
	var pull bool

	cmd := &cobra.Command{
		Use:   messages.FlashUse,
		Short: messages.FlashShort,
		Long:  messages.FlashLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFirmwareMode(cmd, flasher.ModeFlash, release, pull, "")
		},
	}

	cmd.Flags().StringVar(&release, "release", "", messages.FlashFlagRelease)
	cmd.Flags().BoolVar(&pull, "pull", true, messages.FlashFlagPull)

	return cmd
}

func newWifiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.WifiUse,
		Short: messages.WifiShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFirmwareMode(cmd, flasher.ModeWifi, "", false, "")
		},
	}
}

func newParticleCmd() *cobra.Command {
	var release, command string
	var pull bool

	cmd := &cobra.Command{
		Use:   messages.ParticleUse,
		Short: messages.ParticleShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFirmwareMode(cmd, flasher.ModeParticle, release, pull, command)
		},
	}

	cmd.Flags().StringVar(&release, "release", "", messages.FlashFlagRelease)
	cmd.Flags().BoolVar(&pull, "pull", true, messages.FlashFlagPull)
	cmd.Flags().StringVarP(&command, "command", "c", "", messages.ParticleFlagCommand)

	return cmd
}

// runFirmwareMode dispatches one firmware operation through the flasher.
func runFirmwareMode(cmd *cobra.Command, mode flasher.Mode, release string, pull bool, command string) error {
	out := cmd.OutOrStdout()
	if mode.Disabled() {
		_, _ = fmt.Fprintln(out, messages.WifiDisabledNotice)
		_, _ = fmt.Fprintln(out, messages.WifiDisabledGuide1)
		_, _ = fmt.Fprintln(out, messages.WifiDisabledGuide2)
		return nil
	}

	cfg, err := loadSettingsFunc()
	if err != nil {
		return err
	}
	ui := newUIFunc()
	if err := prompt.ConfirmMode(ui, skipConfirm(cfg), cmd.CommandPath()); err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	o := &flasher.Orchestrator{
		Runner:  newRunnerFunc(out, errOut),
		Probe:   newProbeFunc(),
		Out:     out,
		Err:     errOut,
		Release: cfg.ReleaseOr(release),
		Pull:    pull,
	}
	if mode == flasher.ModeParticle {
		return o.Particle(command)
	}
	return o.Flash()
}
