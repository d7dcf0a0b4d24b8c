package main

import (
	"github.com/spf13/cobra"

	"github.com/brewblox/brewblox-ctl/internal/ipv6"
	"github.com/brewblox/brewblox-ctl/internal/messages"
	"github.com/brewblox/brewblox-ctl/internal/prompt"
)

func newEnableIPv6Cmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   messages.EnableIPv6Use,
		Short: messages.EnableIPv6Short,
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
			return ipv6.Enable(newRunnerFunc(out, errOut), configFile, true, out, errOut)
		},
	}

	cmd.Flags().StringVar(&configFile, "config-file", "", messages.EnableIPv6FlagConfigFile)

	return cmd
}
