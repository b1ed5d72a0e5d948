package cmd

import (
	"fmt"

	"github.com/apmgui/alpm-setup/internal/config"
	"github.com/apmgui/alpm-setup/internal/installer"
	"github.com/apmgui/alpm-setup/internal/log"
	"github.com/spf13/cobra"
)

var uninstallRunFn = installer.Uninstall

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the installed alpm binary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		removed, err := uninstallRunFn(cfg)
		if err != nil {
			return err
		}
		if !removed {
			log.Warn("%s is not installed, nothing to do", cfg.InstallPath())
			return nil
		}

		fmt.Printf("\n%s has been removed.\n", cfg.BinaryName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}
