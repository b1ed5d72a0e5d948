package cmd

import (
	"fmt"

	"github.com/apmgui/alpm-setup/internal/config"
	"github.com/apmgui/alpm-setup/internal/installer"
	"github.com/apmgui/alpm-setup/internal/log"
	"github.com/spf13/cobra"
)

var installRunFn = installer.Install

var (
	installKeepLocal bool
	installSkipDeps  bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install alpm and its runtime dependencies",
	Long: `Sync the runtime dependencies through pacman, fetch the alpm release
binary (skipped when a local copy is already staged), and install it to the
system binary directory with mode 0755.

You may be prompted for your password; do not run this as root.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		fmt.Printf("Installing %s...\n", cfg.BinaryName)

		opts := installer.Options{
			KeepLocal: installKeepLocal,
			SkipDeps:  installSkipDeps,
		}
		if err := installRunFn(cfg, opts); err != nil {
			return err
		}

		fmt.Printf("\n%s installed to %s\n", cfg.BinaryName, cfg.InstallPath())
		if installKeepLocal {
			log.Info("local copy kept at %s", cfg.LocalPath)
		}
		return nil
	},
}

func init() {
	installCmd.Flags().BoolVar(&installKeepLocal, "keep-local", false, "keep the staged local copy after installing")
	installCmd.Flags().BoolVar(&installSkipDeps, "skip-deps", false, "skip the pacman dependency sync")
	rootCmd.AddCommand(installCmd)
}
