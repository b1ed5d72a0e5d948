package cmd

import (
	"fmt"

	"github.com/apmgui/alpm-setup/internal/log"
	"github.com/spf13/cobra"
)

var Version = "1.2.0"

var rootCmd = &cobra.Command{
	Use:   "alpm-setup",
	Short: "Install and uninstall the alpm package manager GUI",
	Long: `alpm-setup installs the pre-built alpm binary system-wide. It syncs the
runtime tools the GUI shells out to (flatpak, yay) through pacman, fetches
the release binary unless a local copy is staged next to it, and installs
it to /usr/bin with mode 0755.

  alpm-setup install      # sync deps, fetch the binary, install it
  alpm-setup uninstall    # remove the installed binary
  alpm-setup doctor       # check the environment`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("alpm-setup %s\n", Version)
		return nil
	},
}

func Execute() error {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	err := rootCmd.Execute()
	if err != nil {
		log.Error("%v", err)
	}
	return err
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
