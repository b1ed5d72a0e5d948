package cmd

import (
	"fmt"

	"github.com/apmgui/alpm-setup/internal/config"
	"github.com/apmgui/alpm-setup/internal/doctor"
	"github.com/apmgui/alpm-setup/internal/term"
	"github.com/spf13/cobra"
)

var doctorRunFn = doctor.Run

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose environment issues",
	Long: `Run diagnostic checks and print a pass/fail/warn checklist.

  alpm-setup doctor`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		report := doctorRunFn(cfg)
		printReport(report)
		if report.Failed() {
			return fmt.Errorf("doctor found problems")
		}
		return nil
	},
}

func printReport(report doctor.Report) {
	for _, r := range report.Results {
		icon := statusIcon(r.Status)
		fmt.Printf("  %s  %-24s %s\n", icon, r.Name, r.Message)
	}
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.Pass:
		return term.CheckMark
	case doctor.Warn:
		return term.WarnMark
	case doctor.Fail:
		return term.CrossMark
	default:
		return "?"
	}
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
