package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"shellrig/internal/app"
	"shellrig/internal/domain"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// newDoctorCommand runs environment diagnostics.
func newDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the shellrig environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				lipgloss.SetColorProfile(termenv.Ascii)
			}

			report, err := container.DoctorService.Run(cmd.Context())
			renderReport(cmd, report)
			return err
		},
	}
}

func renderReport(cmd *cobra.Command, report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %-18s %s\n", badge(check.Status), check.Name, check.Details)
	}
}

func badge(status domain.HealthStatus) string {
	switch status {
	case domain.HealthOK:
		return okStyle.Render("[ ok ]")
	case domain.HealthWarn:
		return warnStyle.Render("[warn]")
	default:
		return errStyle.Render("[fail]")
	}
}
