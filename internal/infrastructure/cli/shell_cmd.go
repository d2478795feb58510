package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"shellrig/internal/app"
)

// newInstallCommand wires shellrig into the shell's rc file.
func newInstallCommand(container *app.Container) *cobra.Command {
	var (
		shell string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install shellrig shell integration",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := container.ShellIntegrator.Install(shell, force)
			if err != nil {
				return fmt.Errorf("install: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Installed for %s\nScript: %s\nRC file: %s\n",
				result.Shell, result.ScriptPath, result.RCFile)
			if !result.RCUpdated {
				fmt.Fprintln(cmd.OutOrStdout(), "RC file already sourced the hook; left untouched.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&shell, "shell", "", "Shell to install (zsh|bash, auto-detected by default)")
	cmd.Flags().BoolVar(&force, "force", false, "Rewrite the rc entry even if present")

	return cmd
}

// newUninstallCommand removes the rc-file line (the hook script stays).
func newUninstallCommand(container *app.Container) *cobra.Command {
	var shell string

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove shellrig shell integration",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := container.ShellIntegrator.Uninstall(shell)
			if err != nil {
				return fmt.Errorf("uninstall: %w", err)
			}
			if result.RCUpdated {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed sourcing line for %s from %s\n", result.Shell, result.RCFile)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "No sourcing line found in %s\n", result.RCFile)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&shell, "shell", "", "Shell to uninstall (zsh|bash, auto-detected by default)")

	return cmd
}

// newStatusCommand reports the integration state.
func newStatusCommand(container *app.Container) *cobra.Command {
	var shell string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show shell integration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			status := container.ShellIntegrator.Status(shell)
			if status.Error != "" {
				return fmt.Errorf("status: %s", status.Error)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Shell: %s\nScript: %s (present: %t)\nRC line: present: %t\n",
				status.Shell, status.ScriptPath, status.ScriptExists, status.LinePresent)
			return nil
		},
	}

	cmd.Flags().StringVar(&shell, "shell", "", "Shell to inspect (zsh|bash, auto-detected by default)")

	return cmd
}
