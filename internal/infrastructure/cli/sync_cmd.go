package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"shellrig/internal/app"
	"shellrig/internal/domain"
)

// newSyncCommand applies the configured filesystem state.
func newSyncCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Create declared paths, maintain symlinks, run follow-up scripts",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := container.SyncService.Run(cmd.Context())
			if err != nil {
				return err
			}
			failures := 0
			for _, result := range results {
				line := fmt.Sprintf("%-7s %-4s %s", result.Action, result.Kind, result.Path)
				if result.Target != "" {
					line += " -> " + result.Target
				}
				if result.Details != "" {
					line += " (" + result.Details + ")"
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
				if result.Action == domain.SyncFailed {
					failures++
				}
			}
			if failures > 0 {
				return fmt.Errorf("%d sync item(s) failed", failures)
			}
			return nil
		},
	}
}
