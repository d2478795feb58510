package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shellrig/internal/infrastructure/pathenv"
)

// newTrailCommand prints the search path one directory per line. The
// default alias table maps `trail` to this command.
func newTrailCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "trail",
		Short: "Print PATH, one directory per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, dir := range pathenv.Split(os.Getenv("PATH")) {
				fmt.Fprintln(cmd.OutOrStdout(), dir)
			}
			return nil
		},
	}
}
