package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// version is stamped at build time via -ldflags "-X shellrig/internal/infrastructure/cli.version=...".
var version = "dev"

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "shellrig %s (%s/%s)\n", version, runtime.GOOS, runtime.GOARCH)
		},
	}
}
