package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"shellrig/internal/app"
	"shellrig/internal/domain"
	shellinfra "shellrig/internal/infrastructure/shell"
)

// newInitCommand emits the bootstrap script for eval at shell startup:
//
//	eval "$(shellrig init --shell zsh)"
func newInitCommand(container *app.Container) *cobra.Command {
	var (
		shellFlag string
		printEnv  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Print the startup script for the current shell",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := container.BootstrapService.Compose(cmd.Context())
			if err != nil {
				return err
			}

			if printEnv {
				for _, export := range env.Exports() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", export.Name, export.Value)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "PATH=%s\n", strings.Join(env.Path, ":"))
				return nil
			}

			name := resolveShellName(shellFlag, container)
			fmt.Fprint(cmd.OutOrStdout(), shellinfra.RenderScript(env, name))
			return nil
		},
	}

	cmd.Flags().StringVar(&shellFlag, "shell", "", "Target shell (zsh|bash, auto-detected by default)")
	cmd.Flags().BoolVar(&printEnv, "print-env", false, "Print resolved exports instead of the script")

	return cmd
}

func resolveShellName(flag string, container *app.Container) domain.ShellName {
	name := flag
	if name == "" {
		name = filepath.Base(container.ShellIntegrator.DetectShell())
	}
	switch strings.ToLower(name) {
	case "bash":
		return domain.ShellBash
	default:
		return domain.ShellZsh
	}
}
