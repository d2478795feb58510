package cli

import (
	"context"

	"github.com/spf13/cobra"

	"shellrig/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	root := &cobra.Command{
		Use:   "shellrig",
		Short: "shellrig - shell environment bootstrapper",
		Long: "shellrig composes the shell environment a login shell evals at startup:\n" +
			"docker socket detection, search path, aliases, history policy, prompt,\n" +
			"and the startup delegation script.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newInitCommand(container))
	root.AddCommand(newPromptCommand(container))
	root.AddCommand(newTrailCommand())
	root.AddCommand(newSyncCommand(container))
	root.AddCommand(newHistoryCommand(container))
	root.AddCommand(newDoctorCommand(container))
	root.AddCommand(newInstallCommand(container))
	root.AddCommand(newUninstallCommand(container))
	root.AddCommand(newStatusCommand(container))
	root.AddCommand(newVersionCommand())
	return root, nil
}
