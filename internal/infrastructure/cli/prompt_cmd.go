package cli

import (
	"fmt"
	"os"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"shellrig/internal/app"
)

// ansiSequence matches SGR escape sequences so they can be wrapped in
// zsh's zero-width markers; unwrapped escapes make zsh miscount the
// prompt width.
var ansiSequence = regexp.MustCompile("\x1b\\[[0-9;]*m")

// newPromptCommand renders one prompt side. The emitted precmd hook calls
// this once per side per command cycle.
func newPromptCommand(container *app.Container) *cobra.Command {
	var shellFlag string

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Render a prompt segment (called from the precmd hook)",
	}
	cmd.PersistentFlags().StringVar(&shellFlag, "shell", "zsh", "Shell consuming the prompt (zsh|bash)")

	var status int
	left := &cobra.Command{
		Use:   "left",
		Short: "Render the left prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			setPromptColorProfile()
			out := container.PromptService.Left(status)
			fmt.Fprint(cmd.OutOrStdout(), escapeForShell(out, shellFlag))
			return nil
		},
	}
	left.Flags().IntVar(&status, "status", 0, "Exit status of the previous command")

	right := &cobra.Command{
		Use:   "right",
		Short: "Render the right prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			setPromptColorProfile()
			// The pre-command refresh: query version control before the
			// prompt is drawn. Blocks until the query finishes.
			container.PromptService.Refresh(cmd.Context())
			out := container.PromptService.Right()
			fmt.Fprint(cmd.OutOrStdout(), escapeForShell(out, shellFlag))
			return nil
		},
	}

	cmd.AddCommand(left, right)
	return cmd
}

// setPromptColorProfile forces colors on: the shell reads the prompt
// through a pipe, so TTY detection would strip them. NO_COLOR still wins.
func setPromptColorProfile() {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ANSI256)
}

// escapeForShell wraps escape sequences in the shell's zero-width markers.
func escapeForShell(s, shell string) string {
	switch shell {
	case "bash":
		return ansiSequence.ReplaceAllString(s, "\\[$0\\]")
	default: // zsh
		return ansiSequence.ReplaceAllString(s, "%{$0%}")
	}
}
