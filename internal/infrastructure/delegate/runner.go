// Package delegate runs external scripts on the caller's behalf.
package delegate

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"shellrig/internal/ports"
)

// Runner executes scripts with inherited stdio. It makes no judgement
// about the script's outcome beyond returning the error.
type Runner struct{}

// NewRunner builds a Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes the script at path and waits for it.
func (r *Runner) Run(ctx context.Context, path string, args ...string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("script %s: %w", path, err)
	}
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("script %s: %w", path, err)
	}
	return nil
}

var _ ports.ScriptRunner = (*Runner)(nil)
