// Package vcs queries git for the prompt's status snapshot.
package vcs

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"shellrig/internal/domain"
	"shellrig/internal/ports"
)

// GitCollector shells out to the git binary. The query runs synchronously;
// the prompt waits for it.
type GitCollector struct {
	gitPath string
}

// NewGitCollector builds a collector. A missing git binary is not an
// error here; every snapshot is simply empty.
func NewGitCollector() *GitCollector {
	path, err := exec.LookPath("git")
	if err != nil {
		return &GitCollector{}
	}
	return &GitCollector{gitPath: path}
}

// Snapshot implements ports.VCSCollector. Untracked directories and any
// git failure yield the zero snapshot, never an error.
func (c *GitCollector) Snapshot(ctx context.Context, dir string) domain.VCSStatus {
	if c.gitPath == "" {
		return domain.VCSStatus{}
	}
	branch := strings.TrimSpace(c.run(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD"))
	if branch == "" {
		return domain.VCSStatus{}
	}
	porcelain := c.run(ctx, dir, "status", "--porcelain")
	return domain.VCSStatus{
		Branch: branch,
		Dirty:  strings.TrimSpace(porcelain) != "",
	}
}

func (c *GitCollector) run(ctx context.Context, dir string, args ...string) string {
	cmd := exec.CommandContext(ctx, c.gitPath, args...)
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return ""
	}
	return out.String()
}

var _ ports.VCSCollector = (*GitCollector)(nil)
