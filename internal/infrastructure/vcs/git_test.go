package vcs

import (
	"context"
	"os/exec"
	"testing"
)

func TestSnapshotOutsideRepository(t *testing.T) {
	collector := NewGitCollector()

	status := collector.Snapshot(context.Background(), t.TempDir())
	if status.InRepo() {
		t.Errorf("temp dir reported as repository: %+v", status)
	}
	if status.Branch != "" || status.Dirty {
		t.Errorf("expected zero snapshot, got %+v", status)
	}
}

func TestSnapshotInsideRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	ctx := context.Background()

	for _, args := range [][]string{
		{"init", "--initial-branch", "main"},
		{"config", "user.email", "test@example.com"},
		{"config", "user.name", "test"},
		{"commit", "--allow-empty", "-m", "init"},
	} {
		cmd := exec.CommandContext(ctx, "git", args...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Skipf("git %v failed: %v (%s)", args, err, out)
		}
	}

	status := NewGitCollector().Snapshot(ctx, dir)
	if status.Branch != "main" {
		t.Errorf("branch = %q, want main", status.Branch)
	}
	if status.Dirty {
		t.Error("fresh repository reported dirty")
	}
}

func TestSnapshotWithoutGitBinary(t *testing.T) {
	collector := &GitCollector{} // as if LookPath failed

	status := collector.Snapshot(context.Background(), t.TempDir())
	if status.InRepo() {
		t.Errorf("expected zero snapshot, got %+v", status)
	}
}
