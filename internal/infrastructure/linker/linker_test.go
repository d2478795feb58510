package linker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shellrig/internal/domain"
	"shellrig/internal/pkg/logger"
)

func newLinker(t *testing.T) *Linker {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	return New(logger.NewStd(false))
}

func TestEnsurePathCreatesFileAndDirectory(t *testing.T) {
	l := newLinker(t)
	base := t.TempDir()

	file := l.EnsurePath(filepath.Join(base, "notes.txt"))
	assert.Equal(t, domain.SyncCreated, file.Action)
	assert.Equal(t, "file", file.Kind)

	dir := l.EnsurePath(filepath.Join(base, "workspace"))
	assert.Equal(t, domain.SyncCreated, dir.Action)
	assert.Equal(t, "dir", dir.Kind)

	info, err := os.Stat(filepath.Join(base, "workspace"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsurePathDotfileIsAFile(t *testing.T) {
	l := newLinker(t)

	result := l.EnsurePath(filepath.Join(t.TempDir(), ".hushlogin"))
	assert.Equal(t, domain.SyncCreated, result.Action)
	assert.Equal(t, "file", result.Kind)
}

func TestEnsurePathSkipsExisting(t *testing.T) {
	l := newLinker(t)
	path := filepath.Join(t.TempDir(), "existing.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	result := l.EnsurePath(path)
	assert.Equal(t, domain.SyncSkipped, result.Action)
}

func TestEnsureLinkLifecycle(t *testing.T) {
	l := newLinker(t)
	base := t.TempDir()

	target := filepath.Join(base, "dotfiles", "gitconfig")
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))
	require.NoError(t, os.WriteFile(target, []byte("[user]"), 0o644))
	link := filepath.Join(base, ".gitconfig")

	created := l.EnsureLink(target, link)
	assert.Equal(t, domain.SyncCreated, created.Action)

	skipped := l.EnsureLink(target, link)
	assert.Equal(t, domain.SyncSkipped, skipped.Action)

	// Re-point an existing link at a new target.
	other := filepath.Join(base, "dotfiles", "gitconfig.work")
	require.NoError(t, os.WriteFile(other, []byte("[user]"), 0o644))
	updated := l.EnsureLink(other, link)
	assert.Equal(t, domain.SyncUpdated, updated.Action)

	resolved, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, other, resolved)
}

func TestEnsureLinkMissingTarget(t *testing.T) {
	l := newLinker(t)
	base := t.TempDir()

	result := l.EnsureLink(filepath.Join(base, "missing"), filepath.Join(base, "link"))
	assert.Equal(t, domain.SyncFailed, result.Action)
}

func TestEnsureLinkRefusesToClobberRegularFile(t *testing.T) {
	l := newLinker(t)
	base := t.TempDir()

	target := filepath.Join(base, "target")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))
	occupied := filepath.Join(base, "occupied")
	require.NoError(t, os.WriteFile(occupied, []byte("precious"), 0o644))

	result := l.EnsureLink(target, occupied)
	assert.Equal(t, domain.SyncFailed, result.Action)

	// The occupying file is untouched.
	content, err := os.ReadFile(occupied)
	require.NoError(t, err)
	assert.Equal(t, "precious", string(content))
}
