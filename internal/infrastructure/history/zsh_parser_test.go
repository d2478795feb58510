package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeHistory(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zsh_history")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseExtendedFormat(t *testing.T) {
	path := writeHistory(t, ": 1700000000:0;git status\n: 1700000042:3;make build\n")

	entries, err := ParseZshHistory(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "git status", entries[0].Command)
	assert.Equal(t, time.Unix(1700000000, 0), entries[0].Timestamp)
	assert.Equal(t, time.Duration(0), entries[0].Duration)

	assert.Equal(t, "make build", entries[1].Command)
	assert.Equal(t, 3*time.Second, entries[1].Duration)
}

func TestParsePlainLines(t *testing.T) {
	path := writeHistory(t, "ls -la\ncd /tmp\n\n")

	entries, err := ParseZshHistory(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "ls -la", entries[0].Command)
	assert.True(t, entries[0].Timestamp.IsZero())
}

func TestParseMultiLineContinuation(t *testing.T) {
	path := writeHistory(t, ": 1700000000:0;echo one \\\ntwo \\\nthree\n: 1700000001:0;pwd\n")

	entries, err := ParseZshHistory(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "echo one \ntwo \nthree", entries[0].Command)
	assert.Equal(t, "pwd", entries[1].Command)
}

func TestParseMissingFile(t *testing.T) {
	_, err := ParseZshHistory(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
