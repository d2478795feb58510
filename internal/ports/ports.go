// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and
// external adapters (infrastructure). The application depends on these
// abstractions, never on a concrete filesystem, git binary, or database.
package ports

import (
	"context"

	"shellrig/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.shellrig/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// SocketDetector probes a filesystem path for a socket special file.
// found is false for any stat failure, permission errors included.
type SocketDetector interface {
	Detect(path string) (uri string, found bool)
}

// VCSCollector takes a version-control snapshot of a directory. A directory
// outside any repository, or a failing query, yields the zero snapshot.
type VCSCollector interface {
	Snapshot(ctx context.Context, dir string) domain.VCSStatus
}

// ShellIntegrator manages the sourced hook script and the rc-file line
// that loads it.
type ShellIntegrator interface {
	Install(shell string, force bool) (domain.ShellInstallResult, error)
	Uninstall(shell string) (domain.ShellInstallResult, error)
	Status(shell string) domain.ShellStatus
	DetectShell() string
}

// HistoryRepository persists imported shell history entries.
type HistoryRepository interface {
	Import(ctx context.Context, batchID string, entries []domain.HistoryEntry) (int, error)
	Stats(ctx context.Context, limit int) ([]domain.CommandStat, error)
	Clear(ctx context.Context) error
	Close() error
}

// FilesystemSyncer applies declared filesystem state: paths that must
// exist and symlinks that must point at their targets.
type FilesystemSyncer interface {
	EnsurePath(path string) domain.SyncResult
	EnsureLink(target, link string) domain.SyncResult
}

// ScriptRunner executes an external script. Callers that must not
// propagate a failure discard the returned error at the call site.
type ScriptRunner interface {
	Run(ctx context.Context, path string, args ...string) error
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
