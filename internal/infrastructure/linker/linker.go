// Package linker maintains files, directories, and symlinks declared in
// the sync section of the configuration.
package linker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"shellrig/internal/domain"
	"shellrig/internal/pkg/filesystem"
	"shellrig/internal/ports"
)

// Linker applies create and link actions. Failures are recorded per item
// and never abort the remaining items.
type Linker struct {
	logger ports.Logger
	home   string
}

// New builds a Linker.
func New(logger ports.Logger) *Linker {
	return &Linker{logger: logger, home: filesystem.UserHomeDir()}
}

// EnsurePath creates the named file or directory. A name with an extension
// or a leading dot becomes a file, anything else a directory. Existing
// paths of any kind are skipped.
func (l *Linker) EnsurePath(path string) domain.SyncResult {
	resolved := l.expand(path)
	if _, err := os.Lstat(resolved); err == nil {
		return domain.SyncResult{Kind: kindOf(resolved), Path: resolved, Action: domain.SyncSkipped, Details: "already exists"}
	}

	base := filepath.Base(resolved)
	if strings.HasPrefix(base, ".") || filepath.Ext(base) != "" {
		if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
			return failed("file", resolved, "", err)
		}
		file, err := os.OpenFile(resolved, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err != nil {
			return failed("file", resolved, "", err)
		}
		file.Close()
		l.logger.Info("created file", map[string]interface{}{"path": resolved})
		return domain.SyncResult{Kind: "file", Path: resolved, Action: domain.SyncCreated}
	}

	if err := os.MkdirAll(resolved, 0o755); err != nil {
		return failed("dir", resolved, "", err)
	}
	l.logger.Info("created directory", map[string]interface{}{"path": resolved})
	return domain.SyncResult{Kind: "dir", Path: resolved, Action: domain.SyncCreated}
}

// EnsureLink points link at target. A link already pointing at target is
// skipped; a link pointing elsewhere is re-pointed; a missing target is an
// error for that item.
func (l *Linker) EnsureLink(target, link string) domain.SyncResult {
	targetPath := l.expand(target)
	linkPath := l.expand(link)

	if _, err := os.Stat(targetPath); err != nil {
		return failed("link", linkPath, targetPath, fmt.Errorf("target missing: %w", err))
	}

	if current, err := os.Readlink(linkPath); err == nil {
		if current == targetPath {
			return domain.SyncResult{Kind: "link", Path: linkPath, Target: targetPath, Action: domain.SyncSkipped, Details: "already linked"}
		}
		if err := os.Remove(linkPath); err != nil {
			return failed("link", linkPath, targetPath, err)
		}
		if err := os.Symlink(targetPath, linkPath); err != nil {
			return failed("link", linkPath, targetPath, err)
		}
		l.logger.Info("updated link", map[string]interface{}{"link": linkPath, "target": targetPath})
		return domain.SyncResult{Kind: "link", Path: linkPath, Target: targetPath, Action: domain.SyncUpdated}
	}

	if _, err := os.Lstat(linkPath); err == nil {
		// A regular file or directory occupies the link location.
		return failed("link", linkPath, targetPath, fmt.Errorf("path exists and is not a symlink"))
	}

	if err := os.MkdirAll(filepath.Dir(linkPath), 0o755); err != nil {
		return failed("link", linkPath, targetPath, err)
	}
	if err := os.Symlink(targetPath, linkPath); err != nil {
		return failed("link", linkPath, targetPath, err)
	}
	l.logger.Info("created link", map[string]interface{}{"link": linkPath, "target": targetPath})
	return domain.SyncResult{Kind: "link", Path: linkPath, Target: targetPath, Action: domain.SyncCreated}
}

func (l *Linker) expand(path string) string {
	if path == "~" {
		return l.home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(l.home, path[2:])
	}
	return os.ExpandEnv(path)
}

func kindOf(path string) string {
	info, err := os.Lstat(path)
	switch {
	case err != nil:
		return "file"
	case info.Mode()&os.ModeSymlink != 0:
		return "link"
	case info.IsDir():
		return "dir"
	default:
		return "file"
	}
}

func failed(kind, path, target string, err error) domain.SyncResult {
	return domain.SyncResult{Kind: kind, Path: path, Target: target, Action: domain.SyncFailed, Details: err.Error()}
}
