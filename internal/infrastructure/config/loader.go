package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"shellrig/assets"
	"shellrig/internal/domain"
	"shellrig/internal/pkg/filesystem"
	"shellrig/internal/ports"
)

// FileLoader loads YAML configuration from ~/.shellrig/config.yaml
// (overridable via SHELLRIG_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing file is seeded with the
// embedded defaults; an unreadable or unparsable file is the one fatal
// condition of the whole bootstrap.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if err := os.WriteFile(path, assets.DefaultConfigYAML, 0o600); err != nil {
				return domain.Config{}, err
			}
			data = assets.DefaultConfigYAML
		} else {
			return domain.Config{}, err
		}
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return hydrateDefaults(cfg), nil
}

// Path reports the resolved config file location.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("SHELLRIG_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".shellrig", "config.yaml")
}

func ensureConfigDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Docker.SocketPath == "" {
		cfg.Docker.SocketPath = "/var/run/docker.sock"
	}
	if cfg.History.File == "" {
		cfg.History.File = "~/.zsh_history"
	}
	if cfg.History.Size == 0 {
		cfg.History.Size = 10000
	}
	if cfg.Prompt.SuccessGlyph == "" {
		cfg.Prompt.SuccessGlyph = "❯"
	}
	if cfg.Prompt.FailureGlyph == "" {
		cfg.Prompt.FailureGlyph = "✘"
	}
	if cfg.Prompt.TimeFormat == "" {
		cfg.Prompt.TimeFormat = "%H:%M:%S"
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
