// Package bootstrap composes the shell environment a login shell evals at
// startup. Steps run in a fixed order: plain exports, docker socket probe,
// search path, aliases, history policy, prompt wiring, delegation.
package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"shellrig/internal/domain"
	"shellrig/internal/infrastructure/pathenv"
	"shellrig/internal/ports"
)

// Service builds the ShellEnvironment from configuration and host state.
type Service struct {
	Config   ports.ConfigProvider
	Detector ports.SocketDetector
	Logger   ports.Logger

	// PromptCommand names the binary the emitted hooks call back into.
	PromptCommand string

	// Home and Getenv are injectable for tests; zero values fall back to
	// the process environment.
	Home   string
	Getenv func(string) string
}

// Compose runs every bootstrap step and returns the resulting environment.
// Only a config load failure is fatal; every other miss is skipped.
func (s *Service) Compose(ctx context.Context) (*domain.ShellEnvironment, error) {
	cfg, err := s.Config.Load(ctx)
	if err != nil {
		return nil, err
	}

	env := domain.NewShellEnvironment()
	s.applyExports(cfg, env)
	s.applyDocker(cfg, env)
	s.applyPath(cfg, env)
	s.applyAliases(cfg, env)
	s.applyHistory(cfg, env)
	env.PromptCommand = s.promptCommand()
	s.applyDelegate(cfg, env)
	return env, nil
}

func (s *Service) applyExports(cfg domain.Config, env *domain.ShellEnvironment) {
	for _, export := range cfg.Env.Exports {
		if export.Name == "" {
			continue
		}
		env.SetExport(export.Name, export.Value)
	}
}

// applyDocker exports DOCKER_HOST only when the socket exists right now.
// When absent nothing is emitted, so a value set elsewhere survives.
func (s *Service) applyDocker(cfg domain.Config, env *domain.ShellEnvironment) {
	uri, found := s.Detector.Detect(cfg.Docker.SocketPath)
	if !found {
		s.logger().Debug("docker socket absent", map[string]interface{}{"path": cfg.Docker.SocketPath})
		return
	}
	env.SetExport("DOCKER_HOST", uri)
}

func (s *Service) applyPath(cfg domain.Config, env *domain.ShellEnvironment) {
	inherited := pathenv.Split(s.getenv("PATH"))
	var extra []string
	for _, entry := range cfg.Path.Ensure {
		expanded := pathenv.Expand(entry, s.home())
		if expanded == "" {
			s.logger().Debug("path entry skipped", map[string]interface{}{"entry": entry})
			continue
		}
		extra = append(extra, expanded)
	}
	env.Path = pathenv.Compose(inherited, extra)
}

func (s *Service) applyAliases(cfg domain.Config, env *domain.ShellEnvironment) {
	env.Aliases = domain.DefaultAliases(s.promptCommand())
	names := make([]string, 0, len(cfg.Aliases))
	for name := range cfg.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		env.Aliases.Set(name, cfg.Aliases[name])
	}
}

func (s *Service) applyHistory(cfg domain.Config, env *domain.ShellEnvironment) {
	env.History = domain.HistoryPolicy{
		File:          s.expandHome(cfg.History.File),
		Size:          cfg.History.Size,
		IncAppendTime: cfg.History.IncAppendTime,
	}
}

func (s *Service) applyDelegate(cfg domain.Config, env *domain.ShellEnvironment) {
	if cfg.Delegate.Script == "" {
		return
	}
	env.DelegateScript = s.expandHome(cfg.Delegate.Script)
}

func (s *Service) expandHome(path string) string {
	if path == "~" {
		return s.home()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(s.home(), path[2:])
	}
	return path
}

func (s *Service) promptCommand() string {
	if s.PromptCommand != "" {
		return s.PromptCommand
	}
	return "shellrig"
}

func (s *Service) home() string {
	if s.Home != "" {
		return s.Home
	}
	return s.getenv("HOME")
}

func (s *Service) getenv(key string) string {
	if s.Getenv != nil {
		return s.Getenv(key)
	}
	return os.Getenv(key)
}

func (s *Service) logger() ports.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{})        {}
func (nopLogger) Info(string, map[string]interface{})         {}
func (nopLogger) Warn(string, map[string]interface{})         {}
func (nopLogger) Error(string, error, map[string]interface{}) {}
