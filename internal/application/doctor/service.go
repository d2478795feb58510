// Package doctor runs environment diagnostics. Missing tools are warnings
// here and nowhere else: startup never validates tool availability.
package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"shellrig/internal/domain"
	"shellrig/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider  ports.ConfigProvider
	SocketDetector  ports.SocketDetector
	ShellIntegrator ports.ShellIntegrator

	// LookPath and Stat are injectable for tests.
	LookPath func(string) (string, error)
	Stat     func(string) (os.FileInfo, error)
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("format version %s", cfg.ConfigFormatVersion)))

	if s.SocketDetector != nil {
		if uri, found := s.SocketDetector.Detect(cfg.Docker.SocketPath); found {
			checks = append(checks, ok("Docker socket", uri))
		} else {
			checks = append(checks, warn("Docker socket", fmt.Sprintf("%s absent; DOCKER_HOST will not be exported", cfg.Docker.SocketPath)))
		}
	}

	checks = append(checks, s.gitCheck())
	checks = append(checks, s.aliasChecks(cfg)...)
	checks = append(checks, s.delegateCheck(cfg))

	if s.ShellIntegrator != nil {
		status := s.ShellIntegrator.Status("")
		switch {
		case status.ScriptExists && status.LinePresent:
			checks = append(checks, ok("Shell integration", fmt.Sprintf("%s ready", status.Shell)))
		case status.Error != "":
			checks = append(checks, warn("Shell integration", status.Error))
		default:
			checks = append(checks, warn("Shell integration", "not installed; run `shellrig install`"))
		}
	}

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) gitCheck() domain.HealthCheck {
	if _, err := s.lookPath("git"); err != nil {
		return warn("Git", "git not found; prompt branch segment stays empty")
	}
	return ok("Git", "available")
}

// aliasChecks resolves the first token of every default alias target.
func (s *Service) aliasChecks(cfg domain.Config) []domain.HealthCheck {
	aliases := domain.DefaultAliases("shellrig")
	for name, command := range cfg.Aliases {
		aliases.Set(name, command)
	}

	var checks []domain.HealthCheck
	missing := []string{}
	for _, entry := range aliases.Entries() {
		fields := strings.Fields(entry.Command)
		if len(fields) == 0 {
			continue
		}
		if _, err := s.lookPath(fields[0]); err != nil {
			missing = append(missing, fmt.Sprintf("%s (alias %s)", fields[0], entry.Name))
		}
	}
	if len(missing) > 0 {
		checks = append(checks, warn("Aliased tools", "missing: "+strings.Join(missing, ", ")))
	} else {
		checks = append(checks, ok("Aliased tools", fmt.Sprintf("all %d targets resolvable", aliases.Len())))
	}
	return checks
}

func (s *Service) delegateCheck(cfg domain.Config) domain.HealthCheck {
	if cfg.Delegate.Script == "" {
		return ok("Delegate script", "not configured")
	}
	path := cfg.Delegate.Script
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = home + path[1:]
		}
	}
	if _, err := s.stat(path); err != nil {
		return warn("Delegate script", fmt.Sprintf("%s not found; startup line will no-op", path))
	}
	return ok("Delegate script", path)
}

func (s *Service) lookPath(name string) (string, error) {
	if s.LookPath != nil {
		return s.LookPath(name)
	}
	return exec.LookPath(name)
}

func (s *Service) stat(path string) (os.FileInfo, error) {
	if s.Stat != nil {
		return s.Stat(path)
	}
	return os.Stat(path)
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
