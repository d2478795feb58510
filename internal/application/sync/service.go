// Package sync applies the declared filesystem state: paths created,
// symlinks maintained, follow-up scripts run. One failing item never
// aborts the rest.
package sync

import (
	"context"
	"sort"

	"shellrig/internal/domain"
	"shellrig/internal/ports"
)

// Service orchestrates the configured sync actions.
type Service struct {
	Config ports.ConfigProvider
	Syncer ports.FilesystemSyncer
	Runner ports.ScriptRunner
	Logger ports.Logger
}

// Run loads the configuration and applies creates, links, and run scripts
// in that order. Script failures are recorded in the results, not returned.
func (s *Service) Run(ctx context.Context) ([]domain.SyncResult, error) {
	cfg, err := s.Config.Load(ctx)
	if err != nil {
		return nil, err
	}

	var results []domain.SyncResult
	for _, path := range cfg.Sync.Create {
		results = append(results, s.Syncer.EnsurePath(path))
	}

	links := make([]string, 0, len(cfg.Sync.Links))
	for target := range cfg.Sync.Links {
		links = append(links, target)
	}
	sort.Strings(links)
	for _, target := range links {
		results = append(results, s.Syncer.EnsureLink(target, cfg.Sync.Links[target]))
	}

	for _, script := range cfg.Sync.Run {
		if err := s.Runner.Run(ctx, script); err != nil {
			s.Logger.Warn("sync script failed", map[string]interface{}{"script": script, "err": err.Error()})
			results = append(results, domain.SyncResult{Kind: "run", Path: script, Action: domain.SyncFailed, Details: err.Error()})
			continue
		}
		results = append(results, domain.SyncResult{Kind: "run", Path: script, Action: domain.SyncRan})
	}

	return results, nil
}
