package app

import (
	"context"

	"shellrig/internal/application/bootstrap"
	"shellrig/internal/application/doctor"
	"shellrig/internal/application/prompt"
	syncapp "shellrig/internal/application/sync"
	"shellrig/internal/infrastructure/config"
	"shellrig/internal/infrastructure/delegate"
	"shellrig/internal/infrastructure/docker"
	"shellrig/internal/infrastructure/history"
	"shellrig/internal/infrastructure/linker"
	"shellrig/internal/infrastructure/shell"
	"shellrig/internal/infrastructure/vcs"
	"shellrig/internal/pkg/logger"
	"shellrig/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	BootstrapService *bootstrap.Service
	PromptService    *prompt.Service
	DoctorService    *doctor.Service
	SyncService      *syncapp.Service
	ConfigLoader     *config.FileLoader
	ShellIntegrator  ports.ShellIntegrator
	Logger           ports.Logger

	// NewHistoryStore opens the history database on demand so commands
	// that never touch history do not create it.
	NewHistoryStore func() (ports.HistoryRepository, error)
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)
	detector := docker.NewDetector()
	collector := vcs.NewGitCollector()
	integrator := shell.NewInstaller(log)

	bootstrapService := &bootstrap.Service{
		Config:   cfgLoader,
		Detector: detector,
		Logger:   log,
	}

	promptService := &prompt.Service{
		VCS:      collector,
		Settings: cfg.Prompt,
	}

	doctorService := &doctor.Service{
		ConfigProvider:  cfgLoader,
		SocketDetector:  detector,
		ShellIntegrator: integrator,
	}

	syncService := &syncapp.Service{
		Config: cfgLoader,
		Syncer: linker.New(log),
		Runner: delegate.NewRunner(),
		Logger: log,
	}

	return &Container{
		BootstrapService: bootstrapService,
		PromptService:    promptService,
		DoctorService:    doctorService,
		SyncService:      syncService,
		ConfigLoader:     cfgLoader,
		ShellIntegrator:  integrator,
		Logger:           log,
		NewHistoryStore: func() (ports.HistoryRepository, error) {
			return history.NewSQLiteStore("")
		},
	}, nil
}
