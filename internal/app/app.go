package app

import (
	"io"

	"github.com/thenoetrevino/tasktrack/internal/database"
	taskservice "github.com/thenoetrevino/tasktrack/internal/services/task"
)

// App holds all application services and provides dependency injection.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Released by Close, usually the *sql.DB behind repo
	closer io.Closer

	// Service layer (business logic)
	TaskService taskservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(repo database.DataStore, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var serviceOpts []taskservice.Option
	if cfg.logger != nil {
		serviceOpts = append(serviceOpts, taskservice.WithLogger(cfg.logger))
	}
	if cfg.clock != nil {
		serviceOpts = append(serviceOpts, taskservice.WithClock(cfg.clock))
	}

	return &App{
		repo:        repo,
		closer:      cfg.closer,
		TaskService: taskservice.NewService(repo, serviceOpts...),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close releases the resource registered with WithCloser, if any
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}
