package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tasktrack/internal/app"
	"github.com/thenoetrevino/tasktrack/internal/config"
	"github.com/thenoetrevino/tasktrack/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	// owned instances close the database on Close
	owned bool
}

// NewCLI opens the configured task store and wires the services around it
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	dialect := database.DialectSQLite
	if cfg.Database.Driver == config.DriverPostgres {
		dialect = database.DialectPostgres
	}

	db, err := database.InitDB(ctx, database.Options{
		Dialect: dialect,
		DSN:     cfg.Database.DSN,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repo := database.NewRepository(db, dialect)
	application := app.New(repo,
		app.WithLogger(slog.Default()),
		app.WithCloser(db),
	)

	return &CLI{
		App:    application,
		Config: cfg,
		owned:  true,
	}, nil
}

// DateFormat returns the layout for due dates in human output
func (c *CLI) DateFormat() string {
	if c.Config == nil || c.Config.Display.DateFormat == "" {
		return config.DefaultDateFormat
	}
	return c.Config.Display.DateFormat
}

// Close cleans up CLI resources. Borrowed instances are left open.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
