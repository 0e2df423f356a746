package cli

import (
	"context"

	"github.com/thenoetrevino/tasktrack/internal/app"
	"github.com/thenoetrevino/tasktrack/internal/config"
	"github.com/thenoetrevino/tasktrack/internal/testutil"
)

type cliKey struct{}

// WithCLI stores c in ctx for subcommands. The caller keeps ownership.
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliKey{}, c)
}

// GetCLIFromContext returns the CLI for a command.
// Lookup order: an instance stored with WithCLI, a test App injected under
// testutil.TestAppKey, then a fresh instance built from the user's config.
// Always Close the result; only the fresh instance actually closes anything.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if c, ok := ctx.Value(cliKey{}).(*CLI); ok && c != nil {
		return &CLI{App: c.App, Config: c.Config}, nil
	}

	if testApp, ok := ctx.Value(testutil.TestAppKey).(*app.App); ok && testApp != nil {
		return &CLI{App: testApp, Config: config.Default()}, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return NewCLI(ctx, cfg)
}
