package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tasktrack/internal/app"
	"github.com/thenoetrevino/tasktrack/internal/config"
	"github.com/thenoetrevino/tasktrack/internal/database"
	"github.com/thenoetrevino/tasktrack/internal/testutil"
)

func TestGetCLIFromContext_TestApp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testApp := app.New(database.NewRepository(db, database.DialectSQLite))
	ctx := context.WithValue(context.Background(), testutil.TestAppKey, testApp)

	c, err := GetCLIFromContext(ctx)
	require.NoError(t, err)
	assert.Same(t, testApp, c.App)
	assert.Equal(t, config.DefaultDateFormat, c.DateFormat())

	// Borrowed instances leave the database open
	require.NoError(t, c.Close())
	assert.NoError(t, db.Ping())
}

func TestGetCLIFromContext_StoredCLI(t *testing.T) {
	cfg := config.Default()
	cfg.Database.DSN = t.TempDir() + "/tasks.db"
	cfg.Display.DateFormat = "2006/01/02"

	owner, err := NewCLI(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = owner.Close() })

	ctx := WithCLI(context.Background(), owner)
	borrowed, err := GetCLIFromContext(ctx)
	require.NoError(t, err)

	assert.Same(t, owner.App, borrowed.App)
	assert.Equal(t, "2006/01/02", borrowed.DateFormat())
	require.NoError(t, borrowed.Close())

	count, err := owner.App.TaskService.CountTasks(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count, "owner must still be usable after the borrower closes")
}

func TestGetCLIFromContext_FromConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("TASKTRACK_CONFIG", "")
	t.Setenv("TASKTRACK_DB_DRIVER", "")
	t.Setenv("TASKTRACK_DB_DSN", dir+"/fresh.db")
	t.Setenv("TASKTRACK_LOG_LEVEL", "")

	c, err := GetCLIFromContext(context.Background())
	require.NoError(t, err)
	assert.FileExists(t, dir+"/fresh.db")
	assert.NoError(t, c.Close())
}
