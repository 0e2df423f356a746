package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tasktrack/internal/database"
	taskservice "github.com/thenoetrevino/tasktrack/internal/services/task"
	"github.com/thenoetrevino/tasktrack/internal/testutil"
)

type countingCloser struct {
	calls int
	err   error
}

func (c *countingCloser) Close() error {
	c.calls++
	return c.err
}

func TestNew(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db, database.DialectSQLite)

	app := New(repo)

	require.NotNil(t, app)
	assert.NotNil(t, app.TaskService)
	assert.Same(t, repo, app.Repo())
}

func TestNew_WithClock(t *testing.T) {
	db := testutil.SetupTestDB(t)
	app := New(database.NewRepository(db, database.DialectSQLite), WithClock(testutil.FixedClock))

	// Yesterday relative to the injected clock must be rejected
	past := testutil.Day(-1)
	_, err := app.TaskService.CreateTask(context.Background(), taskservice.CreateTaskRequest{
		Title:   "late",
		DueDate: &past,
	})
	assert.ErrorIs(t, err, taskservice.ErrDueDateInPast)
}

func TestClose(t *testing.T) {
	t.Run("without closer", func(t *testing.T) {
		app := New(nil)
		assert.NoError(t, app.Close())
	})

	t.Run("closes once", func(t *testing.T) {
		c := &countingCloser{}
		app := New(nil, WithCloser(c))

		require.NoError(t, app.Close())
		require.NoError(t, app.Close())
		assert.Equal(t, 1, c.calls)
	})

	t.Run("propagates close error", func(t *testing.T) {
		errClose := errors.New("close failed")
		app := New(nil, WithCloser(&countingCloser{err: errClose}))
		assert.ErrorIs(t, app.Close(), errClose)
	})
}
