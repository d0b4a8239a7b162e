package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/recipekeeper/internal/server/config"
	"github.com/dmitrijs2005/recipekeeper/internal/server/models"
	"github.com/dmitrijs2005/recipekeeper/internal/server/repositories/recipes"
	"github.com/dmitrijs2005/recipekeeper/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	pg, err := New(config.DriverPostgres)
	require.NoError(t, err)
	assert.IsType(t, &PostgresRepositoryManager{}, pg)

	lite, err := New(config.DriverSQLite)
	require.NoError(t, err)
	assert.IsType(t, &SQLiteRepositoryManager{}, lite)

	_, err = New("mysql")
	assert.Error(t, err)
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	pg := NewPostgresRepositoryManager()
	assert.IsType(t, &users.PostgresRepository{}, pg.Users(db))
	assert.IsType(t, &recipes.PostgresRepository{}, pg.Recipes(db))

	lite := NewSQLiteRepositoryManager()
	assert.IsType(t, &users.SQLiteRepository{}, lite.Users(db))
	assert.IsType(t, &recipes.SQLiteRepository{}, lite.Recipes(db))
}

func stubMigrateUp(t *testing.T, fn func(ctx context.Context, db *sql.DB, dialect goose.Dialect) (int, error)) {
	t.Helper()
	orig := migrateUp
	migrateUp = fn
	t.Cleanup(func() { migrateUp = orig })
}

func TestRunMigrations_Dialects(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var got []goose.Dialect
	stubMigrateUp(t, func(_ context.Context, _ *sql.DB, d goose.Dialect) (int, error) {
		got = append(got, d)
		return 0, nil
	})

	require.NoError(t, NewPostgresRepositoryManager().RunMigrations(context.Background(), db))
	require.NoError(t, NewSQLiteRepositoryManager().RunMigrations(context.Background(), db))
	assert.Equal(t, []goose.Dialect{goose.DialectPostgres, goose.DialectSQLite3}, got)
}

func TestRunMigrations_Error(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	stubMigrateUp(t, func(context.Context, *sql.DB, goose.Dialect) (int, error) {
		return 0, errors.New("boom")
	})

	err = NewPostgresRepositoryManager().RunMigrations(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), "mysql", "whatever")
	assert.Error(t, err)
}

func TestOpen_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()

	db, err := Open(ctx, config.DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer db.Close()

	m := NewSQLiteRepositoryManager()
	require.NoError(t, m.RunMigrations(ctx, db))
	// a second run is a no-op
	require.NoError(t, m.RunMigrations(ctx, db))

	_, err = m.Users(db).Create(ctx, &models.User{ID: "u-1", UserName: "alice", PasswordHash: "h"})
	require.NoError(t, err)
	require.NoError(t, m.Recipes(db).Create(ctx, &models.Recipe{ID: "r-1", Name: "Soup", Calories: 120, Author: "alice"}))

	list, err := m.Recipes(db).List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
