// Package repomanager vends driver-specific repositories and runs the schema
// migrations for the selected database driver.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/recipekeeper/internal/dbx"
	"github.com/dmitrijs2005/recipekeeper/internal/server/config"
	"github.com/dmitrijs2005/recipekeeper/internal/server/migrations"
	"github.com/dmitrijs2005/recipekeeper/internal/server/repositories/recipes"
	"github.com/dmitrijs2005/recipekeeper/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Recipes(db dbx.DBTX) recipes.Repository
}

// migrateUp is a seam for testing migrations.Up.
var migrateUp = migrations.Up

func runMigrations(ctx context.Context, db *sql.DB, dialect goose.Dialect) error {
	if _, err := migrateUp(ctx, db, dialect); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}

// New returns the RepositoryManager for driver (config.DriverPostgres or
// config.DriverSQLite).
func New(driver string) (RepositoryManager, error) {
	switch driver {
	case config.DriverPostgres:
		return NewPostgresRepositoryManager(), nil
	case config.DriverSQLite:
		return NewSQLiteRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
