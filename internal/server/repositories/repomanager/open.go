package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/recipekeeper/internal/server/config"
)

// Open opens and pings a connection pool for driver. SQLite pools are
// limited to a single connection so in-memory databases stay shared and
// writers are serialized.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	if driver != config.DriverPostgres && driver != config.DriverSQLite {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	if driver == config.DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	return db, nil
}
