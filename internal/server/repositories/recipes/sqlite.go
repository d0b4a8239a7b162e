package recipes

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/recipekeeper/internal/dbx"
	"github.com/dmitrijs2005/recipekeeper/internal/server/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	query := `INSERT INTO recipes (id, name, calories, author) VALUES (?, ?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, query, recipe.ID, recipe.Name, recipe.Calories, recipe.Author); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*models.Recipe, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, calories, author FROM recipes ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to select recipes: %w", err)
	}
	return scanRecipes(rows)
}

func (r *SQLiteRepository) SearchByMaxCalories(ctx context.Context, maxCalories int) ([]*models.Recipe, error) {
	query := `SELECT id, name, calories, author FROM recipes WHERE calories <= ? ORDER BY seq`

	rows, err := r.db.QueryContext(ctx, query, maxCalories)
	if err != nil {
		return nil, fmt.Errorf("failed to select recipes: %w", err)
	}
	return scanRecipes(rows)
}
