package recipes

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/recipekeeper/internal/dbx"
	"github.com/dmitrijs2005/recipekeeper/internal/server/models"
)

// PostgresRepository implements recipe storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a recipe. The insertion sequence is assigned by the database.
func (r *PostgresRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	query := `
		INSERT INTO recipes (id, name, calories, author)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, query, recipe.ID, recipe.Name, int64(recipe.Calories), recipe.Author); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// List returns every recipe in insertion order.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Recipe, error) {
	query := `SELECT id, name, calories, author FROM recipes ORDER BY seq`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select recipes: %w", err)
	}
	return scanRecipes(rows)
}

// SearchByMaxCalories returns recipes with calories <= maxCalories in insertion order.
func (r *PostgresRepository) SearchByMaxCalories(ctx context.Context, maxCalories int) ([]*models.Recipe, error) {
	query := `
		SELECT id, name, calories, author FROM recipes
		WHERE calories <= $1
		ORDER BY seq
	`
	rows, err := r.db.QueryContext(ctx, query, int64(maxCalories))
	if err != nil {
		return nil, fmt.Errorf("failed to select recipes: %w", err)
	}
	return scanRecipes(rows)
}
