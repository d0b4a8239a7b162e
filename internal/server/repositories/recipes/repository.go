// Package recipes persists submitted recipes.
package recipes

import (
	"context"

	"github.com/dmitrijs2005/recipekeeper/internal/server/models"
)

// Repository is the record store. List and SearchByMaxCalories return rows in
// insertion order and an empty (non-nil) slice when nothing matches.
type Repository interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	List(ctx context.Context) ([]*models.Recipe, error)
	SearchByMaxCalories(ctx context.Context, maxCalories int) ([]*models.Recipe, error)
}
