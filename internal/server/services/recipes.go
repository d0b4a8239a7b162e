package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/recipekeeper/internal/common"
	"github.com/dmitrijs2005/recipekeeper/internal/logging"
	"github.com/dmitrijs2005/recipekeeper/internal/server/models"
	"github.com/dmitrijs2005/recipekeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

type RecipeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewRecipeService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *RecipeService {
	return &RecipeService{db: db, repomanager: m, logger: logger.With("module", "recipes")}
}

// Add stores a recipe submitted by author.
func (s *RecipeService) Add(ctx context.Context, author, name string, calories int) (*models.Recipe, error) {
	if author == "" {
		return nil, common.ErrorUnauthorized
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	if calories < 0 {
		return nil, fmt.Errorf("%w: calories must not be negative", common.ErrorValidation)
	}

	recipe := &models.Recipe{
		ID:       uuid.NewString(),
		Name:     name,
		Calories: calories,
		Author:   author,
	}

	if err := s.repomanager.Recipes(s.db).Create(ctx, recipe); err != nil {
		s.logger.Error(ctx, "recipe insert failed", "error", err)
		return nil, common.ErrorInternal
	}

	s.logger.Debug(ctx, "recipe added", "recipe_id", recipe.ID, "author", author)
	return recipe, nil
}

// List returns every recipe in storage order.
func (s *RecipeService) List(ctx context.Context) ([]*models.Recipe, error) {
	items, err := s.repomanager.Recipes(s.db).List(ctx)
	if err != nil {
		s.logger.Error(ctx, "recipe list failed", "error", err)
		return nil, common.ErrorInternal
	}
	return items, nil
}

// Search returns recipes with at most maxCalories, in storage order.
func (s *RecipeService) Search(ctx context.Context, maxCalories int) ([]*models.Recipe, error) {
	items, err := s.repomanager.Recipes(s.db).SearchByMaxCalories(ctx, maxCalories)
	if err != nil {
		s.logger.Error(ctx, "recipe search failed", "error", err, "max_calories", maxCalories)
		return nil, common.ErrorInternal
	}
	return items, nil
}
