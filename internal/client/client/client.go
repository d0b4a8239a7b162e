package client

import (
	"context"

	"github.com/dmitrijs2005/recipekeeper/internal/client/models"
)

// Client is the API surface the CLI depends on.
type Client interface {
	Register(ctx context.Context, userName string, password []byte) error
	Login(ctx context.Context, userName string, password []byte) error
	Logout()
	IsLoggedIn() bool
	AddRecipe(ctx context.Context, name string, calories int) error
	ListRecipes(ctx context.Context) ([]models.Recipe, error)
	SearchRecipes(ctx context.Context, maxCalories int) ([]models.Recipe, error)
	Ping(ctx context.Context) error
	Close() error
}
