// Package users persists user credentials.
package users

import (
	"context"

	"github.com/dmitrijs2005/recipekeeper/internal/server/models"
)

// Repository is the credential store. Create returns common.ErrorConflict
// when the username is taken; GetUserByLogin returns common.ErrorNotFound for
// unknown usernames.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
}
