// Package services holds the application logic behind the HTTP handlers:
// registration, login and recipe submission and lookup.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/recipekeeper/internal/common"
	"github.com/dmitrijs2005/recipekeeper/internal/dbx"
	"github.com/dmitrijs2005/recipekeeper/internal/logging"
	"github.com/dmitrijs2005/recipekeeper/internal/server/auth"
	"github.com/dmitrijs2005/recipekeeper/internal/server/models"
	"github.com/dmitrijs2005/recipekeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      *auth.TokenManager
	hasher      *auth.PasswordHasher
	logger      logging.Logger
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, tokens *auth.TokenManager,
	hasher *auth.PasswordHasher, logger logging.Logger) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		tokens:      tokens,
		hasher:      hasher,
		logger:      logger.With("module", "users"),
	}
}

// Register creates an account. The username is trimmed; the password is
// hashed verbatim. A taken username yields common.ErrorConflict, bad input
// common.ErrorValidation.
func (s *UserService) Register(ctx context.Context, userName, password string) (*models.User, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", common.ErrorValidation)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			return nil, err
		}
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return nil, common.ErrorInternal
	}

	user := &models.User{ID: uuid.NewString(), UserName: userName, PasswordHash: hash}

	// the UNIQUE constraint still rejects a concurrent duplicate that passes the check
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		_, err := repo.GetUserByLogin(ctx, userName)
		if err == nil {
			return common.ErrorConflict
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		_, err = repo.Create(ctx, user)
		return err
	})

	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			s.logger.Info(ctx, "registration rejected", "reason", "username taken")
			return nil, common.ErrorConflict
		}
		s.logger.Error(ctx, "registration failed", "error", err)
		return nil, common.ErrorInternal
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

// Login checks credentials and returns a signed access token. Unknown users
// and wrong passwords both yield common.ErrorUnauthorized after a bcrypt
// comparison of the same cost.
func (s *UserService) Login(ctx context.Context, userName, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetUserByLogin(ctx, strings.TrimSpace(userName))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.hasher.VerifyDummy(password)
			return "", common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "user lookup failed", "error", err)
		return "", common.ErrorInternal
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		return "", common.ErrorUnauthorized
	}

	token, err := s.tokens.GenerateToken(user.UserName)
	if err != nil {
		s.logger.Error(ctx, "token signing failed", "error", err)
		return "", common.ErrorInternal
	}

	return token, nil
}
