package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/recipekeeper/internal/common"
	"github.com/dmitrijs2005/recipekeeper/internal/dbx"
	"github.com/dmitrijs2005/recipekeeper/internal/server/models"
	"github.com/dmitrijs2005/recipekeeper/internal/server/repositories/recipes"
	"github.com/dmitrijs2005/recipekeeper/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeUsersRepo struct {
	byName    map[string]*models.User
	getErr    error
	createErr error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byName: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byName[u.UserName]; ok {
		return nil, common.ErrorConflict
	}
	f.byName[u.UserName] = u
	return u, nil
}

func (f *fakeUsersRepo) GetUserByLogin(_ context.Context, userName string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byName[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

type fakeRecipesRepo struct {
	items     []*models.Recipe
	createErr error
	queryErr  error
}

func (f *fakeRecipesRepo) Create(_ context.Context, r *models.Recipe) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.items = append(f.items, r)
	return nil
}

func (f *fakeRecipesRepo) List(context.Context) ([]*models.Recipe, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return append([]*models.Recipe{}, f.items...), nil
}

func (f *fakeRecipesRepo) SearchByMaxCalories(_ context.Context, maxCalories int) ([]*models.Recipe, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	out := []*models.Recipe{}
	for _, r := range f.items {
		if r.Calories <= maxCalories {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRecipesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository             { return m.u }
func (m *fakeRepoManager) Recipes(dbx.DBTX) recipes.Repository         { return m.r }
