package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/recipekeeper/internal/client/client"
	"github.com/dmitrijs2005/recipekeeper/internal/client/models"
)

var errBadCalories = errors.New("calories must be a non-negative integer")

// Add prompts for a recipe name and calorie count and submits it.
func (a *App) Add(ctx context.Context) error {
	if !a.isLoggedIn() {
		return client.ErrNotLoggedIn
	}

	name, err := getSimpleText(a.reader, "Recipe name", a.out)
	if err != nil {
		return err
	}
	if name == "" {
		return errors.New("recipe name must not be empty")
	}

	raw, err := getSimpleText(a.reader, "Calories", a.out)
	if err != nil {
		return err
	}
	calories, err := strconv.Atoi(raw)
	if err != nil || calories < 0 {
		return errBadCalories
	}

	if err := a.client.AddRecipe(ctx, name, calories); err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			a.userName = ""
		}
		return err
	}

	fmt.Fprintln(a.out, "Successfully added!")
	return nil
}

func (a *App) List(ctx context.Context) error {
	items, err := a.client.ListRecipes(ctx)
	if err != nil {
		return err
	}
	a.printRecipes(items)
	return nil
}

// Search lists recipes with at most maxCalories calories.
func (a *App) Search(ctx context.Context, maxCalories string) error {
	k, err := strconv.Atoi(maxCalories)
	if err != nil {
		return fmt.Errorf("invalid calorie limit %q", maxCalories)
	}

	items, err := a.client.SearchRecipes(ctx, k)
	if err != nil {
		return err
	}
	a.printRecipes(items)
	return nil
}

func (a *App) printRecipes(items []models.Recipe) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No recipes found")
		return
	}
	for _, r := range items {
		fmt.Fprintln(a.out, r)
	}
}
