package recipes

import (
	"database/sql"

	"github.com/dmitrijs2005/recipekeeper/internal/server/models"
)

func scanRecipes(rows *sql.Rows) ([]*models.Recipe, error) {
	defer rows.Close()

	result := make([]*models.Recipe, 0)
	for rows.Next() {
		var item models.Recipe
		if err := rows.Scan(&item.ID, &item.Name, &item.Calories, &item.Author); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
