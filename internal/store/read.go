package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/receitai/receitai/internal/recipe"
)

// GetAllRecipes returns every recipe with its formatted ingredient
// strings, ordered by insertion (recipe_id ASC for determinism).
//
// Returns an empty slice (not nil) when the notebook is empty.
func (s *Store) GetAllRecipes(ctx context.Context) ([]recipe.Recipe, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT recipe_id, name, prep_time, difficulty, category, instructions, tags
		FROM recipes
		ORDER BY recipe_id ASC
	`)
	if err != nil {
		return nil, newQueryFailed("query recipes", err)
	}
	defer rows.Close()

	recipes, err := s.collectRecipes(ctx, rows)
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// collectRecipes scans recipe rows and attaches each recipe's formatted
// ingredient list via a second lookup keyed by recipe id.
func (s *Store) collectRecipes(ctx context.Context, rows *sql.Rows) ([]recipe.Recipe, error) {
	var recipes []recipe.Recipe
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, r)
	}

	if err := rows.Err(); err != nil {
		return nil, newQueryFailed("iterate recipes", err)
	}

	// The ingredient lookup reuses the single connection, so it has to
	// wait until the recipe rows are fully drained.
	for i := range recipes {
		ingredients, err := s.ingredientStrings(ctx, recipes[i].ID)
		if err != nil {
			return nil, err
		}
		recipes[i].Ingredients = ingredients
	}

	// Return empty slice instead of nil
	if recipes == nil {
		recipes = []recipe.Recipe{}
	}

	return recipes, nil
}

// ingredientStrings returns the display strings for a recipe's
// associations in association-insertion order.
func (s *Store) ingredientStrings(ctx context.Context, recipeID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT i.name, ri.quantity, ri.unit
		FROM recipe_ingredients ri
		JOIN ingredients i ON ri.ingredient_id = i.ingredient_id
		WHERE ri.recipe_id = ?
		ORDER BY ri.rowid ASC
	`, recipeID)
	if err != nil {
		return nil, newQueryFailed(fmt.Sprintf("query ingredients for recipe %d", recipeID), err)
	}
	defer rows.Close()

	var formatted []string
	for rows.Next() {
		var name string
		var quantity, unit sql.NullString
		if err := rows.Scan(&name, &quantity, &unit); err != nil {
			return nil, newQueryFailed("scan ingredient", err)
		}
		formatted = append(formatted, recipe.FormatIngredient(name, quantity.String, unit.String))
	}

	if err := rows.Err(); err != nil {
		return nil, newQueryFailed("iterate ingredients", err)
	}

	if formatted == nil {
		formatted = []string{}
	}

	return formatted, nil
}

// scanRecipe scans one recipe row into its view struct.
func scanRecipe(rows *sql.Rows) (recipe.Recipe, error) {
	var r recipe.Recipe
	var prepTime sql.NullInt64
	var difficulty, category, instructions, tags sql.NullString

	if err := rows.Scan(
		&r.ID, &r.Name, &prepTime, &difficulty, &category, &instructions, &tags,
	); err != nil {
		return recipe.Recipe{}, newQueryFailed("scan recipe", err)
	}

	if prepTime.Valid {
		t := prepTime.Int64
		r.PrepTime = &t
	}
	r.Difficulty = difficulty.String
	r.Category = category.String
	r.Instructions = instructions.String
	r.Tags = tags.String

	return r, nil
}
