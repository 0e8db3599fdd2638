package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/receitai/receitai/internal/recipe"
)

// Audit action types written by the store's own write operations.
// ActionRecipeSearch is appended by the presentation layer on every
// search, mirroring the search tab of the desktop app.
const (
	ActionRecipeCreated = "Recipe Created"
	ActionRecipeUpdated = "Recipe Updated"
	ActionRecipeDeleted = "Recipe Deleted"
	ActionRecipeSearch  = "Recipe Search"
)

// AddRecipe inserts a recipe with its ingredient associations in one
// transaction: either the recipe and every valid association commit, or
// nothing does.
//
// Each ingredient line is normalized before touching the shared
// dictionary; lines whose normalized name is empty are skipped. A name
// already in the dictionary reuses the existing row, so two recipes
// naming " Ovo " and "ovo" share one ingredient identity. Two lines in
// the same submission resolving to the same name violate the association
// key and abort the whole insert as an integrity violation.
//
// On success an audit entry of type "Recipe Created" is appended; an
// audit failure is logged diagnostically and never fails the add.
func (s *Store) AddRecipe(ctx context.Context, r recipe.NewRecipe) (int64, error) {
	if err := validateRecipe(r); err != nil {
		return 0, err
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return 0, newQueryFailed("add recipe: begin tx", err)
	}
	defer tx.Rollback() // No-op if committed

	result, err := tx.ExecContext(ctx, `
		INSERT INTO recipes (name, prep_time, difficulty, category, instructions, tags)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		r.Name,
		nullablePrepTime(r.PrepTime),
		r.Difficulty,
		r.Category,
		r.Instructions,
		r.Tags,
	)
	if err != nil {
		return 0, classifyWriteError("add recipe: insert recipe", err)
	}

	recipeID, err := result.LastInsertId()
	if err != nil {
		return 0, newQueryFailed("add recipe: last insert id", err)
	}

	if err := insertAssociations(ctx, tx, recipeID, r.Ingredients); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, newQueryFailed("add recipe: commit", err)
	}

	s.audit(ctx, ActionRecipeCreated, fmt.Sprintf("Name: %s", r.Name))
	return recipeID, nil
}

// UpdateRecipe overwrites a recipe's scalar fields and replaces its whole
// association set, atomically. Existing association rows are dropped
// before the new list is inserted under the same normalization and
// lookup-or-create rules as AddRecipe.
//
// Updating an id that does not exist fails: the scalar update affects no
// rows, and the re-inserted associations then violate the recipe foreign
// key, rolling the transaction back as an integrity violation. No audit
// entry is written for a failed update.
func (s *Store) UpdateRecipe(ctx context.Context, id int64, r recipe.NewRecipe) error {
	if err := validateRecipe(r); err != nil {
		return err
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return newQueryFailed("update recipe: begin tx", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		UPDATE recipes SET
		name = ?, prep_time = ?, difficulty = ?, category = ?, instructions = ?, tags = ?
		WHERE recipe_id = ?
	`,
		r.Name,
		nullablePrepTime(r.PrepTime),
		r.Difficulty,
		r.Category,
		r.Instructions,
		r.Tags,
		id,
	)
	if err != nil {
		return classifyWriteError("update recipe: update row", err)
	}

	// Replace the association set wholesale: old rows out, new rows in.
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM recipe_ingredients WHERE recipe_id = ?
	`, id); err != nil {
		return newQueryFailed("update recipe: clear associations", err)
	}

	if err := insertAssociations(ctx, tx, id, r.Ingredients); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return newQueryFailed("update recipe: commit", err)
	}

	s.audit(ctx, ActionRecipeUpdated, fmt.Sprintf("ID: %d, Name: %s", id, r.Name))
	return nil
}

// DeleteRecipe removes a recipe; the foreign key cascade removes its
// association rows. Dictionary entries are never deleted.
//
// The recipe name is resolved first for the audit entry, and the entry is
// written before the delete runs - so deleting a nonexistent id still
// leaves an audit record with an empty name. Documented behavior, kept.
func (s *Store) DeleteRecipe(ctx context.Context, id int64) error {
	var name string
	err := s.db.QueryRowContext(ctx, `
		SELECT name FROM recipes WHERE recipe_id = ?
	`, id).Scan(&name)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return newQueryFailed("delete recipe: resolve name", err)
	}

	s.audit(ctx, ActionRecipeDeleted, fmt.Sprintf("ID: %d, Name: %s", id, name))

	if _, err := s.db.ExecContext(ctx, `
		DELETE FROM recipes WHERE recipe_id = ?
	`, id); err != nil {
		return classifyWriteError("delete recipe: delete row", err)
	}

	return nil
}

// validateRecipe rejects bad write input before any row is touched.
func validateRecipe(r recipe.NewRecipe) error {
	if strings.TrimSpace(r.Name) == "" {
		return newInvalidInput("recipe name must not be empty")
	}
	if r.PrepTime != nil && *r.PrepTime < 0 {
		return newInvalidInput(fmt.Sprintf("preparation time must not be negative, got %d", *r.PrepTime))
	}
	return nil
}

// insertAssociations normalizes each ingredient line, resolves or lazily
// creates its dictionary entry, and links it to the recipe. Runs inside
// the caller's transaction.
func insertAssociations(ctx context.Context, tx *sql.Tx, recipeID int64, lines []recipe.IngredientLine) error {
	for _, line := range lines {
		name := recipe.NormalizeName(line.Name)
		if name == "" {
			continue
		}

		ingredientID, err := resolveIngredient(ctx, tx, name)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO recipe_ingredients (recipe_id, ingredient_id, quantity, unit)
			VALUES (?, ?, ?, ?)
		`, recipeID, ingredientID, line.Quantity, line.Unit); err != nil {
			return classifyWriteError(
				fmt.Sprintf("link ingredient %q: insert association", name), err)
		}
	}
	return nil
}

// resolveIngredient returns the dictionary id for a normalized name,
// creating the row on first encounter. Dictionary rows are shared across
// recipes and never removed.
func resolveIngredient(ctx context.Context, tx *sql.Tx, name string) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, `
		SELECT ingredient_id FROM ingredients WHERE name = ?
	`, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, newQueryFailed(fmt.Sprintf("lookup ingredient %q", name), err)
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO ingredients (name) VALUES (?)
	`, name)
	if err != nil {
		return 0, classifyWriteError(fmt.Sprintf("create ingredient %q", name), err)
	}

	id, err = result.LastInsertId()
	if err != nil {
		return 0, newQueryFailed(fmt.Sprintf("create ingredient %q: last insert id", name), err)
	}
	return id, nil
}

// audit appends an action log entry for a completed write. Append
// failures must not fail the primary operation; they are reported on the
// diagnostic logger only.
func (s *Store) audit(ctx context.Context, actionType, description string) {
	if err := s.LogAction(ctx, actionType, description); err != nil {
		s.log.Error().Err(err).
			Str("action_type", actionType).
			Msg("audit log append failed")
	}
}

// nullablePrepTime maps an absent preparation time to SQL NULL.
func nullablePrepTime(t *int64) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *t, Valid: true}
}
