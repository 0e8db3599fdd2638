package store

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/receitai/receitai/internal/recipe"
)

// createTestStore creates a store backed by a fresh temp-dir database.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRecipe builds a write input with the given ingredient lines.
func createTestRecipe(name string, prepTime int64, lines ...recipe.IngredientLine) recipe.NewRecipe {
	return recipe.NewRecipe{
		Name:         name,
		PrepTime:     &prepTime,
		Difficulty:   "Médio",
		Category:     "Doce",
		Instructions: "Misture tudo e asse.",
		Tags:         "teste",
		Ingredients:  lines,
	}
}

// ing is a shorthand for an ingredient line.
func ing(name, quantity, unit string) recipe.IngredientLine {
	return recipe.IngredientLine{Name: name, Quantity: quantity, Unit: unit}
}

// countRows returns the number of rows in a table.
func countRows(t *testing.T, s *Store, table string) int {
	t.Helper()
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return count
}

// ingredientID returns the dictionary id for a normalized name, or -1 if
// the name is not in the dictionary.
func ingredientID(t *testing.T, s *Store, name string) int64 {
	t.Helper()
	var id int64
	err := s.db.QueryRow("SELECT ingredient_id FROM ingredients WHERE name = ?", name).Scan(&id)
	if err != nil {
		return -1
	}
	return id
}

// associationCount returns how many association rows a recipe owns.
func associationCount(t *testing.T, s *Store, recipeID int64) int {
	t.Helper()
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM recipe_ingredients WHERE recipe_id = ?", recipeID,
	).Scan(&count)
	if err != nil {
		t.Fatalf("count associations: %v", err)
	}
	return count
}

// lastLog returns the newest audit entry.
func lastLog(t *testing.T, s *Store) LogEntry {
	t.Helper()
	var e LogEntry
	err := s.db.QueryRow(`
		SELECT timestamp, action_type, description
		FROM user_logs ORDER BY log_id DESC LIMIT 1
	`).Scan(&e.Timestamp, &e.ActionType, &e.Description)
	if err != nil {
		t.Fatalf("read last log: %v", err)
	}
	return e
}
