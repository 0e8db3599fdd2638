package store

import (
	"context"
	"strconv"
	"strings"

	"github.com/receitai/receitai/internal/recipe"
)

// FilterRecipes returns the recipes satisfying every active constraint in
// f, each with its formatted ingredient strings attached.
//
// Constraint semantics:
//   - Category and difficulty are case-insensitive substring matches;
//     empty means no constraint.
//   - MaxPrepTime is lenient: non-numeric text is ignored as "no
//     constraint" rather than rejected. Write paths parse strictly; the
//     read path degrades gracefully.
//   - The ingredient list is a minimum-coverage test: with N requested
//     names, a recipe qualifies when at least N distinct dictionary
//     entries among those names appear in its associations. More
//     ingredients than requested never disqualify a recipe.
//
// All values are parameterized, never interpolated into the SQL text.
func (s *Store) FilterRecipes(ctx context.Context, f recipe.Filter) ([]recipe.Recipe, error) {
	query, params := buildFilterQuery(f)

	rows, err := s.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, newQueryFailed("filter recipes", err)
	}
	defer rows.Close()

	return s.collectRecipes(ctx, rows)
}

// buildFilterQuery composes the filter SQL from the active constraints.
// Each present constraint contributes one predicate; the predicates are
// combined with AND. Returns the SQL text and its parameters.
func buildFilterQuery(f recipe.Filter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT r.recipe_id, r.name, r.prep_time, r.difficulty, r.category, r.instructions, r.tags
		FROM recipes r`)

	// Parameters bind positionally, and the coverage subquery sits in the
	// FROM clause ahead of every WHERE predicate, so its tokens must come
	// first in the final parameter list.
	var conditions []string
	var joinParams, whereParams []any

	if f.Category != "" {
		conditions = append(conditions, "r.category LIKE ?")
		whereParams = append(whereParams, "%"+f.Category+"%")
	}
	if f.Difficulty != "" {
		conditions = append(conditions, "r.difficulty LIKE ?")
		whereParams = append(whereParams, "%"+f.Difficulty+"%")
	}
	if f.MaxPrepTime != "" {
		// Lenient by design: unparseable text contributes no predicate.
		if maxTime, err := strconv.ParseInt(strings.TrimSpace(f.MaxPrepTime), 10, 64); err == nil {
			conditions = append(conditions, "r.prep_time <= ?")
			whereParams = append(whereParams, maxTime)
		}
	}

	if tokens := recipe.ParseIngredientList(f.Ingredients); len(tokens) > 0 {
		// Coverage subquery: count distinct requested ingredients per
		// recipe, keep recipes reaching the full requested count.
		placeholders := strings.Repeat("?,", len(tokens)-1) + "?"
		sb.WriteString(`
		JOIN (
			SELECT ri.recipe_id, COUNT(DISTINCT ri.ingredient_id) AS matched_ingredients
			FROM recipe_ingredients ri
			JOIN ingredients i ON ri.ingredient_id = i.ingredient_id
			WHERE i.name IN (` + placeholders + `)
			GROUP BY ri.recipe_id
		) AS sub ON r.recipe_id = sub.recipe_id`)

		conditions = append(conditions, "sub.matched_ingredients >= ?")
		for _, tok := range tokens {
			joinParams = append(joinParams, tok)
		}
		whereParams = append(whereParams, len(tokens))
	}

	if len(conditions) > 0 {
		sb.WriteString("\n\t\tWHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}

	sb.WriteString("\n\t\tORDER BY r.recipe_id ASC")

	return sb.String(), append(joinParams, whereParams...)
}
