// Package recipe holds the domain types shared by the store and the CLI,
// plus the pure text functions at the collaborator boundary: ingredient
// name normalization, the "<quantity> <unit> de <name>" line grammar, and
// the display formatting rule for associations.
package recipe

// Recipe is the read view of a stored recipe: the scalar columns plus the
// formatted display strings of its ingredient associations.
type Recipe struct {
	ID           int64    `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	PrepTime     *int64   `json:"prep_time,omitempty" yaml:"prep_time,omitempty"`
	Difficulty   string   `json:"difficulty" yaml:"difficulty"`
	Category     string   `json:"category" yaml:"category"`
	Instructions string   `json:"instructions" yaml:"instructions"`
	Tags         string   `json:"tags" yaml:"tags"`
	Ingredients  []string `json:"ingredients" yaml:"ingredients"`
}

// NewRecipe is the write input for AddRecipe and UpdateRecipe. Ingredients
// carry the structured triples parsed from free-text lines; the store
// normalizes each name into the shared dictionary.
type NewRecipe struct {
	Name         string
	PrepTime     *int64
	Difficulty   string
	Category     string
	Instructions string
	Tags         string
	Ingredients  []IngredientLine
}

// IngredientLine is one structured ingredient triple. Quantity and Unit are
// free text and may be empty; Name is the dictionary key before
// normalization.
type IngredientLine struct {
	Name     string `yaml:"name"`
	Quantity string `yaml:"quantity,omitempty"`
	Unit     string `yaml:"unit,omitempty"`
}

// Filter carries the raw filter inputs exactly as the user typed them.
// MaxPrepTime stays textual: a non-numeric value means "no constraint" on
// the read path (writes parse strictly, see ParsePrepTime).
type Filter struct {
	Ingredients string
	MaxPrepTime string
	Category    string
	Difficulty  string
}
