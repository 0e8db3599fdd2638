package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/receitai/receitai/internal/recipe"
)

// recipeFlags are the raw recipe fields shared by add and edit, exactly
// as the user typed them. Parsing and validation happen in parse().
type recipeFlags struct {
	Name             string
	PrepTime         string
	Difficulty       string
	Category         string
	Tags             string
	Instructions     string
	Ingredients      []string // one "<quantity> <unit> de <name>" line per flag
	IngredientsBlock string   // multi-line block, one ingredient line per line
}

// register wires the recipe field flags onto a command.
func (f *recipeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Name, "name", "", "recipe name (required)")
	cmd.Flags().StringVar(&f.PrepTime, "prep-time", "", "preparation time in minutes")
	cmd.Flags().StringVar(&f.Difficulty, "difficulty", "", "difficulty label (e.g. Fácil, Médio, Difícil)")
	cmd.Flags().StringVar(&f.Category, "category", "", "recipe category")
	cmd.Flags().StringVar(&f.Tags, "tags", "", "comma-delimited tags")
	cmd.Flags().StringVar(&f.Instructions, "instructions", "", "preparation instructions (required)")
	cmd.Flags().StringArrayVarP(&f.Ingredients, "ingredient", "i", nil,
		`ingredient line, repeatable: "2 unidades de ovo"`)
	cmd.Flags().StringVar(&f.IngredientsBlock, "ingredients", "",
		"multi-line ingredient block, one line per ingredient")
}

// parse validates the required fields and converts the raw text into a
// write input. Name, instructions and at least one ingredient line are
// mandatory; preparation time must be an integer when present. All
// rejections happen here, before the store is touched.
func (f *recipeFlags) parse() (recipe.NewRecipe, error) {
	if f.Name == "" || f.Instructions == "" ||
		(len(f.Ingredients) == 0 && strings.TrimSpace(f.IngredientsBlock) == "") {
		return recipe.NewRecipe{}, NewExitError(ExitFailure,
			"recipe name, ingredients and instructions are required")
	}

	prepTime, err := recipe.ParsePrepTime(f.PrepTime)
	if err != nil {
		return recipe.NewRecipe{}, WrapExitError(ExitFailure, "invalid preparation time", err)
	}

	var lines []recipe.IngredientLine
	for _, raw := range f.Ingredients {
		if line, ok := recipe.ParseIngredientLine(raw); ok {
			lines = append(lines, line)
		}
	}
	lines = append(lines, recipe.ParseIngredientLines(f.IngredientsBlock)...)
	if len(lines) == 0 {
		return recipe.NewRecipe{}, NewExitError(ExitFailure, "no valid ingredient lines")
	}

	return recipe.NewRecipe{
		Name:         f.Name,
		PrepTime:     prepTime,
		Difficulty:   f.Difficulty,
		Category:     f.Category,
		Instructions: f.Instructions,
		Tags:         f.Tags,
		Ingredients:  lines,
	}, nil
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &recipeFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new recipe",
		Long: `Record a new recipe with its ingredient lines.

Each --ingredient flag takes one free-text line in the form
"<quantity> <unit> de <name>"; a line without " de " is a bare
ingredient name.

Example:
  receitai add --name "Bolo" --prep-time 45 --category Doce \
    -i "2 unidades de ovo" -i "1 colher de açúcar" \
    --instructions "Misture tudo e asse."`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(rootOpts, flags, cmd)
		},
	}

	flags.register(cmd)
	return cmd
}

func runAdd(opts *RootOptions, flags *recipeFlags, cmd *cobra.Command) error {
	newRecipe, err := flags.parse()
	if err != nil {
		return err
	}

	s, err := openStore(opts)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := s.Close(); closeErr != nil {
			opts.Log.Error().Err(closeErr).Msg("error closing notebook")
		}
	}()

	id, err := s.AddRecipe(cmd.Context(), newRecipe)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to record recipe", err)
	}
	opts.Log.Debug().Int64("recipe_id", id).Str("name", newRecipe.Name).Msg("recipe recorded")

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Success(fmt.Sprintf("Recipe recorded with id %d.", id))
}
