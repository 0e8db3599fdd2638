package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/receitai/receitai/internal/recipe"
	"github.com/receitai/receitai/internal/store"
)

// SearchOptions holds the raw filter inputs for the search command.
type SearchOptions struct {
	Ingredients string
	MaxPrepTime string
	Category    string
	Difficulty  string
}

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SearchOptions{}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Filter recipes by ingredients, time, category and difficulty",
		Long: `Filter recipes by any combination of constraints. All active
constraints must hold.

The ingredient list is a minimum-coverage match: a recipe qualifies when
it contains at least all the requested ingredients, extra ones included.
A non-numeric --max-time is ignored rather than rejected.

Example:
  receitai search --ingredients "ovo,açúcar" --max-time 60 --category Doce`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Ingredients, "ingredients", "", "comma-separated ingredient names")
	cmd.Flags().StringVar(&opts.MaxPrepTime, "max-time", "", "maximum preparation time in minutes")
	cmd.Flags().StringVar(&opts.Category, "category", "", "category substring")
	cmd.Flags().StringVar(&opts.Difficulty, "difficulty", "", "difficulty substring")

	return cmd
}

func runSearch(opts *RootOptions, search *SearchOptions, cmd *cobra.Command) error {
	s, err := openStore(opts)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := s.Close(); closeErr != nil {
			opts.Log.Error().Err(closeErr).Msg("error closing notebook")
		}
	}()

	filter := recipe.Filter{
		Ingredients: search.Ingredients,
		MaxPrepTime: search.MaxPrepTime,
		Category:    search.Category,
		Difficulty:  search.Difficulty,
	}

	recipes, err := s.FilterRecipes(cmd.Context(), filter)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to filter recipes", err)
	}

	// The search itself is audited, like the search tab of the desktop
	// app. An append failure must not fail the search.
	description := fmt.Sprintf("Ingredients: %s, Max Time: %s, Category: %s, Difficulty: %s",
		search.Ingredients, search.MaxPrepTime, search.Category, search.Difficulty)
	if err := s.LogAction(cmd.Context(), store.ActionRecipeSearch, description); err != nil {
		opts.Log.Error().Err(err).Msg("audit log append failed")
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Recipes(recipes)
}
