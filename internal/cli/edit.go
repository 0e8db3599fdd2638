package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewEditCommand creates the edit command.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &recipeFlags{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace a recipe's fields and ingredient list",
		Long: `Replace all fields of an existing recipe, including its whole
ingredient list: old associations are dropped and the given lines
inserted in their place, atomically.

Example:
  receitai edit 3 --name "Bolo de Leite" --prep-time 60 \
    -i "2 unidades de ovo" -i "300 ml de leite" \
    --instructions "Misture e asse por uma hora."`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(rootOpts, flags, args[0], cmd)
		},
	}

	flags.register(cmd)
	return cmd
}

func runEdit(opts *RootOptions, flags *recipeFlags, rawID string, cmd *cobra.Command) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return WrapExitError(ExitCommandError, "recipe id must be an integer", err)
	}

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

	if err := s.UpdateRecipe(cmd.Context(), id, newRecipe); err != nil {
		return WrapExitError(ExitFailure, "failed to update recipe", err)
	}
	opts.Log.Debug().Int64("recipe_id", id).Str("name", newRecipe.Name).Msg("recipe updated")

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Success(fmt.Sprintf("Recipe %d updated.", id))
}
