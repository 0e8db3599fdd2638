package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recipe and its ingredient associations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runDelete(opts *RootOptions, rawID string, cmd *cobra.Command) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return WrapExitError(ExitCommandError, "recipe id must be an integer", err)
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

	if err := s.DeleteRecipe(cmd.Context(), id); err != nil {
		return WrapExitError(ExitFailure, "failed to delete recipe", err)
	}
	opts.Log.Debug().Int64("recipe_id", id).Msg("recipe deleted")

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Success(fmt.Sprintf("Recipe %d deleted.", id))
}
