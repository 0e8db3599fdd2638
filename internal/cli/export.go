package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/receitai/receitai/internal/recipe"
)

// recipeBook is the YAML document exchanged by export and import. The
// ingredient entries are the same "<quantity> <unit> de <name>" lines
// the rest of the application uses, so an exported book imports cleanly.
type recipeBook struct {
	Recipes []recipe.Recipe `yaml:"recipes"`
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the whole notebook as YAML",
		Long: `Write every recipe to a YAML book, suitable for backup or for
importing into another notebook with "receitai import".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(rootOpts, output, cmd)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "destination file (default stdout)")
	return cmd
}

func runExport(opts *RootOptions, output string, cmd *cobra.Command) error {
	s, err := openStore(opts)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := s.Close(); closeErr != nil {
			opts.Log.Error().Err(closeErr).Msg("error closing notebook")
		}
	}()

	recipes, err := s.GetAllRecipes(cmd.Context())
	if err != nil {
		return WrapExitError(ExitFailure, "failed to read recipes", err)
	}

	data, err := yaml.Marshal(recipeBook{Recipes: recipes})
	if err != nil {
		return WrapExitError(ExitFailure, "failed to encode recipe book", err)
	}

	if output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return WrapExitError(ExitCommandError, "failed to write recipe book", err)
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Success(fmt.Sprintf("Exported %d recipes to %s.", len(recipes), output))
}
