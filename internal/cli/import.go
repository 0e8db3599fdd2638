package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/receitai/receitai/internal/recipe"
)

// importedRecipe mirrors one recipe entry of a YAML book on the way in.
// Ids are ignored: the store assigns fresh ones.
type importedRecipe struct {
	Name         string   `yaml:"name"`
	PrepTime     *int64   `yaml:"prep_time"`
	Difficulty   string   `yaml:"difficulty"`
	Category     string   `yaml:"category"`
	Instructions string   `yaml:"instructions"`
	Tags         string   `yaml:"tags"`
	Ingredients  []string `yaml:"ingredients"`
}

type importedBook struct {
	Recipes []importedRecipe `yaml:"recipes"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Add every recipe from a YAML book",
		Long: `Read a YAML book (the format written by "receitai export") and
record each recipe. Every recipe is added under the normal rules: one
atomic insert per recipe, shared ingredient dictionary, one audit entry.

A recipe that fails (for instance a duplicated ingredient) stops the
import; recipes recorded before it remain.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runImport(opts *RootOptions, path string, cmd *cobra.Command) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read recipe book", err)
	}

	var book importedBook
	if err := yaml.Unmarshal(data, &book); err != nil {
		return WrapExitError(ExitCommandError, "failed to decode recipe book", err)
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

	imported := 0
	for _, entry := range book.Recipes {
		var lines []recipe.IngredientLine
		for _, raw := range entry.Ingredients {
			if line, ok := recipe.ParseIngredientLine(raw); ok {
				lines = append(lines, line)
			}
		}

		newRecipe := recipe.NewRecipe{
			Name:         entry.Name,
			PrepTime:     entry.PrepTime,
			Difficulty:   entry.Difficulty,
			Category:     entry.Category,
			Instructions: entry.Instructions,
			Tags:         entry.Tags,
			Ingredients:  lines,
		}

		id, err := s.AddRecipe(cmd.Context(), newRecipe)
		if err != nil {
			return WrapExitError(ExitFailure,
				fmt.Sprintf("failed to import recipe %q (%d imported before it)", entry.Name, imported), err)
		}
		opts.Log.Debug().Int64("recipe_id", id).Str("name", entry.Name).Msg("recipe imported")
		imported++
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Success(fmt.Sprintf("Imported %d recipes.", imported))
}
