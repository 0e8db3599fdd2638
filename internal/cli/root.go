// Package cli is the presentation layer of the recipe notebook: it
// collects raw field text, parses free-text ingredient lines, validates
// required fields, and renders results. All persistence and filtering
// semantics live in internal/store.
package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/receitai/receitai/internal/config"
	"github.com/receitai/receitai/internal/logger"
	"github.com/receitai/receitai/internal/store"
)

// RootOptions holds global flags and wiring shared by all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	Database string

	// Log is the diagnostic logger, configured in PersistentPreRunE and
	// tagged with a per-invocation session id.
	Log zerolog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the receitai CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "receitai",
		Short: "ReceitAÍ - a recipe notebook",
		Long: `ReceitAÍ records, searches and edits cooking recipes in a local
SQLite notebook, with a shared ingredient dictionary and an audit log
of every action.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if opts.Database == "" {
				opts.Database = cfg.DBPath
			}

			level := cfg.LogLevel
			if opts.Verbose {
				level = "debug"
			}
			opts.Log = logger.New(os.Stderr, level).With().
				Str("session", uuid.NewString()).
				Logger()
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose diagnostics")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to the SQLite notebook (default from RECEITAI_DB_PATH)")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewEditCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewLogsCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// openStore opens the notebook database, mapping open failures to the
// command-error exit code. The caller owns the returned store.
func openStore(opts *RootOptions) (*store.Store, error) {
	s, err := store.Open(opts.Database, opts.Log)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open notebook", err)
	}
	return s, nil
}
