package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/receitai/receitai/internal/recipe"
	"github.com/receitai/receitai/internal/store"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Operation failure (rejected input, integrity violation)
	ExitCommandError = 2 // Command error (invalid flags, database not found, etc.)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`         // "ok" or "error"
	Data   interface{} `json:"data,omitempty"` // success payload
}

// Success outputs a successful result in the configured format.
// In text mode the payload is printed with Fprintln unless it renders
// itself (see renderRecipes/renderLogs for the structured views).
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	fmt.Fprintln(f.Writer, data)
	return nil
}

// Recipes outputs a recipe list in the configured format.
func (f *OutputFormatter) Recipes(recipes []recipe.Recipe) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   recipes,
		})
	}
	renderRecipes(f.Writer, recipes)
	return nil
}

// Logs outputs audit log entries in the configured format.
func (f *OutputFormatter) Logs(entries []store.LogEntry) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   entries,
		})
	}
	renderLogs(f.Writer, entries)
	return nil
}

// renderRecipes writes the human-readable recipe listing.
func renderRecipes(w io.Writer, recipes []recipe.Recipe) {
	if len(recipes) == 0 {
		fmt.Fprintln(w, "No recipes found.")
		return
	}

	for i, r := range recipes {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "[%d] %s\n", r.ID, r.Name)
		if r.PrepTime != nil {
			fmt.Fprintf(w, "    Time:       %d min\n", *r.PrepTime)
		}
		if r.Difficulty != "" {
			fmt.Fprintf(w, "    Difficulty: %s\n", r.Difficulty)
		}
		if r.Category != "" {
			fmt.Fprintf(w, "    Category:   %s\n", r.Category)
		}
		if r.Tags != "" {
			fmt.Fprintf(w, "    Tags:       %s\n", r.Tags)
		}
		if len(r.Ingredients) > 0 {
			fmt.Fprintf(w, "    Ingredients:\n")
			for _, line := range r.Ingredients {
				fmt.Fprintf(w, "      - %s\n", line)
			}
		}
		if r.Instructions != "" {
			fmt.Fprintf(w, "    Instructions:\n")
			for _, line := range strings.Split(r.Instructions, "\n") {
				fmt.Fprintf(w, "      %s\n", line)
			}
		}
	}
}

// renderLogs writes the human-readable audit listing, newest first.
func renderLogs(w io.Writer, entries []store.LogEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No log entries.")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s  %-16s %s\n", e.Timestamp, e.ActionType, e.Description)
	}
}
