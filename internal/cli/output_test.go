package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/receitai/receitai/internal/recipe"
	"github.com/receitai/receitai/internal/store"
)

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad flag")))
	assert.Equal(t, ExitFailure, GetExitCode(WrapExitError(ExitFailure, "op failed", errors.New("boom"))))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain error")))
}

func TestExitError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := WrapExitError(ExitFailure, "op failed", inner)

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "op failed")
	assert.Contains(t, err.Error(), "boom")
}

func TestRenderRecipes_Golden(t *testing.T) {
	prep := int64(45)
	recipes := []recipe.Recipe{
		{
			ID:           1,
			Name:         "Bolo",
			PrepTime:     &prep,
			Difficulty:   "Médio",
			Category:     "Doce",
			Tags:         "sobremesa",
			Ingredients:  []string{"2 unidades de ovo", "1 colher de açúcar"},
			Instructions: "Misture tudo.\nAsse por 40 minutos.",
		},
		{
			ID:           2,
			Name:         "Salada",
			Ingredients:  []string{"1 pé de alface"},
			Instructions: "Lave e sirva.",
		},
	}

	var buf bytes.Buffer
	renderRecipes(&buf, recipes)

	g := goldie.New(t)
	g.Assert(t, "render_recipes", buf.Bytes())
}

func TestRenderRecipes_Empty(t *testing.T) {
	var buf bytes.Buffer
	renderRecipes(&buf, nil)

	assert.Equal(t, "No recipes found.\n", buf.String())
}

func TestRenderLogs(t *testing.T) {
	entries := []store.LogEntry{
		{Timestamp: "2026-08-29 10:00:02", ActionType: "Recipe Created", Description: "Name: Bolo"},
		{Timestamp: "2026-08-29 10:00:01", ActionType: "Recipe Search", Description: "Ingredients: ovo"},
	}

	var buf bytes.Buffer
	renderLogs(&buf, entries)

	g := goldie.New(t)
	g.Assert(t, "render_logs", buf.Bytes())
}

func TestFormatter_JSONRecipes(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &buf}

	require.NoError(t, f.Recipes([]recipe.Recipe{{ID: 7, Name: "Bolo", Ingredients: []string{}}}))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.([]any)
	require.True(t, ok)
	require.Len(t, data, 1)
	entry := data[0].(map[string]any)
	assert.Equal(t, float64(7), entry["id"])
	assert.Equal(t, "Bolo", entry["name"])
}
