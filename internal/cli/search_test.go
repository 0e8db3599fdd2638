package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSearchNotebook(t *testing.T) string {
	t.Helper()
	db := testDB(t)
	addFixtureRecipe(t, db, "Bolo")

	_, err := executeCommand(t, db,
		"add",
		"--name", "Omelete",
		"--prep-time", "10",
		"--category", "Salgado",
		"--difficulty", "Fácil",
		"--instructions", "Bata e frite.",
		"-i", "3 unidades de ovo",
		"-i", "1 pitada de sal",
	)
	require.NoError(t, err)
	return db
}

func TestSearch_ByIngredientCoverage(t *testing.T) {
	db := seedSearchNotebook(t)

	out, err := executeCommand(t, db, "search", "--ingredients", "ovo,açúcar")

	require.NoError(t, err)
	assert.Contains(t, out, "Bolo")
	assert.NotContains(t, out, "Omelete")
}

func TestSearch_NonNumericMaxTimeIgnored(t *testing.T) {
	db := seedSearchNotebook(t)

	out, err := executeCommand(t, db, "search", "--max-time", "abc")

	require.NoError(t, err)
	assert.Contains(t, out, "Bolo")
	assert.Contains(t, out, "Omelete")
}

func TestSearch_CombinedFilters(t *testing.T) {
	db := seedSearchNotebook(t)

	out, err := executeCommand(t, db,
		"search", "--ingredients", "ovo", "--max-time", "20", "--category", "salg")

	require.NoError(t, err)
	assert.NotContains(t, out, "Bolo")
	assert.Contains(t, out, "Omelete")
}

func TestSearch_WritesAuditEntry(t *testing.T) {
	db := seedSearchNotebook(t)

	_, err := executeCommand(t, db, "search", "--ingredients", "ovo")
	require.NoError(t, err)

	out, err := executeCommand(t, db, "logs")
	require.NoError(t, err)
	assert.Contains(t, out, "Recipe Search")
	assert.Contains(t, out, "Ingredients: ovo")
}

func TestExportImport_RoundTrip(t *testing.T) {
	db := seedSearchNotebook(t)
	bookPath := filepath.Join(t.TempDir(), "book.yaml")

	_, err := executeCommand(t, db, "export", "-o", bookPath)
	require.NoError(t, err)

	data, err := os.ReadFile(bookPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Bolo")
	assert.Contains(t, string(data), "2 unidades de ovo")

	// Import into a fresh notebook and verify the recipes came across
	freshDB := testDB(t)
	out, err := executeCommand(t, freshDB, "import", bookPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 recipes.")

	listed, err := executeCommand(t, freshDB, "list")
	require.NoError(t, err)
	assert.Contains(t, listed, "Bolo")
	assert.Contains(t, listed, "Omelete")
	assert.Contains(t, listed, "1 pitada de sal")
}

func TestImport_MissingFileIsCommandError(t *testing.T) {
	db := testDB(t)

	_, err := executeCommand(t, db, "import", "/nonexistent/book.yaml")

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
