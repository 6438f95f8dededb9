package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtnitsch/theme-analyzer/models"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	t.Cleanup(func() { _ = database.Close() })
	return database
}

func sampleMap() *models.KeywordMap {
	km := models.NewKeywordMap()
	km.Set("tech", []string{"CPU", "gpu", "gpu"})
	km.Set("sports", []string{"ball", "goal"})
	km.Set("искусство", []string{"Картина"})
	return km
}

func TestImportAndLoadKeywordMap(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.ImportKeywordMap(sampleMap(), "keywords.txt"))

	km, err := db.LoadKeywordMap()
	require.NoError(t, err)
	assert.Equal(t, []string{"tech", "sports", "искусство"}, km.Themes())
	assert.Equal(t, []string{"CPU", "gpu", "gpu"}, km.Keywords("tech"))
	assert.Equal(t, []string{"Картина"}, km.Keywords("искусство"))
}

func TestImportKeywordMap_ReplacesPreviousSet(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.ImportKeywordMap(sampleMap(), "first.txt"))

	next := models.NewKeywordMap()
	next.Set("food", []string{"bread"})
	require.NoError(t, db.ImportKeywordMap(next, "second.txt"))

	km, err := db.LoadKeywordMap()
	require.NoError(t, err)
	assert.Equal(t, []string{"food"}, km.Themes())

	imp, err := db.LatestImport()
	require.NoError(t, err)
	require.NotNil(t, imp)
	assert.Equal(t, "second.txt", imp.Source)
	assert.Equal(t, 1, imp.ThemeCount)
	assert.Equal(t, 1, imp.KeywordCount)
}

func TestLoadKeywordMap_Empty(t *testing.T) {
	db := setupTestDB(t)

	km, err := db.LoadKeywordMap()
	require.NoError(t, err)
	assert.True(t, km.IsEmpty())

	imp, err := db.LatestImport()
	require.NoError(t, err)
	assert.Nil(t, imp)
}

func TestOpen_CreatesSchemaOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.db")

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.ImportKeywordMap(sampleMap(), "keywords.txt"))
	require.NoError(t, db.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, path, reopened.Path())
	km, err := reopened.LoadKeywordMap()
	require.NoError(t, err)
	assert.Equal(t, 3, km.Len())
}
