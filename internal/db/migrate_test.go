package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesAllTables(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{
		"projects", "categories", "labels", "entries", "entry_labels",
		"activity_segments", "segment_details", "app_mappings",
		"app_mapping_labels", "preferences",
	} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestMigrate_Rerunnable(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	assert.NoError(t, Migrate(database), "migrations must be idempotent")
}

func TestMigrate_RejectsUnknownEntryKind(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO entries (id, user_id, kind, created_at, updated_at)
		VALUES ('e1', 'u1', 'BOGUS', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err, "kind CHECK constraint should reject unknown kinds")
}
