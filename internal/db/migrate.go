package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies the schema. Statements are idempotent; ALTER TABLE
// additions that already ran surface as duplicate-column errors and are
// tolerated.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		archived_at TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS categories (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS labels (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS entries (
		id             TEXT PRIMARY KEY,
		user_id        TEXT NOT NULL,
		kind           TEXT NOT NULL CHECK(kind IN ('PLAN','ACTUAL','SHARED')),
		start_date     TEXT,
		start_datetime TEXT,
		end_date       TEXT,
		end_datetime   TEXT,
		summary        TEXT NOT NULL DEFAULT '',
		project_id     TEXT REFERENCES projects(id) ON DELETE SET NULL,
		category_id    TEXT REFERENCES categories(id) ON DELETE SET NULL,
		task_id        TEXT,
		provisional    INTEGER NOT NULL DEFAULT 0,
		deleted_at     TEXT,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_entries_user_kind
		ON entries(user_id, kind)`,

	`CREATE TABLE IF NOT EXISTS entry_labels (
		entry_id TEXT NOT NULL REFERENCES entries(id) ON DELETE CASCADE,
		label_id TEXT NOT NULL REFERENCES labels(id) ON DELETE CASCADE,
		PRIMARY KEY (entry_id, label_id)
	)`,

	`CREATE TABLE IF NOT EXISTS activity_segments (
		id           TEXT PRIMARY KEY,
		app_basename TEXT NOT NULL,
		start_at     TEXT NOT NULL,
		end_at       TEXT NOT NULL,
		window_title TEXT NOT NULL DEFAULT '',
		UNIQUE (app_basename, start_at)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_segments_start
		ON activity_segments(start_at)`,

	`CREATE TABLE IF NOT EXISTS segment_details (
		segment_id TEXT NOT NULL REFERENCES activity_segments(id) ON DELETE CASCADE,
		start_at   TEXT NOT NULL,
		end_at     TEXT NOT NULL,
		title      TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS app_mappings (
		app_basename TEXT PRIMARY KEY,
		project_id   TEXT REFERENCES projects(id) ON DELETE SET NULL,
		category_id  TEXT REFERENCES categories(id) ON DELETE SET NULL,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS app_mapping_labels (
		app_basename TEXT NOT NULL REFERENCES app_mappings(app_basename) ON DELETE CASCADE,
		label_id     TEXT NOT NULL REFERENCES labels(id) ON DELETE CASCADE,
		PRIMARY KEY (app_basename, label_id)
	)`,

	`CREATE TABLE IF NOT EXISTS preferences (
		user_id    TEXT NOT NULL,
		key        TEXT NOT NULL,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (user_id, key)
	)`,
}
