package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/tempo/internal/db"
	"github.com/alexanderramin/tempo/internal/domain"
)

// SQLitePreferenceRepo implements PreferenceRepo over SQLite.
type SQLitePreferenceRepo struct {
	db db.DBTX
}

// NewSQLitePreferenceRepo creates a new SQLitePreferenceRepo.
func NewSQLitePreferenceRepo(dbtx db.DBTX) *SQLitePreferenceRepo {
	return &SQLitePreferenceRepo{db: dbtx}
}

func (r *SQLitePreferenceRepo) Get(ctx context.Context, userID, key string) (string, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE user_id = ? AND key = ?`, userID, key)
	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("preference %s: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("scanning preference: %w", err)
	}
	return value, nil
}

func (r *SQLitePreferenceRepo) Set(ctx context.Context, p *domain.Preference) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO preferences (user_id, key, value, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		p.UserID, p.Key, p.Value, p.UpdatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("setting preference: %w", err)
	}
	return nil
}
