package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/tempo/internal/db"
	"github.com/alexanderramin/tempo/internal/domain"
)

// SQLiteMappingRepo implements MappingRepo over SQLite.
type SQLiteMappingRepo struct {
	db db.DBTX
}

// NewSQLiteMappingRepo creates a new SQLiteMappingRepo.
func NewSQLiteMappingRepo(dbtx db.DBTX) *SQLiteMappingRepo {
	return &SQLiteMappingRepo{db: dbtx}
}

func (r *SQLiteMappingRepo) Upsert(ctx context.Context, m *domain.AppMapping) error {
	query := `INSERT INTO app_mappings (app_basename, project_id, category_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (app_basename) DO UPDATE SET
			project_id = excluded.project_id,
			category_id = excluded.category_id,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		m.AppBasename,
		nullableString(m.ProjectID),
		nullableString(m.CategoryID),
		m.CreatedAt.UTC().Format(time.RFC3339),
		m.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting app mapping: %w", err)
	}

	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM app_mapping_labels WHERE app_basename = ?`, m.AppBasename); err != nil {
		return fmt.Errorf("clearing mapping labels: %w", err)
	}
	for _, labelID := range m.LabelIDs {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO app_mapping_labels (app_basename, label_id) VALUES (?, ?)`,
			m.AppBasename, labelID); err != nil {
			return fmt.Errorf("inserting mapping label: %w", err)
		}
	}
	return nil
}

func (r *SQLiteMappingRepo) GetByName(ctx context.Context, basename string) (*domain.AppMapping, error) {
	query := `SELECT app_basename, project_id, category_id, created_at, updated_at
		FROM app_mappings WHERE app_basename = ?`
	m, err := r.scanMapping(r.db.QueryRowContext(ctx, query, basename))
	if err != nil {
		return nil, err
	}
	if err := r.loadLabels(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *SQLiteMappingRepo) List(ctx context.Context) ([]*domain.AppMapping, error) {
	query := `SELECT app_basename, project_id, category_id, created_at, updated_at
		FROM app_mappings ORDER BY app_basename`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing app mappings: %w", err)
	}
	defer rows.Close()

	var mappings []*domain.AppMapping
	for rows.Next() {
		var m domain.AppMapping
		var projectID, categoryID sql.NullString
		var createdAt, updatedAt string
		if err := rows.Scan(&m.AppBasename, &projectID, &categoryID, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning mapping row: %w", err)
		}
		if err := r.populateMapping(&m, projectID, categoryID, createdAt, updatedAt); err != nil {
			return nil, err
		}
		mappings = append(mappings, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mappings: %w", err)
	}

	for _, m := range mappings {
		if err := r.loadLabels(ctx, m); err != nil {
			return nil, err
		}
	}
	return mappings, nil
}

func (r *SQLiteMappingRepo) Delete(ctx context.Context, basename string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM app_mappings WHERE app_basename = ?`, basename)
	if err != nil {
		return fmt.Errorf("deleting app mapping: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("app mapping %s: %w", basename, ErrNotFound)
	}
	return nil
}

func (r *SQLiteMappingRepo) scanMapping(row *sql.Row) (*domain.AppMapping, error) {
	var m domain.AppMapping
	var projectID, categoryID sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(&m.AppBasename, &projectID, &categoryID, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("app mapping: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning app mapping: %w", err)
	}
	if err := r.populateMapping(&m, projectID, categoryID, createdAt, updatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *SQLiteMappingRepo) populateMapping(m *domain.AppMapping,
	projectID, categoryID sql.NullString, createdAt, updatedAt string) error {
	m.ProjectID = projectID.String
	m.CategoryID = categoryID.String

	var parseErr error
	m.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt)
	if parseErr != nil {
		return fmt.Errorf("parsing created_at: %w", parseErr)
	}
	m.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAt)
	if parseErr != nil {
		return fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return nil
}

func (r *SQLiteMappingRepo) loadLabels(ctx context.Context, m *domain.AppMapping) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT label_id FROM app_mapping_labels WHERE app_basename = ? ORDER BY label_id`, m.AppBasename)
	if err != nil {
		return fmt.Errorf("loading mapping labels: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var labelID string
		if err := rows.Scan(&labelID); err != nil {
			return fmt.Errorf("scanning mapping label: %w", err)
		}
		m.LabelIDs = append(m.LabelIDs, labelID)
	}
	return rows.Err()
}
