package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/tempo/internal/db"
	"github.com/alexanderramin/tempo/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo over SQLite.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(dbtx db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: dbtx}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (id, name, archived_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		nullableTimeToString(p.ArchivedAt),
		p.CreatedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, archived_at, created_at, updated_at FROM projects WHERE id = ?`, id)

	var p domain.Project
	var archivedAt sql.NullString
	var createdAt, updatedAt string
	if err := row.Scan(&p.ID, &p.Name, &archivedAt, &createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	p.ArchivedAt = parseNullableTime(archivedAt)
	var parseErr error
	if p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt); parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	if p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAt); parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &p, nil
}

func (r *SQLiteProjectRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Project, error) {
	query := `SELECT id, name, archived_at, created_at, updated_at FROM projects`
	if !includeArchived {
		query += ` WHERE archived_at IS NULL`
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		var p domain.Project
		var archivedAt sql.NullString
		var createdAt, updatedAt string
		if err := rows.Scan(&p.ID, &p.Name, &archivedAt, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		p.ArchivedAt = parseNullableTime(archivedAt)
		if p.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}

func (r *SQLiteProjectRepo) Archive(ctx context.Context, id string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET archived_at = ?, updated_at = ? WHERE id = ? AND archived_at IS NULL`,
		now, now, id)
	if err != nil {
		return fmt.Errorf("archiving project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("project %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("project %s: %w", id, ErrNotFound)
	}
	return nil
}

// SQLiteCategoryRepo implements CategoryRepo over SQLite.
type SQLiteCategoryRepo struct {
	db db.DBTX
}

// NewSQLiteCategoryRepo creates a new SQLiteCategoryRepo.
func NewSQLiteCategoryRepo(dbtx db.DBTX) *SQLiteCategoryRepo {
	return &SQLiteCategoryRepo{db: dbtx}
}

func (r *SQLiteCategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		c.ID, c.Name,
		c.CreatedAt.UTC().Format(time.RFC3339),
		c.UpdatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting category: %w", err)
	}
	return nil
}

func (r *SQLiteCategoryRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM categories WHERE id = ?`, id)
	var c domain.Category
	var createdAt, updatedAt string
	if err := row.Scan(&c.ID, &c.Name, &createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("category: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning category: %w", err)
	}
	var parseErr error
	if c.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt); parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	if c.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAt); parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &c, nil
}

func (r *SQLiteCategoryRepo) List(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		var c domain.Category
		var createdAt, updatedAt string
		if err := rows.Scan(&c.ID, &c.Name, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning category row: %w", err)
		}
		if c.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		if c.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

func (r *SQLiteCategoryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("category %s: %w", id, ErrNotFound)
	}
	return nil
}

// SQLiteLabelRepo implements LabelRepo over SQLite.
type SQLiteLabelRepo struct {
	db db.DBTX
}

// NewSQLiteLabelRepo creates a new SQLiteLabelRepo.
func NewSQLiteLabelRepo(dbtx db.DBTX) *SQLiteLabelRepo {
	return &SQLiteLabelRepo{db: dbtx}
}

func (r *SQLiteLabelRepo) Create(ctx context.Context, l *domain.Label) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO labels (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		l.ID, l.Name,
		l.CreatedAt.UTC().Format(time.RFC3339),
		l.UpdatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting label: %w", err)
	}
	return nil
}

func (r *SQLiteLabelRepo) GetByID(ctx context.Context, id string) (*domain.Label, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM labels WHERE id = ?`, id)
	var l domain.Label
	var createdAt, updatedAt string
	if err := row.Scan(&l.ID, &l.Name, &createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("label: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning label: %w", err)
	}
	var parseErr error
	if l.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt); parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	if l.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAt); parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &l, nil
}

func (r *SQLiteLabelRepo) List(ctx context.Context) ([]*domain.Label, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at FROM labels ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing labels: %w", err)
	}
	defer rows.Close()

	var labels []*domain.Label
	for rows.Next() {
		var l domain.Label
		var createdAt, updatedAt string
		if err := rows.Scan(&l.ID, &l.Name, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning label row: %w", err)
		}
		if l.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		if l.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}
		labels = append(labels, &l)
	}
	return labels, rows.Err()
}

func (r *SQLiteLabelRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM labels WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting label: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("label %s: %w", id, ErrNotFound)
	}
	return nil
}
