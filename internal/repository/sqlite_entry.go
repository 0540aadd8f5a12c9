package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/tempo/internal/db"
	"github.com/alexanderramin/tempo/internal/domain"
)

const entryColumns = `id, user_id, kind, start_date, start_datetime, end_date, end_datetime,
	summary, project_id, category_id, task_id, provisional, deleted_at, created_at, updated_at`

// SQLiteEntryRepo implements EntryRepo over SQLite.
type SQLiteEntryRepo struct {
	db db.DBTX
}

// NewSQLiteEntryRepo creates a new SQLiteEntryRepo.
func NewSQLiteEntryRepo(dbtx db.DBTX) *SQLiteEntryRepo {
	return &SQLiteEntryRepo{db: dbtx}
}

func (r *SQLiteEntryRepo) Create(ctx context.Context, e *domain.Entry) error {
	startDate, startDT := entryTimeColumns(e.Start)
	endDate, endDT := entryTimeColumns(e.End)

	query := `INSERT INTO entries (` + entryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.UserID,
		string(e.Kind),
		startDate, startDT,
		endDate, endDT,
		e.Summary,
		nullableString(e.ProjectID),
		nullableString(e.CategoryID),
		nullableString(e.TaskID),
		boolToInt(e.Provisional),
		nullableTimeToString(e.DeletedAt),
		e.CreatedAt.UTC().Format(time.RFC3339),
		e.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting entry: %w", err)
	}
	return r.saveLabels(ctx, e.ID, e.LabelIDs)
}

func (r *SQLiteEntryRepo) GetByID(ctx context.Context, id string) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE id = ?`
	e, err := r.scanEntry(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if err := r.loadLabels(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *SQLiteEntryRepo) ListRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.Entry, error) {
	// Effective bounds prefer the concrete datetime; all-day rows fall
	// back to their date string. RFC3339 text ordering is chronological,
	// but a bare date sorts before any instant on that date, so the end
	// bound pads all-day rows to the end of their day to keep them
	// visible in their own day's window.
	query := `SELECT ` + entryColumns + ` FROM entries
		WHERE user_id = ?
		  AND deleted_at IS NULL
		  AND COALESCE(start_datetime, start_date) < ?
		  AND COALESCE(end_datetime, end_date || 'T23:59:59Z') > ?
		ORDER BY COALESCE(start_datetime, start_date)`
	rows, err := r.db.QueryContext(ctx, query, userID,
		to.UTC().Format(time.RFC3339), from.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(ctx, rows)
}

func (r *SQLiteEntryRepo) ListProvisional(ctx context.Context, userID string) ([]*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries
		WHERE user_id = ? AND provisional = 1 AND deleted_at IS NULL
		ORDER BY COALESCE(start_datetime, start_date)`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing provisional entries: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(ctx, rows)
}

func (r *SQLiteEntryRepo) Update(ctx context.Context, e *domain.Entry) error {
	startDate, startDT := entryTimeColumns(e.Start)
	endDate, endDT := entryTimeColumns(e.End)

	query := `UPDATE entries SET
		kind = ?, start_date = ?, start_datetime = ?, end_date = ?, end_datetime = ?,
		summary = ?, project_id = ?, category_id = ?, task_id = ?, provisional = ?,
		deleted_at = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(e.Kind),
		startDate, startDT,
		endDate, endDT,
		e.Summary,
		nullableString(e.ProjectID),
		nullableString(e.CategoryID),
		nullableString(e.TaskID),
		boolToInt(e.Provisional),
		nullableTimeToString(e.DeletedAt),
		e.UpdatedAt.UTC().Format(time.RFC3339),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating entry: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("entry %s: %w", e.ID, ErrNotFound)
	}
	return r.saveLabels(ctx, e.ID, e.LabelIDs)
}

func (r *SQLiteEntryRepo) SoftDelete(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE entries SET deleted_at = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL`
	res, err := r.db.ExecContext(ctx, query,
		at.UTC().Format(time.RFC3339), at.UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("entry %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteEntryRepo) saveLabels(ctx context.Context, entryID string, labelIDs []string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM entry_labels WHERE entry_id = ?`, entryID); err != nil {
		return fmt.Errorf("clearing entry labels: %w", err)
	}
	for _, labelID := range labelIDs {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO entry_labels (entry_id, label_id) VALUES (?, ?)`, entryID, labelID); err != nil {
			return fmt.Errorf("inserting entry label: %w", err)
		}
	}
	return nil
}

func (r *SQLiteEntryRepo) loadLabels(ctx context.Context, e *domain.Entry) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT label_id FROM entry_labels WHERE entry_id = ? ORDER BY label_id`, e.ID)
	if err != nil {
		return fmt.Errorf("loading entry labels: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var labelID string
		if err := rows.Scan(&labelID); err != nil {
			return fmt.Errorf("scanning entry label: %w", err)
		}
		e.LabelIDs = append(e.LabelIDs, labelID)
	}
	return rows.Err()
}

func (r *SQLiteEntryRepo) scanEntry(row *sql.Row) (*domain.Entry, error) {
	var e domain.Entry
	var kind string
	var startDate, startDT, endDate, endDT sql.NullString
	var projectID, categoryID, taskID, deletedAt sql.NullString
	var provisional int
	var createdAt, updatedAt string

	err := row.Scan(
		&e.ID, &e.UserID, &kind,
		&startDate, &startDT, &endDate, &endDT,
		&e.Summary, &projectID, &categoryID, &taskID,
		&provisional, &deletedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("entry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning entry: %w", err)
	}
	return r.populateEntry(&e, kind, startDate, startDT, endDate, endDT,
		projectID, categoryID, taskID, provisional, deletedAt, createdAt, updatedAt)
}

func (r *SQLiteEntryRepo) scanEntries(ctx context.Context, rows *sql.Rows) ([]*domain.Entry, error) {
	var entries []*domain.Entry
	for rows.Next() {
		var e domain.Entry
		var kind string
		var startDate, startDT, endDate, endDT sql.NullString
		var projectID, categoryID, taskID, deletedAt sql.NullString
		var provisional int
		var createdAt, updatedAt string

		err := rows.Scan(
			&e.ID, &e.UserID, &kind,
			&startDate, &startDT, &endDate, &endDT,
			&e.Summary, &projectID, &categoryID, &taskID,
			&provisional, &deletedAt, &createdAt, &updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning entry row: %w", err)
		}
		entry, err := r.populateEntry(&e, kind, startDate, startDT, endDate, endDT,
			projectID, categoryID, taskID, provisional, deletedAt, createdAt, updatedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}
	for _, e := range entries {
		if err := r.loadLabels(ctx, e); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

func (r *SQLiteEntryRepo) populateEntry(e *domain.Entry, kind string,
	startDate, startDT, endDate, endDT,
	projectID, categoryID, taskID sql.NullString,
	provisional int, deletedAt sql.NullString, createdAt, updatedAt string) (*domain.Entry, error) {

	e.Kind = domain.EntryKind(kind)
	e.Start = scanEntryTime(startDate, startDT)
	e.End = scanEntryTime(endDate, endDT)
	e.ProjectID = projectID.String
	e.CategoryID = categoryID.String
	e.TaskID = taskID.String
	e.Provisional = provisional != 0
	e.DeletedAt = parseNullableTime(deletedAt)

	var parseErr error
	e.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	e.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAt)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return e, nil
}
