package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tempo/internal/db"
	"github.com/alexanderramin/tempo/internal/domain"
)

// SQLiteSegmentRepo implements SegmentRepo over SQLite.
type SQLiteSegmentRepo struct {
	db db.DBTX
}

// NewSQLiteSegmentRepo creates a new SQLiteSegmentRepo.
func NewSQLiteSegmentRepo(dbtx db.DBTX) *SQLiteSegmentRepo {
	return &SQLiteSegmentRepo{db: dbtx}
}

func (r *SQLiteSegmentRepo) Upsert(ctx context.Context, s *domain.ActivitySegment) error {
	// Re-imports replace the previous row for the same (app, start) pair;
	// the old row's details cascade away with it.
	query := `INSERT INTO activity_segments (id, app_basename, start_at, end_at, window_title)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (app_basename, start_at) DO UPDATE SET
			end_at = excluded.end_at,
			window_title = excluded.window_title`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.AppBasename,
		s.Start.UTC().Format(time.RFC3339),
		s.End.UTC().Format(time.RFC3339),
		s.WindowTitle,
	)
	if err != nil {
		return fmt.Errorf("upserting activity segment: %w", err)
	}

	var segmentID string
	err = r.db.QueryRowContext(ctx,
		`SELECT id FROM activity_segments WHERE app_basename = ? AND start_at = ?`,
		s.AppBasename, s.Start.UTC().Format(time.RFC3339)).Scan(&segmentID)
	if err != nil {
		return fmt.Errorf("resolving segment id: %w", err)
	}

	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM segment_details WHERE segment_id = ?`, segmentID); err != nil {
		return fmt.Errorf("clearing segment details: %w", err)
	}
	for _, d := range s.Details {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO segment_details (segment_id, start_at, end_at, title) VALUES (?, ?, ?, ?)`,
			segmentID,
			d.Start.UTC().Format(time.RFC3339),
			d.End.UTC().Format(time.RFC3339),
			d.Title,
		); err != nil {
			return fmt.Errorf("inserting segment detail: %w", err)
		}
	}
	return nil
}

func (r *SQLiteSegmentRepo) ListRange(ctx context.Context, from, to time.Time) ([]*domain.ActivitySegment, error) {
	query := `SELECT id, app_basename, start_at, end_at, window_title
		FROM activity_segments
		WHERE start_at < ? AND end_at > ?
		ORDER BY start_at`
	rows, err := r.db.QueryContext(ctx, query,
		to.UTC().Format(time.RFC3339), from.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing activity segments: %w", err)
	}
	defer rows.Close()

	var segments []*domain.ActivitySegment
	for rows.Next() {
		var s domain.ActivitySegment
		var startStr, endStr string
		if err := rows.Scan(&s.ID, &s.AppBasename, &startStr, &endStr, &s.WindowTitle); err != nil {
			return nil, fmt.Errorf("scanning segment row: %w", err)
		}
		if s.Start, err = time.Parse(time.RFC3339, startStr); err != nil {
			return nil, fmt.Errorf("parsing segment start: %w", err)
		}
		if s.End, err = time.Parse(time.RFC3339, endStr); err != nil {
			return nil, fmt.Errorf("parsing segment end: %w", err)
		}
		segments = append(segments, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating segments: %w", err)
	}

	for _, s := range segments {
		if err := r.loadDetails(ctx, s); err != nil {
			return nil, err
		}
	}
	return segments, nil
}

func (r *SQLiteSegmentRepo) loadDetails(ctx context.Context, s *domain.ActivitySegment) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT start_at, end_at, title FROM segment_details WHERE segment_id = ? ORDER BY start_at`, s.ID)
	if err != nil {
		return fmt.Errorf("loading segment details: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var d domain.SegmentDetail
		var startStr, endStr string
		if err := rows.Scan(&startStr, &endStr, &d.Title); err != nil {
			return fmt.Errorf("scanning segment detail: %w", err)
		}
		if d.Start, err = time.Parse(time.RFC3339, startStr); err != nil {
			return fmt.Errorf("parsing detail start: %w", err)
		}
		if d.End, err = time.Parse(time.RFC3339, endStr); err != nil {
			return fmt.Errorf("parsing detail end: %w", err)
		}
		s.Details = append(s.Details, d)
	}
	return rows.Err()
}
