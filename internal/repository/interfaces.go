package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/tempo/internal/domain"
)

// ErrNotFound marks a lookup that matched no row.
var ErrNotFound = errors.New("not found")

type EntryRepo interface {
	Create(ctx context.Context, e *domain.Entry) error
	GetByID(ctx context.Context, id string) (*domain.Entry, error)
	// ListRange returns non-deleted entries whose effective interval
	// overlaps [from, to), ordered by effective start.
	ListRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.Entry, error)
	ListProvisional(ctx context.Context, userID string) ([]*domain.Entry, error)
	Update(ctx context.Context, e *domain.Entry) error
	SoftDelete(ctx context.Context, id string, at time.Time) error
}

type SegmentRepo interface {
	// Upsert inserts the segment or replaces the one sharing its
	// application and start instant, so re-imports are idempotent.
	Upsert(ctx context.Context, s *domain.ActivitySegment) error
	ListRange(ctx context.Context, from, to time.Time) ([]*domain.ActivitySegment, error)
}

type MappingRepo interface {
	Upsert(ctx context.Context, m *domain.AppMapping) error
	GetByName(ctx context.Context, basename string) (*domain.AppMapping, error)
	List(ctx context.Context) ([]*domain.AppMapping, error)
	Delete(ctx context.Context, basename string) error
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type CategoryRepo interface {
	Create(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type LabelRepo interface {
	Create(ctx context.Context, l *domain.Label) error
	GetByID(ctx context.Context, id string) (*domain.Label, error)
	List(ctx context.Context) ([]*domain.Label, error)
	Delete(ctx context.Context, id string) error
}

type PreferenceRepo interface {
	Get(ctx context.Context, userID, key string) (string, error)
	Set(ctx context.Context, p *domain.Preference) error
}
