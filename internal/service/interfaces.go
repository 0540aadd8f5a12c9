package service

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/timegrid"
)

type EntryService interface {
	Create(ctx context.Context, e *domain.Entry) error
	GetByID(ctx context.Context, id string) (*domain.Entry, error)
	ListRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.Entry, error)
	ListProvisional(ctx context.Context, userID string) ([]*domain.Entry, error)
	Update(ctx context.Context, e *domain.Entry) error
	Delete(ctx context.Context, id string) error
	// Confirm promotes a provisional actual into a confirmed one.
	Confirm(ctx context.Context, id string) error
}

// DayView is one rendered day: both lanes laid out side by side, plus the
// window the entries were fetched for.
type DayView struct {
	Date    time.Time
	From    time.Time
	To      time.Time
	Plans   []*timegrid.TimeCell[*domain.Entry]
	Actuals []*timegrid.TimeCell[*domain.Entry]
}

type DayViewService interface {
	// View lays out all of one user's entries for the calendar day
	// containing date.
	View(ctx context.Context, userID string, date time.Time) (*DayView, error)
}

// ReconcileResult holds the outcome of one reconstruction run.
type ReconcileResult struct {
	Day     time.Time
	Created []*domain.Entry
	DryRun  bool
}

type ReconcileService interface {
	// Reconcile reconstructs provisional actuals for the given day.
	// With dryRun the synthesized entries are returned but not stored.
	Reconcile(ctx context.Context, userID string, day time.Time, dryRun bool) (*ReconcileResult, error)
}

// ImportResult summarizes one activity-log import.
type ImportResult struct {
	Samples  int
	Segments int
}

type ActivityService interface {
	ImportLog(ctx context.Context, path string) (*ImportResult, error)
	ListSegments(ctx context.Context, from, to time.Time) ([]*domain.ActivitySegment, error)
	// Watch re-imports path whenever its file changes, until ctx ends.
	Watch(ctx context.Context, path string) error
}

// MappingSuggestion proposes a classification for an unmapped application,
// weighted by how much classified plan time its activity overlapped.
type MappingSuggestion struct {
	AppBasename string
	ProjectID   string
	Weight      time.Duration
}

type MappingService interface {
	Upsert(ctx context.Context, m *domain.AppMapping) error
	GetByName(ctx context.Context, basename string) (*domain.AppMapping, error)
	List(ctx context.Context) ([]*domain.AppMapping, error)
	Delete(ctx context.Context, basename string) error
	// Suggest votes unmapped applications onto projects using the
	// classified plan entries their activity overlapped in [from, to).
	Suggest(ctx context.Context, userID string, from, to time.Time) ([]MappingSuggestion, error)
}

type TaxonomyService interface {
	CreateProject(ctx context.Context, name string) (*domain.Project, error)
	ListProjects(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	ArchiveProject(ctx context.Context, id string) error
	DeleteProject(ctx context.Context, id string) error

	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateLabel(ctx context.Context, name string) (*domain.Label, error)
	ListLabels(ctx context.Context) ([]*domain.Label, error)
	DeleteLabel(ctx context.Context, id string) error

	DayStartHour(ctx context.Context, userID string) (int, error)
	SetDayStartHour(ctx context.Context, userID string, hour int) error
}

// ReportDimension selects which classification axis a usage report sums
// over.
type ReportDimension string

const (
	ReportByProject  ReportDimension = "projects"
	ReportByCategory ReportDimension = "categories"
	ReportByLabel    ReportDimension = "labels"
)

// ReportRow is one line of a usage report, resolved to a display name.
type ReportRow struct {
	ID       string
	Name     string
	Duration time.Duration
}

type ReportService interface {
	// Usage sums actual time in [from, to) per classification key.
	// Label time fans out: an entry carrying two labels counts its full
	// duration toward both.
	Usage(ctx context.Context, userID string, from, to time.Time, dim ReportDimension) ([]ReportRow, error)
}

type ExportService interface {
	// ExportCSV writes all of one user's entries in [from, to) as CSV.
	ExportCSV(ctx context.Context, w io.Writer, userID string, from, to time.Time) (int, error)
}
