package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/tempo/internal/domain"
)

// TestUserID is the user all fixtures belong to unless overridden.
const TestUserID = "test-user"

// EntryOption mutates an entry fixture before it is returned.
type EntryOption func(*domain.Entry)

func WithKind(k domain.EntryKind) EntryOption {
	return func(e *domain.Entry) {
		e.Kind = k
	}
}

func WithProject(id string) EntryOption {
	return func(e *domain.Entry) {
		e.ProjectID = id
	}
}

func WithCategory(id string) EntryOption {
	return func(e *domain.Entry) {
		e.CategoryID = id
	}
}

func WithLabels(ids ...string) EntryOption {
	return func(e *domain.Entry) {
		e.LabelIDs = ids
	}
}

func WithProvisional() EntryOption {
	return func(e *domain.Entry) {
		e.Provisional = true
	}
}

func WithAllDay(date string) EntryOption {
	return func(e *domain.Entry) {
		e.Start = domain.DateOf(date)
		e.End = domain.DateOf(date)
	}
}

// NewTestEntry builds a plan entry spanning the given interval.
func NewTestEntry(summary string, start, end time.Time, opts ...EntryOption) *domain.Entry {
	now := time.Now().UTC()
	e := &domain.Entry{
		ID:        uuid.New().String(),
		UserID:    TestUserID,
		Kind:      domain.KindPlan,
		Start:     domain.TimeOf(start),
		End:       domain.TimeOf(end),
		Summary:   summary,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewTestProject builds a named project fixture.
func NewTestProject(name string) *domain.Project {
	now := time.Now().UTC()
	return &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTestCategory builds a named category fixture.
func NewTestCategory(name string) *domain.Category {
	now := time.Now().UTC()
	return &domain.Category{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTestLabel builds a named label fixture.
func NewTestLabel(name string) *domain.Label {
	now := time.Now().UTC()
	return &domain.Label{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTestSegment builds an activity segment for the given app and interval.
func NewTestSegment(app string, start, end time.Time) *domain.ActivitySegment {
	return &domain.ActivitySegment{
		ID:          uuid.New().String(),
		AppBasename: app,
		Start:       start,
		End:         end,
		WindowTitle: app + " window",
	}
}

// NewTestMapping builds an app mapping fixture.
func NewTestMapping(app, projectID string) *domain.AppMapping {
	now := time.Now().UTC()
	return &domain.AppMapping{
		AppBasename: app,
		ProjectID:   projectID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
