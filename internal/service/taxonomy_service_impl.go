package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/repository"
)

// DefaultDayStartHour anchors all-day entries when the user has not set a
// preference.
const DefaultDayStartHour = 9

type taxonomyService struct {
	projects    repository.ProjectRepo
	categories  repository.CategoryRepo
	labels      repository.LabelRepo
	preferences repository.PreferenceRepo
}

func NewTaxonomyService(
	projects repository.ProjectRepo,
	categories repository.CategoryRepo,
	labels repository.LabelRepo,
	preferences repository.PreferenceRepo,
) TaxonomyService {
	return &taxonomyService{
		projects:    projects,
		categories:  categories,
		labels:      labels,
		preferences: preferences,
	}
}

func (s *taxonomyService) CreateProject(ctx context.Context, name string) (*domain.Project, error) {
	if name == "" {
		return nil, fmt.Errorf("project requires a name")
	}
	now := time.Now().UTC()
	p := &domain.Project{ID: uuid.New().String(), Name: name, CreatedAt: now, UpdatedAt: now}
	if err := s.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *taxonomyService) ListProjects(ctx context.Context, includeArchived bool) ([]*domain.Project, error) {
	return s.projects.List(ctx, includeArchived)
}

func (s *taxonomyService) ArchiveProject(ctx context.Context, id string) error {
	return s.projects.Archive(ctx, id)
}

func (s *taxonomyService) DeleteProject(ctx context.Context, id string) error {
	return s.projects.Delete(ctx, id)
}

func (s *taxonomyService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("category requires a name")
	}
	now := time.Now().UTC()
	c := &domain.Category{ID: uuid.New().String(), Name: name, CreatedAt: now, UpdatedAt: now}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *taxonomyService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *taxonomyService) DeleteCategory(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}

func (s *taxonomyService) CreateLabel(ctx context.Context, name string) (*domain.Label, error) {
	if name == "" {
		return nil, fmt.Errorf("label requires a name")
	}
	now := time.Now().UTC()
	l := &domain.Label{ID: uuid.New().String(), Name: name, CreatedAt: now, UpdatedAt: now}
	if err := s.labels.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *taxonomyService) ListLabels(ctx context.Context) ([]*domain.Label, error) {
	return s.labels.List(ctx)
}

func (s *taxonomyService) DeleteLabel(ctx context.Context, id string) error {
	return s.labels.Delete(ctx, id)
}

func (s *taxonomyService) DayStartHour(ctx context.Context, userID string) (int, error) {
	value, err := s.preferences.Get(ctx, userID, domain.PrefDayStartHour)
	if errors.Is(err, repository.ErrNotFound) {
		return DefaultDayStartHour, nil
	}
	if err != nil {
		return 0, err
	}
	hour, err := strconv.Atoi(value)
	if err != nil || hour < 0 || hour > 23 {
		return DefaultDayStartHour, nil
	}
	return hour, nil
}

func (s *taxonomyService) SetDayStartHour(ctx context.Context, userID string, hour int) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("day start hour %d out of range", hour)
	}
	return s.preferences.Set(ctx, &domain.Preference{
		UserID:    userID,
		Key:       domain.PrefDayStartHour,
		Value:     strconv.Itoa(hour),
		UpdatedAt: time.Now().UTC(),
	})
}
