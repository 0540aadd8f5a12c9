package service

import (
	"context"
	"sort"
	"time"

	"github.com/alexanderramin/tempo/internal/db"
	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/repository"
	"github.com/alexanderramin/tempo/internal/timegrid"
)

type mappingService struct {
	mappings repository.MappingRepo
	segments repository.SegmentRepo
	entries  repository.EntryRepo
	taxonomy TaxonomyService
	uow      db.UnitOfWork
	loc      *time.Location
}

func NewMappingService(
	mappings repository.MappingRepo,
	segments repository.SegmentRepo,
	entries repository.EntryRepo,
	taxonomy TaxonomyService,
	uow db.UnitOfWork,
	loc *time.Location,
) MappingService {
	if loc == nil {
		loc = time.Local
	}
	return &mappingService{
		mappings: mappings,
		segments: segments,
		entries:  entries,
		taxonomy: taxonomy,
		uow:      uow,
		loc:      loc,
	}
}

func (s *mappingService) Upsert(ctx context.Context, m *domain.AppMapping) error {
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteMappingRepo(tx).Upsert(ctx, m)
	})
}

func (s *mappingService) GetByName(ctx context.Context, basename string) (*domain.AppMapping, error) {
	return s.mappings.GetByName(ctx, basename)
}

func (s *mappingService) List(ctx context.Context) ([]*domain.AppMapping, error) {
	return s.mappings.List(ctx)
}

func (s *mappingService) Delete(ctx context.Context, basename string) error {
	return s.mappings.Delete(ctx, basename)
}

// Suggest proposes classifications for unmapped applications. Each
// segment of an unmapped app votes for the projects of the classified
// plan entries it overlapped, weighted by overlap duration; the winning
// project per app becomes the suggestion.
func (s *mappingService) Suggest(ctx context.Context, userID string, from, to time.Time) ([]MappingSuggestion, error) {
	dayStartHour, err := s.taxonomy.DayStartHour(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.mappings.List(ctx)
	if err != nil {
		return nil, err
	}
	mapped := make(map[string]bool, len(existing))
	for _, m := range existing {
		mapped[m.AppBasename] = true
	}

	segments, err := s.segments.ListRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	entries, err := s.entries.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	plans, _, err := domain.PartitionByKind(entries)
	if err != nil {
		return nil, err
	}

	// votes accumulates per app, then per project within the app.
	votes := make(map[string]map[string]*timegrid.Usage)
	for _, seg := range segments {
		if mapped[seg.AppBasename] {
			continue
		}
		for _, plan := range plans {
			if plan.ProjectID == "" {
				continue
			}
			start, end, err := plan.Interval(dayStartHour, s.loc)
			if err != nil {
				continue
			}
			d := timegrid.OverlapDuration(seg.Start, seg.End, start, end)
			if d == 0 {
				continue
			}
			tally, ok := votes[seg.AppBasename]
			if !ok {
				tally = make(map[string]*timegrid.Usage)
				votes[seg.AppBasename] = tally
			}
			timegrid.Accumulate(tally, plan.ProjectID, d)
		}
	}

	suggestions := make([]MappingSuggestion, 0, len(votes))
	for app, tally := range votes {
		if top := timegrid.Top(tally); top != nil {
			suggestions = append(suggestions, MappingSuggestion{
				AppBasename: app,
				ProjectID:   top.ID,
				Weight:      top.Duration,
			})
		}
	}
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Weight != suggestions[j].Weight {
			return suggestions[i].Weight > suggestions[j].Weight
		}
		return suggestions[i].AppBasename < suggestions[j].AppBasename
	})
	return suggestions, nil
}
