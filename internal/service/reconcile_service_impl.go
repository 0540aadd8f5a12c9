package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/tempo/internal/db"
	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/reconcile"
	"github.com/alexanderramin/tempo/internal/repository"
)

type reconcileService struct {
	entries  repository.EntryRepo
	segments repository.SegmentRepo
	mappings repository.MappingRepo
	taxonomy TaxonomyService
	uow      db.UnitOfWork
	loc      *time.Location
	observer Observer
}

func NewReconcileService(
	entries repository.EntryRepo,
	segments repository.SegmentRepo,
	mappings repository.MappingRepo,
	taxonomy TaxonomyService,
	uow db.UnitOfWork,
	loc *time.Location,
	observers ...Observer,
) ReconcileService {
	if loc == nil {
		loc = time.Local
	}
	return &reconcileService{
		entries:  entries,
		segments: segments,
		mappings: mappings,
		taxonomy: taxonomy,
		uow:      uow,
		loc:      loc,
		observer: firstObserver(observers),
	}
}

// mappingLookup adapts the repository to the engine's lookup port: an
// unmapped application is an expected miss, not an error.
type mappingLookup struct {
	repo repository.MappingRepo
}

func (l mappingLookup) GetByName(ctx context.Context, basename string) (*domain.AppMapping, error) {
	m, err := l.repo.GetByName(ctx, basename)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return m, err
}

// entryAllocator satisfies the engine's factory port without touching
// storage. The engine runs its slots concurrently, so allocation must not
// share a transaction; the service persists the batch afterwards.
type entryAllocator struct{}

func (entryAllocator) Create(_ context.Context, userID string, kind domain.EntryKind, summary string,
	start, end time.Time, provisional bool) (*domain.Entry, error) {
	now := time.Now().UTC()
	return &domain.Entry{
		ID:          uuid.New().String(),
		UserID:      userID,
		Kind:        kind,
		Start:       domain.TimeOf(start),
		End:         domain.TimeOf(end),
		Summary:     summary,
		Provisional: provisional,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (s *reconcileService) Reconcile(ctx context.Context, userID string, day time.Time, dryRun bool) (result *ReconcileResult, err error) {
	startedAt := time.Now().UTC()
	attrs := map[string]any{"day": day.Format("2006-01-02"), "dry_run": dryRun}
	defer func() {
		s.observer.Observe(ctx, OpEvent{
			Op:      "reconcile.day",
			Started: startedAt,
			Elapsed: time.Since(startedAt),
			Err:     err,
			Attrs:   attrs,
		})
	}()

	dayStartHour, err := s.taxonomy.DayStartHour(ctx, userID)
	if err != nil {
		return nil, err
	}

	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, s.loc)
	to := from.Add(24 * time.Hour)

	entries, err := s.entries.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	plans, actuals, err := domain.PartitionByKind(entries)
	if err != nil {
		return nil, err
	}
	segments, err := s.segments.ListRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	engine := reconcile.NewEngine(mappingLookup{repo: s.mappings}, entryAllocator{}, dayStartHour, s.loc)
	created, err := engine.Reconstruct(ctx, userID, from, plans, actuals, segments)
	if err != nil {
		return nil, err
	}
	attrs["created"] = len(created)

	if !dryRun && len(created) > 0 {
		err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			txEntries := repository.NewSQLiteEntryRepo(tx)
			for _, e := range created {
				if err := txEntries.Create(ctx, e); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return &ReconcileResult{Day: from, Created: created, DryRun: dryRun}, nil
}
