package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/tempo/internal/activity"
	"github.com/alexanderramin/tempo/internal/db"
	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/repository"
)

type activityService struct {
	segments repository.SegmentRepo
	uow      db.UnitOfWork
	observer Observer
}

func NewActivityService(segments repository.SegmentRepo, uow db.UnitOfWork, observers ...Observer) ActivityService {
	return &activityService{
		segments: segments,
		uow:      uow,
		observer: firstObserver(observers),
	}
}

func (s *activityService) ImportLog(ctx context.Context, path string) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	attrs := map[string]any{"path": path}
	defer func() {
		s.observer.Observe(ctx, OpEvent{
			Op:      "activity.import",
			Started: startedAt,
			Elapsed: time.Since(startedAt),
			Err:     err,
			Attrs:   attrs,
		})
	}()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	samples, err := activity.ParseLog(f)
	if err != nil {
		return nil, err
	}
	merged := activity.MergeSamples(samples)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSegments := repository.NewSQLiteSegmentRepo(tx)
		for _, seg := range merged {
			if seg.ID == "" {
				seg.ID = uuid.New().String()
			}
			if err := txSegments.Upsert(ctx, seg); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	attrs["samples"] = len(samples)
	attrs["segments"] = len(merged)
	return &ImportResult{Samples: len(samples), Segments: len(merged)}, nil
}

func (s *activityService) ListSegments(ctx context.Context, from, to time.Time) ([]*domain.ActivitySegment, error) {
	return s.segments.ListRange(ctx, from, to)
}

// Watch keeps the segment store in sync with a live capture log. Every
// change event triggers a full re-import; upserts make that idempotent.
func (s *activityService) Watch(ctx context.Context, path string) error {
	watcher, err := activity.NewWatcher(path)
	if err != nil {
		return err
	}
	defer watcher.Close()

	go watcher.Run(ctx)

	// Pick up whatever is already on disk before waiting for changes.
	if _, err := s.ImportLog(ctx, path); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			if _, err := s.ImportLog(ctx, path); err != nil {
				return err
			}
		}
	}
}
