package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/repository"
	"github.com/alexanderramin/tempo/internal/timegrid"
)

// entryAccessors adapts entries to the grid's cell wrapper.
var entryAccessors = timegrid.Accessors[*domain.Entry]{
	ID:      func(e *domain.Entry) string { return e.ID },
	Summary: func(e *domain.Entry) string { return e.Summary },
}

type dayViewService struct {
	entries  repository.EntryRepo
	taxonomy TaxonomyService
	loc      *time.Location
}

func NewDayViewService(entries repository.EntryRepo, taxonomy TaxonomyService, loc *time.Location) DayViewService {
	if loc == nil {
		loc = time.Local
	}
	return &dayViewService{entries: entries, taxonomy: taxonomy, loc: loc}
}

func (s *dayViewService) View(ctx context.Context, userID string, date time.Time) (*DayView, error) {
	dayStartHour, err := s.taxonomy.DayStartHour(ctx, userID)
	if err != nil {
		return nil, err
	}

	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, s.loc)
	to := from.Add(24 * time.Hour)

	entries, err := s.entries.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	plans, actuals, err := domain.PartitionByKind(entries)
	if err != nil {
		return nil, err
	}

	planCells, err := buildCells(plans, dayStartHour, s.loc)
	if err != nil {
		return nil, err
	}
	actualCells, err := buildCells(actuals, dayStartHour, s.loc)
	if err != nil {
		return nil, err
	}

	return &DayView{
		Date:    from,
		From:    from,
		To:      to,
		Plans:   timegrid.Layout(planCells),
		Actuals: timegrid.Layout(actualCells),
	}, nil
}

func buildCells(entries []*domain.Entry, dayStartHour int, loc *time.Location) ([]*timegrid.TimeCell[*domain.Entry], error) {
	cells := make([]*timegrid.TimeCell[*domain.Entry], 0, len(entries))
	for _, e := range entries {
		start, end, err := e.Interval(dayStartHour, loc)
		if err != nil {
			return nil, fmt.Errorf("laying out entry: %w", err)
		}
		cells = append(cells, timegrid.NewCell(e, start, end, entryAccessors))
	}
	return cells, nil
}
