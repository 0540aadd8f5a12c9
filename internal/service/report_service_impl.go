package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/repository"
	"github.com/alexanderramin/tempo/internal/timegrid"
)

type reportService struct {
	entries  repository.EntryRepo
	taxonomy TaxonomyService
	loc      *time.Location
}

func NewReportService(entries repository.EntryRepo, taxonomy TaxonomyService, loc *time.Location) ReportService {
	if loc == nil {
		loc = time.Local
	}
	return &reportService{entries: entries, taxonomy: taxonomy, loc: loc}
}

func (s *reportService) Usage(ctx context.Context, userID string, from, to time.Time, dim ReportDimension) ([]ReportRow, error) {
	switch dim {
	case ReportByProject, ReportByCategory, ReportByLabel:
	default:
		return nil, fmt.Errorf("unknown report dimension %q", dim)
	}

	dayStartHour, err := s.taxonomy.DayStartHour(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.entries.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	_, actuals, err := domain.PartitionByKind(entries)
	if err != nil {
		return nil, err
	}

	tally := make(map[string]*timegrid.Usage)
	for _, e := range actuals {
		start, end, err := e.Interval(dayStartHour, s.loc)
		if err != nil {
			return nil, err
		}
		// Clip to the report window.
		d := timegrid.OverlapDuration(start, end, from, to)
		if d == 0 {
			continue
		}
		switch dim {
		case ReportByProject:
			if e.ProjectID != "" {
				timegrid.Accumulate(tally, e.ProjectID, d)
			}
		case ReportByCategory:
			if e.CategoryID != "" {
				timegrid.Accumulate(tally, e.CategoryID, d)
			}
		case ReportByLabel:
			// Labels fan out: the full clipped duration counts
			// toward every label the entry carries.
			for _, labelID := range e.LabelIDs {
				timegrid.Accumulate(tally, labelID, d)
			}
		}
	}

	names, err := s.namesFor(ctx, dim)
	if err != nil {
		return nil, err
	}

	ranked := timegrid.Ranked(tally)
	rows := make([]ReportRow, 0, len(ranked))
	for _, u := range ranked {
		name := names[u.ID]
		if name == "" {
			name = u.ID
		}
		rows = append(rows, ReportRow{ID: u.ID, Name: name, Duration: u.Duration})
	}
	return rows, nil
}

func (s *reportService) namesFor(ctx context.Context, dim ReportDimension) (map[string]string, error) {
	names := make(map[string]string)
	switch dim {
	case ReportByProject:
		projects, err := s.taxonomy.ListProjects(ctx, true)
		if err != nil {
			return nil, err
		}
		for _, p := range projects {
			names[p.ID] = p.Name
		}
	case ReportByCategory:
		categories, err := s.taxonomy.ListCategories(ctx)
		if err != nil {
			return nil, err
		}
		for _, c := range categories {
			names[c.ID] = c.Name
		}
	case ReportByLabel:
		labels, err := s.taxonomy.ListLabels(ctx)
		if err != nil {
			return nil, err
		}
		for _, l := range labels {
			names[l.ID] = l.Name
		}
	}
	return names, nil
}
