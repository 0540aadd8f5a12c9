// Package activity ingests the foreground-application capture log: parsing
// raw focus samples from JSONL, merging adjacent same-application samples
// into activity segments, and tailing the log for live updates.
package activity

import (
	"sort"

	"github.com/google/uuid"

	"github.com/alexanderramin/tempo/internal/domain"
)

// MergeSamples folds raw focus samples into activity segments. Samples are
// stably sorted by start time; a new segment begins exactly when the
// application basename changes, so the output is in non-decreasing start
// order and each segment keeps its samples as Details. The segment's window
// title is the first sample's.
func MergeSamples(samples []domain.FocusSample) []*domain.ActivitySegment {
	if len(samples) == 0 {
		return nil
	}

	ordered := make([]domain.FocusSample, len(samples))
	copy(ordered, samples)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start.Before(ordered[j].Start)
	})

	var segments []*domain.ActivitySegment
	var current *domain.ActivitySegment
	for _, s := range ordered {
		if s.App == "" || !s.Start.Before(s.End) {
			continue
		}
		if current == nil || current.AppBasename != s.App {
			current = &domain.ActivitySegment{
				ID:          uuid.New().String(),
				AppBasename: s.App,
				Start:       s.Start,
				End:         s.End,
				WindowTitle: s.Title,
			}
			segments = append(segments, current)
		}
		if s.End.After(current.End) {
			current.End = s.End
		}
		current.Details = append(current.Details, domain.SegmentDetail{
			Start: s.Start,
			End:   s.End,
			Title: s.Title,
		})
	}
	return segments
}
