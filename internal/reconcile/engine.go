package reconcile

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/timegrid"
)

// DefaultSummary titles a synthesized actual when no plan overlaps its hour.
const DefaultSummary = "Untracked time"

const slotsPerDay = 24

// Engine is the actual-time reconstruction engine. It never mutates its
// inputs and performs I/O only through the two injected ports.
type Engine struct {
	lookup       AppLookup
	factory      EntryFactory
	dayStartHour int
	loc          *time.Location
}

// NewEngine wires the engine to its collaborators. dayStartHour is used to
// resolve all-day entries; loc anchors date-only values.
func NewEngine(lookup AppLookup, factory EntryFactory, dayStartHour int, loc *time.Location) *Engine {
	if loc == nil {
		loc = time.Local
	}
	return &Engine{lookup: lookup, factory: factory, dayStartHour: dayStartHour, loc: loc}
}

// interval is an entry with its resolved concrete bounds.
type interval struct {
	entry *domain.Entry
	start time.Time
	end   time.Time
}

// Reconstruct evaluates the 24 hour slots of day and returns newly
// synthesized provisional ACTUAL entries, in hour order. Slots are
// evaluated concurrently; they only read the shared inputs and each writes
// its own result, so no locking is involved. All slots are awaited and
// their failures joined.
func (e *Engine) Reconstruct(ctx context.Context, userID string, day time.Time,
	plans, actuals []*domain.Entry, segments []*domain.ActivitySegment) ([]*domain.Entry, error) {

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, e.loc)

	planIvals := e.resolve(plans)
	actualIvals := e.resolve(actuals)

	results := make([]*domain.Entry, slotsPerDay)
	errs := make([]error, slotsPerDay)

	var wg sync.WaitGroup
	for h := 0; h < slotsPerDay; h++ {
		wg.Add(1)
		go func(hour int) {
			defer wg.Done()
			slotStart := dayStart.Add(time.Duration(hour) * time.Hour)
			slotEnd := slotStart.Add(time.Hour)
			results[hour], errs[hour] = e.slot(ctx, userID, slotStart, slotEnd, planIvals, actualIvals, segments)
		}(h)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	out := make([]*domain.Entry, 0, slotsPerDay)
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}
	return out, nil
}

// slot evaluates one hour. It returns (nil, nil) when the hour is already
// actualized or carries no activity signal.
func (e *Engine) slot(ctx context.Context, userID string, slotStart, slotEnd time.Time,
	plans, actuals []interval, segments []*domain.ActivitySegment) (*domain.Entry, error) {

	// An hour with any recorded actual time is never re-synthesized,
	// even partially.
	for _, a := range actuals {
		if timegrid.OverlapDuration(a.start, a.end, slotStart, slotEnd) > 0 {
			return nil, nil
		}
	}

	signal := false
	for _, s := range segments {
		if timegrid.OverlapDuration(s.Start, s.End, slotStart, slotEnd) > 0 {
			signal = true
			break
		}
	}
	if !signal {
		return nil, nil
	}

	byProject := make(map[string]*timegrid.Usage)
	byCategory := make(map[string]*timegrid.Usage)
	byLabel := make(map[string]*timegrid.Usage)

	for _, s := range segments {
		d := timegrid.OverlapDuration(s.Start, s.End, slotStart, slotEnd)
		if d <= 0 {
			continue
		}
		mapping, err := e.lookup.GetByName(ctx, s.AppBasename)
		if err != nil {
			return nil, err
		}
		if mapping == nil {
			continue
		}
		if mapping.ProjectID != "" {
			timegrid.Accumulate(byProject, mapping.ProjectID, d)
		}
		if mapping.CategoryID != "" {
			timegrid.Accumulate(byCategory, mapping.CategoryID, d)
		}
		// Labels fan out: each label gets the full overlap duration.
		for _, labelID := range mapping.LabelIDs {
			timegrid.Accumulate(byLabel, labelID, d)
		}
	}

	entry, err := e.factory.Create(ctx, userID, domain.KindActual, e.slotSummary(slotStart, slotEnd, plans), slotStart, slotEnd, true)
	if err != nil {
		return nil, err
	}

	if top := timegrid.Top(byProject); top != nil {
		entry.ProjectID = top.ID
	}
	if top := timegrid.Top(byCategory); top != nil {
		entry.CategoryID = top.ID
	}
	// Only the single heaviest label is inferred, even though entries
	// support several. Known limitation, kept on purpose.
	if top := timegrid.Top(byLabel); top != nil {
		entry.LabelIDs = []string{top.ID}
	}

	return entry, nil
}

// slotSummary inherits the title of the plan with the largest overlap;
// insertion order breaks ties.
func (e *Engine) slotSummary(slotStart, slotEnd time.Time, plans []interval) string {
	var best *interval
	var bestOverlap time.Duration
	for i := range plans {
		d := timegrid.OverlapDuration(plans[i].start, plans[i].end, slotStart, slotEnd)
		if d > 0 && d > bestOverlap {
			best = &plans[i]
			bestOverlap = d
		}
	}
	if best == nil {
		return DefaultSummary
	}
	return best.entry.Summary
}

// resolve converts entries to concrete intervals. Entries that are deleted
// or carry unresolvable times are skipped rather than failing the run.
func (e *Engine) resolve(entries []*domain.Entry) []interval {
	out := make([]interval, 0, len(entries))
	for _, entry := range entries {
		if entry == nil || entry.Deleted() {
			continue
		}
		start, end, err := entry.Interval(e.dayStartHour, e.loc)
		if err != nil {
			continue
		}
		out = append(out, interval{entry: entry, start: start, end: end})
	}
	return out
}
