package timegrid

import (
	"sort"
	"time"
)

// Usage is an accumulated duration attributed to one classification key
// (a project, category, label, or application).
type Usage struct {
	ID       string
	Duration time.Duration
}

// Accumulate adds d to the tally for id, inserting it on first sight.
// It is the single reducer behind the reconstruction tallies, the usage
// reports, and mapping auto-registration voting.
func Accumulate(m map[string]*Usage, id string, d time.Duration) {
	if u, ok := m[id]; ok {
		u.Duration += d
		return
	}
	m[id] = &Usage{ID: id, Duration: d}
}

// Top returns the highest-weighted usage, or nil for an empty tally.
// Ties break toward the lexicographically smallest ID so the result is a
// deterministic total order rather than map iteration order.
func Top(m map[string]*Usage) *Usage {
	var best *Usage
	for _, u := range m {
		switch {
		case best == nil:
			best = u
		case u.Duration > best.Duration:
			best = u
		case u.Duration == best.Duration && u.ID < best.ID:
			best = u
		}
	}
	return best
}

// Ranked returns all usages sorted by duration descending, ID ascending.
func Ranked(m map[string]*Usage) []Usage {
	out := make([]Usage, 0, len(m))
	for _, u := range m {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Duration != out[j].Duration {
			return out[i].Duration > out[j].Duration
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// OverlapDuration returns the length of the intersection of two half-open
// intervals, or zero when they merely touch or are disjoint.
func OverlapDuration(aStart, aEnd, bStart, bEnd time.Time) time.Duration {
	start := aStart
	if bStart.After(start) {
		start = bStart
	}
	end := aEnd
	if bEnd.Before(end) {
		end = bEnd
	}
	if !start.Before(end) {
		return 0
	}
	return end.Sub(start)
}
