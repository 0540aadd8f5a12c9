// Package timegrid holds the calendar-grid primitives: the TimeCell wrapper
// that carries lane-layout metadata for an interval, the overlap layout
// engine that assigns lanes, and the usage-time accumulator shared by the
// reconstruction and reporting code.
package timegrid

import "time"

// MinVisibleDuration is the rendering floor for very short intervals so they
// stay visible and clickable on the grid. It never participates in overlap
// comparisons.
const MinVisibleDuration = 15 * time.Minute

// Accessors derive identity and display text from a wrapped record. Each
// record kind supplies its own pair instead of implementing an interface.
type Accessors[T any] struct {
	ID      func(T) string
	Summary func(T) string
}

// TimeCell pairs a half-open interval [Start, End) with its owning record
// and the mutable lane-assignment fields the layout engine fills in. Cells
// are built per render pass and discarded; they carry no identity beyond
// their record's.
type TimeCell[T any] struct {
	Record T

	start time.Time
	end   time.Time
	acc   Accessors[T]

	// OverlapIndex is the zero-based lane position within the cell's
	// overlap group; OverlapCount is the group's total lane divisor.
	OverlapIndex int
	OverlapCount int
}

// NewCell wraps a record with its resolved interval. The interval is
// clamped so that end >= start.
func NewCell[T any](record T, start, end time.Time, acc Accessors[T]) *TimeCell[T] {
	if end.Before(start) {
		end = start
	}
	return &TimeCell[T]{
		Record:       record,
		start:        start,
		end:          end,
		acc:          acc,
		OverlapIndex: 0,
		OverlapCount: 1,
	}
}

// Start returns the actual interval start.
func (c *TimeCell[T]) Start() time.Time { return c.start }

// End returns the actual interval end.
func (c *TimeCell[T]) End() time.Time { return c.end }

// RenderStart is the display start, identical to Start.
func (c *TimeCell[T]) RenderStart() time.Time { return c.start }

// RenderEnd is the display end, floored to MinVisibleDuration after Start.
// Use only for rendering, never for overlap comparison.
func (c *TimeCell[T]) RenderEnd() time.Time {
	if floor := c.start.Add(MinVisibleDuration); c.end.Before(floor) {
		return floor
	}
	return c.end
}

// ID returns the wrapped record's identity.
func (c *TimeCell[T]) ID() string {
	if c.acc.ID == nil {
		return ""
	}
	return c.acc.ID(c.Record)
}

// Summary returns the wrapped record's display text.
func (c *TimeCell[T]) Summary() string {
	if c.acc.Summary == nil {
		return ""
	}
	return c.acc.Summary(c.Record)
}

// Overlaps reports strict half-open overlap on the actual bounds.
// Intervals that merely touch at a boundary do not overlap.
func (c *TimeCell[T]) Overlaps(other *TimeCell[T]) bool {
	return c.start.Before(other.end) && other.start.Before(c.end)
}
