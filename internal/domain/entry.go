package domain

import (
	"fmt"
	"time"
)

type EntryKind string

const (
	KindPlan   EntryKind = "PLAN"
	KindActual EntryKind = "ACTUAL"
	KindShared EntryKind = "SHARED"
)

// Entry is a single calendar record: something the user planned to do or
// something they actually did. Provisional actuals are synthesized by the
// reconstruction engine and stay provisional until the user confirms them.
type Entry struct {
	ID      string
	UserID  string
	Kind    EntryKind
	Start   EntryTime
	End     EntryTime
	Summary string

	ProjectID  string
	CategoryID string
	TaskID     string
	LabelIDs   []string

	Provisional bool

	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Deleted reports whether the entry has been soft-deleted.
func (e *Entry) Deleted() bool {
	return e.DeletedAt != nil
}

// Interval resolves the entry's start and end to concrete instants.
// All-day values normalize to dayStartHour in loc.
func (e *Entry) Interval(dayStartHour int, loc *time.Location) (time.Time, time.Time, error) {
	start, err := e.Start.Resolve(dayStartHour, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("entry %s start: %w", e.ID, err)
	}
	end, err := e.End.Resolve(dayStartHour, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("entry %s end: %w", e.ID, err)
	}
	return start, end, nil
}

// PartitionByKind splits entries into the plan lane and the actual lane.
// SHARED entries render alongside plans. An unknown kind is a domain
// invariant violation and aborts the whole partition.
func PartitionByKind(entries []*Entry) (plans, actuals []*Entry, err error) {
	for _, e := range entries {
		switch e.Kind {
		case KindPlan, KindShared:
			plans = append(plans, e)
		case KindActual:
			actuals = append(actuals, e)
		default:
			return nil, nil, fmt.Errorf("entry %s has kind %q: %w", e.ID, e.Kind, ErrUnexpectedEntryKind)
		}
	}
	return plans, actuals, nil
}
