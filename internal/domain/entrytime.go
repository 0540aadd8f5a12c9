package domain

import (
	"fmt"
	"time"
)

// DateLayout is the storage format for date-only values.
const DateLayout = "2006-01-02"

// EntryTime is a calendar instant that is either a concrete datetime or a
// bare date (an all-day value). A bare date resolves to the configured
// day-start hour of that date.
type EntryTime struct {
	Date     string
	DateTime *time.Time
}

// TimeOf builds an EntryTime from a concrete instant.
func TimeOf(t time.Time) EntryTime {
	return EntryTime{DateTime: &t}
}

// DateOf builds an all-day EntryTime from a date string.
func DateOf(date string) EntryTime {
	return EntryTime{Date: date}
}

// IsZero reports whether neither a date nor a datetime is set.
func (et EntryTime) IsZero() bool {
	return et.Date == "" && et.DateTime == nil
}

// Resolve converts the value to a concrete instant. Datetime wins over date.
// Returns ErrMissingTimeValue when neither is set.
func (et EntryTime) Resolve(dayStartHour int, loc *time.Location) (time.Time, error) {
	if et.DateTime != nil {
		return *et.DateTime, nil
	}
	if et.Date != "" {
		d, err := time.ParseInLocation(DateLayout, et.Date, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("parsing date %q: %w", et.Date, err)
		}
		return d.Add(time.Duration(dayStartHour) * time.Hour), nil
	}
	return time.Time{}, ErrMissingTimeValue
}
