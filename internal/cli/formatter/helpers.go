package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/tempo/internal/domain"
)

// TruncID shortens a UUID for display.
func TruncID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// HumanDuration renders a duration as "2h30m", "45m", or "0m".
func HumanDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh%dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// EntryTimeLabel renders an entry time bound: clock time for instants,
// "all-day" for date-only values.
func EntryTimeLabel(et domain.EntryTime, loc *time.Location) string {
	if et.DateTime != nil {
		return et.DateTime.In(loc).Format("15:04")
	}
	if et.Date != "" {
		return "all-day"
	}
	return "?"
}

// EntrySpan renders "09:00-10:30" or "all-day" for an entry.
func EntrySpan(e *domain.Entry, loc *time.Location) string {
	if e.Start.DateTime == nil && e.Start.Date != "" {
		return "all-day"
	}
	return EntryTimeLabel(e.Start, loc) + "-" + EntryTimeLabel(e.End, loc)
}
