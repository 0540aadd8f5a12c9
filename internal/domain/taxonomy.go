package domain

import "time"

type Project struct {
	ID         string
	Name       string
	ArchivedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Label struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Preference is one per-user key/value setting, e.g. the day-start hour.
type Preference struct {
	UserID    string
	Key       string
	Value     string
	UpdatedAt time.Time
}

// Preference keys.
const (
	PrefDayStartHour = "day_start_hour"
)
