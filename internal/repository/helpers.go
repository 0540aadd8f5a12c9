package repository

import (
	"database/sql"
	"time"

	"github.com/alexanderramin/tempo/internal/domain"
)

// nullableString converts an empty string to SQL NULL.
func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// nullableTimeToString converts a *time.Time for SQLite storage; nil maps
// to SQL NULL.
func nullableTimeToString(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

// parseNullableTime parses a stored timestamp. NULL, empty, and unparseable
// values all come back nil.
func parseNullableTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// entryTimeColumns splits an EntryTime into its (date, datetime) storage
// pair.
func entryTimeColumns(et domain.EntryTime) (interface{}, interface{}) {
	var date, datetime interface{}
	if et.Date != "" {
		date = et.Date
	}
	if et.DateTime != nil {
		datetime = et.DateTime.UTC().Format(time.RFC3339)
	}
	return date, datetime
}

// scanEntryTime rebuilds an EntryTime from its storage pair.
func scanEntryTime(date, datetime sql.NullString) domain.EntryTime {
	var et domain.EntryTime
	if date.Valid {
		et.Date = date.String
	}
	if t := parseNullableTime(datetime); t != nil {
		et.DateTime = t
	}
	return et
}

// boolToInt converts a bool for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
