package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := parseDate("2026-03-14", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), got)

	today, err := parseDate("", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 0, today.Hour())

	yesterday, err := parseDate("yesterday", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, today.AddDate(0, 0, -1), yesterday)

	_, err = parseDate("14/03/2026", time.UTC)
	assert.Error(t, err)
}

func TestParseClock(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	got, err := parseClock(day, "09:30")
	require.NoError(t, err)
	assert.Equal(t, day.Add(9*time.Hour+30*time.Minute), got)

	_, err = parseClock(day, "9am")
	assert.Error(t, err)
}

func TestParseRange(t *testing.T) {
	from, to, err := parseRange("2026-03-01", "2026-03-14", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), from)
	// The range is half-open past the end of the --to day.
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), to)

	_, _, err = parseRange("2026-03-20", "2026-03-14", time.UTC)
	assert.Error(t, err)
}

func TestParseRange_DefaultsToLastWeek(t *testing.T) {
	from, to, err := parseRange("", "", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 8*24*time.Hour, to.Sub(from))
}
