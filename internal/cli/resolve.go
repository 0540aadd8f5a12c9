package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tempo/internal/domain"
)

// parseDate accepts YYYY-MM-DD, or "today"/"yesterday" shortcuts. An empty
// input means today.
func parseDate(input string, loc *time.Location) (time.Time, error) {
	now := time.Now().In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	switch input {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}
	t, err := time.ParseInLocation(domain.DateLayout, input, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", input, err)
	}
	return t, nil
}

// parseRange resolves an inclusive day range to half-open instants.
// Defaults cover the last seven days.
func parseRange(from, to string, loc *time.Location) (time.Time, time.Time, error) {
	toDay, err := parseDate(to, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	var fromDay time.Time
	if from == "" {
		fromDay = toDay.AddDate(0, 0, -7)
	} else if fromDay, err = parseDate(from, loc); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if fromDay.After(toDay) {
		return time.Time{}, time.Time{}, fmt.Errorf("--from is after --to")
	}
	return fromDay, toDay.Add(24 * time.Hour), nil
}

// parseClock resolves "HH:MM" on the given day.
func parseClock(day time.Time, input string) (time.Time, error) {
	t, err := time.ParseInLocation("15:04", input, day.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q (want HH:MM): %w", input, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

// resolveEntryID matches an entry by full ID or unambiguous ID prefix among
// the user's entries on the given day.
func resolveEntryID(ctx context.Context, app *App, day time.Time, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("entry ID is required")
	}

	entries, err := app.Entries.ListRange(ctx, app.UserID, day, day.Add(24*time.Hour))
	if err != nil {
		return "", err
	}

	var matches []string
	for _, e := range entries {
		if e.ID == input {
			return e.ID, nil
		}
		if strings.HasPrefix(e.ID, input) {
			matches = append(matches, e.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("entry not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("entry ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveProjectID matches a project by exact name, full ID, or ID prefix.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", nil
	}

	projects, err := app.Taxonomy.ListProjects(ctx, true)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if strings.EqualFold(p.Name, input) || p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveCategoryID matches a category by exact name or ID.
func resolveCategoryID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", nil
	}
	categories, err := app.Taxonomy.ListCategories(ctx)
	if err != nil {
		return "", err
	}
	for _, c := range categories {
		if strings.EqualFold(c.Name, input) || c.ID == input {
			return c.ID, nil
		}
	}
	return "", fmt.Errorf("category not found: %q", input)
}

// resolveLabelIDs matches labels by exact name or ID.
func resolveLabelIDs(ctx context.Context, app *App, inputs []string) ([]string, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	labels, err := app.Taxonomy.ListLabels(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(inputs))
	for _, input := range inputs {
		found := ""
		for _, l := range labels {
			if strings.EqualFold(l.Name, input) || l.ID == input {
				found = l.ID
				break
			}
		}
		if found == "" {
			return nil, fmt.Errorf("label not found: %q", input)
		}
		ids = append(ids, found)
	}
	return ids, nil
}
