package domain

import "time"

// AppMapping classifies one application basename to a project, a category,
// and a set of labels. The reconstruction engine reads these mappings to
// infer what a block of activity was for.
type AppMapping struct {
	AppBasename string
	ProjectID   string
	CategoryID  string
	LabelIDs    []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
