package domain

import "time"

// FocusSample is one raw record from the foreground-application capture log:
// a single uninterrupted focus interval for one application window.
type FocusSample struct {
	App   string    `json:"app"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SegmentDetail is one sub-interval inside a merged activity segment.
type SegmentDetail struct {
	Start time.Time
	End   time.Time
	Title string
}

// ActivitySegment is a merged run of consecutive focus samples for the same
// application. Segments are emitted in non-decreasing start order; a new
// segment begins exactly when the application basename changes.
type ActivitySegment struct {
	ID          string
	AppBasename string
	Start       time.Time
	End         time.Time
	WindowTitle string
	Details     []SegmentDetail
}
