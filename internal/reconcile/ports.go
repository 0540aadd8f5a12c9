// Package reconcile infers what the user was actually doing from captured
// activity, hour by hour, and synthesizes provisional actual entries for
// the hours nothing was recorded in.
package reconcile

import (
	"context"
	"time"

	"github.com/alexanderramin/tempo/internal/domain"
)

// AppLookup resolves an application basename to its classification.
// A nil mapping with a nil error means the application is unmapped, which
// is an expected steady state rather than a failure.
type AppLookup interface {
	GetByName(ctx context.Context, basename string) (*domain.AppMapping, error)
}

// EntryFactory allocates new entries with an id and default fields. The
// engine treats the returned entry as authoritative and only overlays the
// inferred classification.
type EntryFactory interface {
	Create(ctx context.Context, userID string, kind domain.EntryKind, summary string,
		start, end time.Time, provisional bool) (*domain.Entry, error)
}
