package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/testutil"
)

func TestDayView_SplitsLanesAndLaysOut(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Two overlapping plans share a column set; the actual sits alone.
	require.NoError(t, env.entries.Create(ctx, testutil.NewTestEntry("a", day(9, 0), day(11, 0))))
	require.NoError(t, env.entries.Create(ctx, testutil.NewTestEntry("b", day(10, 0), day(12, 0))))
	require.NoError(t, env.entries.Create(ctx, testutil.NewTestEntry("done", day(9, 0), day(10, 0),
		testutil.WithKind(domain.KindActual))))

	view, err := env.dayView.View(ctx, testutil.TestUserID, day(12, 0))
	require.NoError(t, err)

	require.Len(t, view.Plans, 2)
	assert.Equal(t, "a", view.Plans[0].Summary())
	assert.Equal(t, 0, view.Plans[0].OverlapIndex)
	assert.Equal(t, 2, view.Plans[0].OverlapCount)
	assert.Equal(t, 1, view.Plans[1].OverlapIndex)

	require.Len(t, view.Actuals, 1)
	assert.Equal(t, 1, view.Actuals[0].OverlapCount)
}

func TestDayView_SharedEntriesRenderWithPlans(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.entries.Create(ctx, testutil.NewTestEntry("joint", day(14, 0), day(15, 0),
		testutil.WithKind(domain.KindShared))))

	view, err := env.dayView.View(ctx, testutil.TestUserID, day(12, 0))
	require.NoError(t, err)
	require.Len(t, view.Plans, 1)
	assert.Empty(t, view.Actuals)
}

func TestDayView_AllDayEntryUsesDayStartPreference(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.taxonomy.SetDayStartHour(ctx, testutil.TestUserID, 8))
	require.NoError(t, env.entries.Create(ctx, testutil.NewTestEntry("offsite", day(0, 0), day(0, 0),
		testutil.WithAllDay("2026-03-14"))))

	view, err := env.dayView.View(ctx, testutil.TestUserID, day(12, 0))
	require.NoError(t, err)
	require.Len(t, view.Plans, 1)
	assert.Equal(t, 8, view.Plans[0].Start().Hour())
}
