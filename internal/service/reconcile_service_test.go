package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/reconcile"
	"github.com/alexanderramin/tempo/internal/testutil"
)

func TestReconcile_EndToEndPersistsProvisionals(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.taxonomy.CreateProject(ctx, "Compiler")
	require.NoError(t, err)
	require.NoError(t, env.mappings.Upsert(ctx, testutil.NewTestMapping("goland", p.ID)))

	require.NoError(t, env.entries.Create(ctx, testutil.NewTestEntry("Design review", day(10, 0), day(11, 0),
		testutil.WithProject(p.ID))))

	seg := testutil.NewTestSegment("goland", day(9, 30), day(10, 45))
	require.NoError(t, env.segmentRepo.Upsert(ctx, seg))

	result, err := env.recon.Reconcile(ctx, testutil.TestUserID, day(0, 0), false)
	require.NoError(t, err)
	require.Len(t, result.Created, 2)

	// 09:00 has no overlapping plan, so it takes the fallback title;
	// 10:00 inherits its title from the overlapping plan.
	assert.Equal(t, reconcile.DefaultSummary, result.Created[0].Summary)
	assert.Equal(t, "Design review", result.Created[1].Summary)
	for _, e := range result.Created {
		assert.Equal(t, domain.KindActual, e.Kind)
		assert.True(t, e.Provisional)
		assert.Equal(t, p.ID, e.ProjectID)
	}

	stored, err := env.entries.ListProvisional(ctx, testutil.TestUserID)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestReconcile_DryRunStoresNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seg := testutil.NewTestSegment("vim", day(9, 0), day(10, 0))
	require.NoError(t, env.segmentRepo.Upsert(ctx, seg))

	result, err := env.recon.Reconcile(ctx, testutil.TestUserID, day(0, 0), true)
	require.NoError(t, err)
	require.Len(t, result.Created, 1)
	assert.True(t, result.DryRun)

	stored, err := env.entries.ListProvisional(ctx, testutil.TestUserID)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestReconcile_SecondRunIsQuiet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seg := testutil.NewTestSegment("vim", day(9, 0), day(10, 0))
	require.NoError(t, env.segmentRepo.Upsert(ctx, seg))

	first, err := env.recon.Reconcile(ctx, testutil.TestUserID, day(0, 0), false)
	require.NoError(t, err)
	require.Len(t, first.Created, 1)

	// The stored provisional now occupies its hour, so nothing new
	// appears on a re-run.
	second, err := env.recon.Reconcile(ctx, testutil.TestUserID, day(0, 0), false)
	require.NoError(t, err)
	assert.Empty(t, second.Created)
}

func TestReconcile_NoActivityNoEntries(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.recon.Reconcile(context.Background(), testutil.TestUserID, day(0, 0), false)
	require.NoError(t, err)
	assert.Empty(t, result.Created)
}

func TestReconcile_UnmappedAppStillSignalsPresence(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seg := testutil.NewTestSegment("mystery-tool", day(15, 10), day(15, 40))
	require.NoError(t, env.segmentRepo.Upsert(ctx, seg))

	result, err := env.recon.Reconcile(ctx, testutil.TestUserID, day(0, 0), false)
	require.NoError(t, err)
	require.Len(t, result.Created, 1)
	assert.True(t, result.Created[0].Start.DateTime.Equal(day(15, 0)))
	assert.Empty(t, result.Created[0].ProjectID)
}

func TestReconcile_ManualActualBlocksItsHour(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.entries.Create(ctx, testutil.NewTestEntry("logged by hand", day(9, 15), day(9, 45),
		testutil.WithKind(domain.KindActual))))
	seg := testutil.NewTestSegment("vim", day(9, 0), day(10, 30))
	require.NoError(t, env.segmentRepo.Upsert(ctx, seg))

	result, err := env.recon.Reconcile(ctx, testutil.TestUserID, day(0, 0), false)
	require.NoError(t, err)
	require.Len(t, result.Created, 1)
	assert.True(t, result.Created[0].Start.DateTime.Equal(day(10, 0)))
}

func TestReconcile_RespectsDayStartForAllDayPlans(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.taxonomy.CreateProject(ctx, "Offsite")
	require.NoError(t, err)
	require.NoError(t, env.taxonomy.SetDayStartHour(ctx, testutil.TestUserID, 9))

	allDay := testutil.NewTestEntry("Conference", time.Time{}, time.Time{},
		testutil.WithAllDay("2026-03-14"), testutil.WithProject(p.ID))
	require.NoError(t, env.entries.Create(ctx, allDay))

	seg := testutil.NewTestSegment("notes", day(9, 0), day(9, 30))
	require.NoError(t, env.segmentRepo.Upsert(ctx, seg))

	result, err := env.recon.Reconcile(ctx, testutil.TestUserID, day(0, 0), false)
	require.NoError(t, err)
	require.Len(t, result.Created, 1)
	// The all-day plan resolves to a zero-length instant at 09:00, which
	// does not overlap the slot, so only the fallback title applies.
	assert.Equal(t, reconcile.DefaultSummary, result.Created[0].Summary)
}
