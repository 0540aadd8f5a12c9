package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/tempo/internal/testutil"
)

func TestMappingSuggest_VotesByOverlapWeight(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	compiler, err := env.taxonomy.CreateProject(ctx, "Compiler")
	require.NoError(t, err)
	ops, err := env.taxonomy.CreateProject(ctx, "Ops")
	require.NoError(t, err)

	// Two classified plans; the unmapped editor spent more time inside
	// the compiler block.
	require.NoError(t, env.entries.Create(ctx, testutil.NewTestEntry("compile", day(9, 0), day(11, 0),
		testutil.WithProject(compiler.ID))))
	require.NoError(t, env.entries.Create(ctx, testutil.NewTestEntry("deploy", day(11, 0), day(12, 0),
		testutil.WithProject(ops.ID))))

	require.NoError(t, env.segmentRepo.Upsert(ctx, testutil.NewTestSegment("editor", day(9, 30), day(11, 30))))

	suggestions, err := env.mappings.Suggest(ctx, testutil.TestUserID, day(0, 0), day(23, 59))
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "editor", suggestions[0].AppBasename)
	assert.Equal(t, compiler.ID, suggestions[0].ProjectID)
}

func TestMappingSuggest_SkipsMappedApps(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.taxonomy.CreateProject(ctx, "P")
	require.NoError(t, err)
	require.NoError(t, env.mappings.Upsert(ctx, testutil.NewTestMapping("editor", p.ID)))

	require.NoError(t, env.entries.Create(ctx, testutil.NewTestEntry("work", day(9, 0), day(10, 0),
		testutil.WithProject(p.ID))))
	require.NoError(t, env.segmentRepo.Upsert(ctx, testutil.NewTestSegment("editor", day(9, 0), day(10, 0))))

	suggestions, err := env.mappings.Suggest(ctx, testutil.TestUserID, day(0, 0), day(23, 59))
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestMappingSuggest_IgnoresUnclassifiedPlans(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.entries.Create(ctx, testutil.NewTestEntry("untagged", day(9, 0), day(10, 0))))
	require.NoError(t, env.segmentRepo.Upsert(ctx, testutil.NewTestSegment("editor", day(9, 0), day(10, 0))))

	suggestions, err := env.mappings.Suggest(ctx, testutil.TestUserID, day(0, 0), day(23, 59))
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestMappingUpsert_RoundTrips(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.taxonomy.CreateProject(ctx, "P")
	require.NoError(t, err)
	require.NoError(t, env.mappings.Upsert(ctx, testutil.NewTestMapping("term", p.ID)))

	got, err := env.mappings.GetByName(ctx, "term")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ProjectID)

	require.NoError(t, env.mappings.Delete(ctx, "term"))
	_, err = env.mappings.GetByName(ctx, "term")
	assert.Error(t, err)
}
