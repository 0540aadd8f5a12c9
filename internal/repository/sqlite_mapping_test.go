package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/tempo/internal/repository"
	"github.com/alexanderramin/tempo/internal/testutil"
)

func TestMappingRepo_UpsertAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	labels := repository.NewSQLiteLabelRepo(database)
	repo := repository.NewSQLiteMappingRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProject("Compiler")
	l := testutil.NewTestLabel("deep")
	require.NoError(t, projects.Create(ctx, p))
	require.NoError(t, labels.Create(ctx, l))

	m := testutil.NewTestMapping("goland", p.ID)
	m.LabelIDs = []string{l.ID}
	require.NoError(t, repo.Upsert(ctx, m))

	got, err := repo.GetByName(ctx, "goland")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ProjectID)
	assert.Empty(t, got.CategoryID)
	assert.Equal(t, []string{l.ID}, got.LabelIDs)
}

func TestMappingRepo_UpsertReplacesClassification(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	repo := repository.NewSQLiteMappingRepo(database)
	ctx := context.Background()

	p1 := testutil.NewTestProject("Old")
	p2 := testutil.NewTestProject("New")
	require.NoError(t, projects.Create(ctx, p1))
	require.NoError(t, projects.Create(ctx, p2))

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestMapping("slack", p1.ID)))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestMapping("slack", p2.ID)))

	got, err := repo.GetByName(ctx, "slack")
	require.NoError(t, err)
	assert.Equal(t, p2.ID, got.ProjectID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMappingRepo_GetMissingReturnsNotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteMappingRepo(database)

	_, err := repo.GetByName(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMappingRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	repo := repository.NewSQLiteMappingRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProject("P")
	require.NoError(t, projects.Create(ctx, p))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestMapping("vim", p.ID)))

	require.NoError(t, repo.Delete(ctx, "vim"))
	_, err := repo.GetByName(ctx, "vim")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "vim"), repository.ErrNotFound)
}
