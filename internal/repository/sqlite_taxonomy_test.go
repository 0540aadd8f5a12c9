package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/repository"
	"github.com/alexanderramin/tempo/internal/testutil"
)

func TestProjectRepo_ArchiveHidesFromDefaultList(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProjectRepo(database)
	ctx := context.Background()

	active := testutil.NewTestProject("Active")
	old := testutil.NewTestProject("Old")
	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Archive(ctx, old.ID))

	visible, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, active.ID, visible[0].ID)

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Archiving an already archived project finds no live row.
	assert.ErrorIs(t, repo.Archive(ctx, old.ID), repository.ErrNotFound)
}

func TestProjectRepo_DeleteDetachesEntries(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	entries := repository.NewSQLiteEntryRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProject("Doomed")
	require.NoError(t, projects.Create(ctx, p))

	e := testutil.NewTestEntry("work", day(9, 0), day(10, 0), testutil.WithProject(p.ID))
	require.NoError(t, entries.Create(ctx, e))

	require.NoError(t, projects.Delete(ctx, p.ID))

	got, err := entries.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Empty(t, got.ProjectID)
}

func TestCategoryRepo_CRUD(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteCategoryRepo(database)
	ctx := context.Background()

	c := testutil.NewTestCategory("Meetings")
	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Meetings", got.Name)

	require.NoError(t, repo.Delete(ctx, c.ID))
	_, err = repo.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestLabelRepo_ListOrdersByName(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteLabelRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestLabel("zulu")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestLabel("alpha")))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "alpha", got[0].Name)
	assert.Equal(t, "zulu", got[1].Name)
}

func TestPreferenceRepo_SetOverwrites(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePreferenceRepo(database)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, repo.Set(ctx, &domain.Preference{
		UserID: testutil.TestUserID, Key: domain.PrefDayStartHour, Value: "8", UpdatedAt: now,
	}))
	require.NoError(t, repo.Set(ctx, &domain.Preference{
		UserID: testutil.TestUserID, Key: domain.PrefDayStartHour, Value: "9", UpdatedAt: now,
	}))

	got, err := repo.Get(ctx, testutil.TestUserID, domain.PrefDayStartHour)
	require.NoError(t, err)
	assert.Equal(t, "9", got)
}

func TestPreferenceRepo_GetMissingReturnsNotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePreferenceRepo(database)

	_, err := repo.Get(context.Background(), testutil.TestUserID, "unknown")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
