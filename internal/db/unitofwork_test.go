package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithinTx_CommitsOnSuccess(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	uow := NewSQLiteUnitOfWork(database)
	err = uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO projects (id, name, created_at, updated_at)
			VALUES ('p1', 'Tempo', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
		return err
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM projects`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	boom := errors.New("boom")
	uow := NewSQLiteUnitOfWork(database)
	err = uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO projects (id, name, created_at, updated_at)
			VALUES ('p1', 'Tempo', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM projects`).Scan(&count))
	assert.Zero(t, count, "failed callback must leave no partial writes")
}
