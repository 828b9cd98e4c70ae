package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/Tanudin/Happy-Child/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	_, err = database.Exec(`INSERT INTO children (id, user_id, name, created_at)
		VALUES ('child-1', 'user-1', 'Alma', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)

	return db.NewSQLiteUnitOfWork(database)
}

func countEvents(uow *db.SQLiteUnitOfWork) int {
	var count int
	_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		row := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM calendar_events`)
		return row.Scan(&count)
	})
	return count
}

func insertEvent(ctx context.Context, tx db.DBTX, id string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO calendar_events
		(id, child_id, user_id, start_time, end_time, created_at)
		VALUES (?, 'child-1', 'user-1', '2024-03-10T09:00:00Z', '2024-03-10T17:00:00Z', '2024-01-01T00:00:00Z')`, id)
	return err
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := newTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertEvent(ctx, tx, "e1")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countEvents(uow))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := newTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertEvent(ctx, tx, "e2"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")
	assert.Zero(t, countEvents(uow), "insert should roll back with the failing batch")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := newTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertEvent(ctx, tx, "e3")
			panic("boom")
		})
	})
	assert.Zero(t, countEvents(uow), "insert should roll back after panic")
}
