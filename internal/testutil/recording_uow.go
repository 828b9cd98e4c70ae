package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/Tanudin/Happy-Child/internal/db"
)

// RecordingUoW is a test UoW that records every ExecContext statement
// issued inside its transactions, in order. Tests use it to assert the
// observable call shape of multi-write operations (e.g. that a bulk
// confirm is N range deletes followed by one batch insert).
type RecordingUoW struct {
	DB *sql.DB

	mu    sync.Mutex
	Execs []string
}

func (u *RecordingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &recordingTx{DBTX: tx, uow: u}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type recordingTx struct {
	db.DBTX
	uow *RecordingUoW
}

func (r *recordingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	r.uow.mu.Lock()
	r.uow.Execs = append(r.uow.Execs, query)
	r.uow.mu.Unlock()
	return r.DBTX.ExecContext(ctx, query, args...)
}
