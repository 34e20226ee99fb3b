package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/alexanderramin/housewright/internal/db"
)

// FaultyUoW is a real SQLite unit of work whose transaction fails the
// FailOn-th write (1-based) with Err. Reads are not counted. Use it to
// check that a half-written plan is rolled back.
type FaultyUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error

	writes atomic.Int32
}

// Writes reports how many ExecContext calls the last transaction made,
// including the failing one.
func (u *FaultyUoW) Writes() int { return int(u.writes.Load()) }

func (u *FaultyUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	u.writes.Store(0)
	inner := db.NewSQLiteUnitOfWork(u.DB)
	return inner.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &faultyTx{DBTX: tx, uow: u})
	})
}

type faultyTx struct {
	db.DBTX
	uow *FaultyUoW
}

func (f *faultyTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.uow.writes.Add(1) == f.uow.FailOn {
		return nil, f.uow.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
