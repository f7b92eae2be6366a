package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type transactionOrPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Executor runs statements either on the shared pool or inside an open
// transaction. Repositories only ever see this interface, so the same
// method serves both a standalone read and a step of a multi-statement
// write.
type Executor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Transaction is an Executor bound to one open database transaction.
type Transaction interface {
	Executor
	RawTx() pgx.Tx
}

type PgExecutor struct {
	exec transactionOrPool
}

func (e PgExecutor) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return e.exec.Exec(ctx, sql, args...)
}

func (e PgExecutor) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return e.exec.Query(ctx, sql, args...)
}

func (e PgExecutor) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return e.exec.QueryRow(ctx, sql, args...)
}

type PgTx struct {
	tx pgx.Tx
}

func (t PgTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return t.tx.Exec(ctx, sql, args...)
}

func (t PgTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return t.tx.Query(ctx, sql, args...)
}

func (t PgTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return t.tx.QueryRow(ctx, sql, args...)
}

func (t PgTx) RawTx() pgx.Tx {
	return t.tx
}
