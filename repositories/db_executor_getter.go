package repositories

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coursedesk/coursedesk-backend/models"
)

type ExecutorGetter struct {
	connectionPool *pgxpool.Pool
}

func NewExecutorGetter(pool *pgxpool.Pool) ExecutorGetter {
	return ExecutorGetter{
		connectionPool: pool,
	}
}

// Transaction checks out one connection from the pool, opens a
// transaction on it and runs fn. Any error returned by fn rolls the
// whole transaction back; pgx.BeginFunc guarantees the connection is
// released on both paths.
func (g ExecutorGetter) Transaction(
	ctx context.Context,
	fn func(tx Transaction) error,
) error {
	err := pgx.BeginFunc(ctx, g.connectionPool, func(tx pgx.Tx) error {
		return fn(PgTx{tx: tx})
	})

	// The callback can return ErrIgnoreRollBackError to roll back
	// without surfacing an error to the caller.
	if errors.Is(err, models.ErrIgnoreRollBackError) {
		return nil
	}
	return errors.Wrap(err, "error executing transaction")
}

func (g ExecutorGetter) GetExecutor() Executor {
	return PgExecutor{
		exec: g.connectionPool,
	}
}
