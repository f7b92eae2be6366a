package executor_factory

import (
	"github.com/pashagolub/pgxmock/v4"

	"github.com/coursedesk/coursedesk-backend/repositories"
)

type ExecutorFactoryStub struct {
	Mock pgxmock.PgxPoolIface
}

func NewExecutorFactoryStub() ExecutorFactoryStub {
	pool, _ := pgxmock.NewPool()

	return ExecutorFactoryStub{
		Mock: pool,
	}
}

type PgExecutorStub struct {
	pgxmock.PgxPoolIface
}

func (stub ExecutorFactoryStub) NewExecutor() repositories.Executor {
	return PgExecutorStub{
		stub.Mock,
	}
}
