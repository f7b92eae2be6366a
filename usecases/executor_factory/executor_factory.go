package executor_factory

import (
	"context"

	"github.com/coursedesk/coursedesk-backend/repositories"
)

type TransactionFactory interface {
	Transaction(ctx context.Context, fn func(tx repositories.Transaction) error) error
}

type ExecutorFactory interface {
	NewExecutor() repositories.Executor
}

// interfaces used by the factory
type executorFactoryRepository interface {
	GetExecutor() repositories.Executor
	Transaction(ctx context.Context, fn func(tx repositories.Transaction) error) error
}

type DbExecutorFactory struct {
	executorGetter executorFactoryRepository
}

func NewDbExecutorFactory(executorGetter executorFactoryRepository) DbExecutorFactory {
	return DbExecutorFactory{
		executorGetter: executorGetter,
	}
}

func (factory DbExecutorFactory) Transaction(
	ctx context.Context,
	fn func(tx repositories.Transaction) error,
) error {
	return factory.executorGetter.Transaction(ctx, fn)
}

func (factory DbExecutorFactory) NewExecutor() repositories.Executor {
	return factory.executorGetter.GetExecutor()
}
