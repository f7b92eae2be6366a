package usecases

import (
	"context"

	"github.com/coursedesk/coursedesk-backend/models"
	"github.com/coursedesk/coursedesk-backend/repositories"
	"github.com/coursedesk/coursedesk-backend/usecases/executor_factory"
)

type AuditUseCaseRepository interface {
	ListAuditEntries(ctx context.Context, exec repositories.Executor,
		filters models.AuditEntryFilters) ([]models.AuditEntry, error)
}

type AuditUseCase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      AuditUseCaseRepository
}

func (usecase *AuditUseCase) ListAuditEntries(ctx context.Context,
	filters models.AuditEntryFilters,
) ([]models.AuditEntry, error) {
	return usecase.repository.ListAuditEntries(ctx, usecase.executorFactory.NewExecutor(), filters)
}
