package usecases

import (
	"github.com/coursedesk/coursedesk-backend/models"
)

type UsecasesWithCreds struct {
	Usecases
	Credentials models.Credentials
}

func (usecases *UsecasesWithCreds) NewRecordUseCase() *RecordUseCase {
	return &RecordUseCase{
		credentials:        usecases.Credentials,
		transactionFactory: usecases.NewExecutorFactory(),
		executorFactory:    usecases.NewExecutorFactory(),
		tableDirectory:     usecases.TableDirectory(),
		protectedTables:    ProtectedTables,
		deletableTables:    DeletableTables,
		repository:         usecases.Repositories.CourseDbRepository,
	}
}

func (usecases *UsecasesWithCreds) NewClassUseCase() *ClassUseCase {
	return &ClassUseCase{
		credentials:        usecases.Credentials,
		transactionFactory: usecases.NewExecutorFactory(),
		executorFactory:    usecases.NewExecutorFactory(),
		tableDirectory:     usecases.TableDirectory(),
		repository:         usecases.Repositories.CourseDbRepository,
	}
}

func (usecases *UsecasesWithCreds) NewOrderingUseCase() *OrderingUseCase {
	return &OrderingUseCase{
		credentials:        usecases.Credentials,
		transactionFactory: usecases.NewExecutorFactory(),
		tableDirectory:     usecases.TableDirectory(),
		protectedTables:    ProtectedTables,
		repository:         usecases.Repositories.CourseDbRepository,
	}
}

func (usecases *UsecasesWithCreds) NewAuditUseCase() *AuditUseCase {
	return &AuditUseCase{
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.CourseDbRepository,
	}
}
