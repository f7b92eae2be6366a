package usecases

import (
	"time"

	"github.com/coursedesk/coursedesk-backend/repositories"
	"github.com/coursedesk/coursedesk-backend/usecases/executor_factory"
)

// ProtectedTables are never reachable through the generic record
// operations, in either direction. Users carry credential columns,
// audit_log rows must only ever be written by the mutation pipeline
// itself, and link rows are managed through their own operations.
var ProtectedTables = map[string]struct{}{
	"users":             {},
	"audit_log":         {},
	"class_instructors": {},
}

// DeletableTables is the allow-list consulted before any generic
// delete. Schema presence alone is not authorization: users and
// audit_log must never be reachable through the generic endpoint,
// and link rows are managed through their own operations.
var DeletableTables = map[string]struct{}{
	"instructors":     {},
	"classes":         {},
	"schedule":        {},
	"types":           {},
	"rooms":           {},
	"locations":       {},
	"reviews":         {},
	"class_proposals": {},
}

type Usecases struct {
	Repositories   repositories.Repositories
	TokenLifetime  time.Duration
	tableDirectory *TableDirectory
}

func NewUsecases(repos repositories.Repositories, tokenLifetime time.Duration) Usecases {
	executorFactory := executor_factory.NewDbExecutorFactory(repos.ExecutorGetter)
	return Usecases{
		Repositories:   repos,
		TokenLifetime:  tokenLifetime,
		tableDirectory: NewTableDirectory(executorFactory, repos.CourseDbRepository),
	}
}

func (usecases Usecases) NewExecutorFactory() executor_factory.DbExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases Usecases) TableDirectory() *TableDirectory {
	return usecases.tableDirectory
}

func (usecases Usecases) NewAuthUseCase() *AuthUseCase {
	return &AuthUseCase{
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.CourseDbRepository,
		sessionTokens:   usecases.Repositories.SessionTokens,
		tokenLifetime:   usecases.TokenLifetime,
	}
}
