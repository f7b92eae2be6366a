package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/coursedesk/coursedesk-backend/models"
	"github.com/coursedesk/coursedesk-backend/repositories"
	"github.com/coursedesk/coursedesk-backend/usecases/executor_factory"
)

const positionColumn = "position"

type OrderingUseCaseRepository interface {
	InsertRecordAppended(ctx context.Context, exec repositories.Executor,
		table string, fields map[string]any, positionColumn string) (models.Record, error)
	UpdatePosition(ctx context.Context, exec repositories.Executor,
		table string, assignment models.PositionAssignment) error
	GetRecordById(ctx context.Context, exec repositories.Executor,
		table string, columns []string, id int64) (models.Record, error)
	CreateAuditEntry(ctx context.Context, exec repositories.Executor,
		entry models.AuditEntry) error
}

// OrderingUseCase maintains the dense position column of orderable
// tables: append at max+1, or renumber a full batch atomically.
type OrderingUseCase struct {
	credentials        models.Credentials
	transactionFactory executor_factory.TransactionFactory
	tableDirectory     *TableDirectory
	protectedTables    map[string]struct{}
	repository         OrderingUseCaseRepository
}

// AppendRecord inserts with position = current max + 1, computed in
// the insert statement itself. The deferred unique constraint on
// position turns a concurrent-append race into a conflict at commit
// instead of a duplicate position.
func (usecase *OrderingUseCase) AppendRecord(ctx context.Context, table string,
	fields map[string]any,
) (models.Record, error) {
	if _, ok := usecase.protectedTables[table]; ok {
		return nil, errors.Wrapf(models.ErrTableNotWritable, "table %s", table)
	}
	filtered, descriptor, err := usecase.tableDirectory.Whitelist(ctx, table, fields)
	if err != nil {
		return nil, err
	}
	if !descriptor.HasColumn(positionColumn) {
		return nil, errors.Wrapf(models.BadParameterError, "table %s is not orderable", table)
	}
	// the position is computed, never client-supplied
	delete(filtered, positionColumn)
	if len(filtered) == 0 {
		return nil, errors.Wrapf(models.ErrNoValidFields, "table %s", table)
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Record, error) {
			created, err := usecase.repository.InsertRecordAppended(ctx, tx, table, filtered, positionColumn)
			if err != nil {
				return nil, adaptMutationError(err, table)
			}
			if err := auditMutation(ctx, tx, usecase.repository, usecase.credentials,
				models.AuditOperationInsert, table, created, nil, created); err != nil {
				return nil, err
			}
			return created, nil
		})
}

// Reorder applies the assignments in one transaction: after commit
// every listed id has exactly the given position. Density or
// uniqueness of the resulting set is the caller's responsibility; a
// partial assignment can leave gaps.
func (usecase *OrderingUseCase) Reorder(ctx context.Context, table string,
	assignments []models.PositionAssignment,
) error {
	if _, ok := usecase.protectedTables[table]; ok {
		return errors.Wrapf(models.ErrTableNotWritable, "table %s", table)
	}
	descriptor, err := usecase.tableDirectory.ColumnsOf(ctx, table)
	if err != nil {
		return err
	}
	if !descriptor.HasColumn(positionColumn) {
		return errors.Wrapf(models.BadParameterError, "table %s is not orderable", table)
	}
	if len(assignments) == 0 {
		return errors.Wrap(models.BadParameterError, "empty reorder assignment")
	}

	auditColumns := []string{"id", positionColumn}

	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		for _, assignment := range assignments {
			before, err := usecase.repository.GetRecordById(ctx, tx, table, auditColumns, assignment.Id)
			if err != nil {
				return err
			}
			if err := usecase.repository.UpdatePosition(ctx, tx, table, assignment); err != nil {
				return err
			}

			after := models.Record{"id": assignment.Id, positionColumn: assignment.Position}
			if err := auditMutation(ctx, tx, usecase.repository, usecase.credentials,
				models.AuditOperationUpdate, table, after, before, after); err != nil {
				return err
			}
		}
		return nil
	})
}
