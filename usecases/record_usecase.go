package usecases

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"

	"github.com/coursedesk/coursedesk-backend/models"
	"github.com/coursedesk/coursedesk-backend/repositories"
	"github.com/coursedesk/coursedesk-backend/usecases/executor_factory"
)

type RecordUseCaseRepository interface {
	InsertRecord(ctx context.Context, exec repositories.Executor,
		table string, fields map[string]any) (models.Record, error)
	UpdateRecordById(ctx context.Context, exec repositories.Executor,
		table string, id int64, fields map[string]any) (models.Record, error)
	DeleteRecordById(ctx context.Context, exec repositories.Executor,
		table string, id int64) (models.Record, error)
	GetRecordById(ctx context.Context, exec repositories.Executor,
		table string, columns []string, id int64) (models.Record, error)
	ListRecords(ctx context.Context, exec repositories.Executor,
		table string, columns []string) ([]models.Record, error)
	CreateAuditEntry(ctx context.Context, exec repositories.Executor,
		entry models.AuditEntry) error
}

// RecordUseCase is the generic mutation gateway: whitelist the payload
// against the live table descriptor, run the write and its audit entry
// in one transaction, roll everything back on any failure.
type RecordUseCase struct {
	credentials        models.Credentials
	transactionFactory executor_factory.TransactionFactory
	executorFactory    executor_factory.ExecutorFactory
	tableDirectory     *TableDirectory
	protectedTables    map[string]struct{}
	deletableTables    map[string]struct{}
	repository         RecordUseCaseRepository
}

// guardTable rejects tables that exist in the schema but must not be
// touched through the generic operations. Without it, a create on
// users would mint accounts with a caller-chosen role and password
// hash, and a create on audit_log would forge trail entries.
func (usecase *RecordUseCase) guardTable(table string) error {
	if _, ok := usecase.protectedTables[table]; ok {
		return errors.Wrapf(models.ErrTableNotWritable, "table %s", table)
	}
	return nil
}

func (usecase *RecordUseCase) CreateRecord(ctx context.Context, table string,
	fields map[string]any,
) (models.Record, error) {
	if err := usecase.guardTable(table); err != nil {
		return nil, err
	}
	filtered, _, err := usecase.tableDirectory.Whitelist(ctx, table, fields)
	if err != nil {
		return nil, err
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Record, error) {
			created, err := usecase.repository.InsertRecord(ctx, tx, table, filtered)
			if err != nil {
				return nil, adaptMutationError(err, table)
			}
			if err := usecase.auditMutation(ctx, tx, models.AuditOperationInsert,
				table, created, nil, created); err != nil {
				return nil, err
			}
			return created, nil
		})
}

func (usecase *RecordUseCase) UpdateRecord(ctx context.Context, table string, id int64,
	fields map[string]any,
) (models.Record, error) {
	if err := usecase.guardTable(table); err != nil {
		return nil, err
	}
	filtered, descriptor, err := usecase.tableDirectory.Whitelist(ctx, table, fields)
	if err != nil {
		return nil, err
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Record, error) {
			before, err := usecase.repository.GetRecordById(ctx, tx, table, descriptor.ColumnList(), id)
			if err != nil {
				return nil, err
			}
			updated, err := usecase.repository.UpdateRecordById(ctx, tx, table, id, filtered)
			if err != nil {
				return nil, adaptMutationError(err, table)
			}
			if err := usecase.auditMutation(ctx, tx, models.AuditOperationUpdate,
				table, updated, before, updated); err != nil {
				return nil, err
			}
			return updated, nil
		})
}

func (usecase *RecordUseCase) DeleteRecord(ctx context.Context, table string, id int64) (models.Record, error) {
	// Schema presence is not authorization to delete: destructive
	// operations go through an explicit allow-list so that the users
	// and audit_log tables are never reachable here.
	if _, ok := usecase.deletableTables[table]; !ok {
		return nil, errors.Wrapf(models.ErrTableNotDeletable, "table %s", table)
	}
	if _, err := usecase.tableDirectory.ColumnsOf(ctx, table); err != nil {
		return nil, err
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Record, error) {
			deleted, err := usecase.repository.DeleteRecordById(ctx, tx, table, id)
			if err != nil {
				return nil, adaptMutationError(err, table)
			}
			if err := usecase.auditMutation(ctx, tx, models.AuditOperationDelete,
				table, deleted, deleted, nil); err != nil {
				return nil, err
			}
			return deleted, nil
		})
}

// GetRecord serves generic reads. Protected tables are refused here
// too: users rows carry password hashes and have their own endpoints.
func (usecase *RecordUseCase) GetRecord(ctx context.Context, table string, id int64) (models.Record, error) {
	if err := usecase.guardTable(table); err != nil {
		return nil, err
	}
	descriptor, err := usecase.tableDirectory.ColumnsOf(ctx, table)
	if err != nil {
		return nil, err
	}
	return usecase.repository.GetRecordById(ctx,
		usecase.executorFactory.NewExecutor(), table, descriptor.ColumnList(), id)
}

func (usecase *RecordUseCase) ListRecords(ctx context.Context, table string) ([]models.Record, error) {
	if err := usecase.guardTable(table); err != nil {
		return nil, err
	}
	descriptor, err := usecase.tableDirectory.ColumnsOf(ctx, table)
	if err != nil {
		return nil, err
	}
	return usecase.repository.ListRecords(ctx,
		usecase.executorFactory.NewExecutor(), table, descriptor.ColumnList())
}

func (usecase *RecordUseCase) auditMutation(ctx context.Context, tx repositories.Transaction,
	operation models.AuditOperation, table string, record models.Record,
	oldData, newData models.Record,
) error {
	return auditMutation(ctx, tx, usecase.repository, usecase.credentials,
		operation, table, record, oldData, newData)
}

type auditRecorder interface {
	CreateAuditEntry(ctx context.Context, exec repositories.Executor, entry models.AuditEntry) error
}

// auditMutation appends the audit entry for one mutation, inside the
// mutation's own transaction. A failure here fails the mutation:
// auditability is a precondition, not best-effort logging.
func auditMutation(ctx context.Context, tx repositories.Transaction, recorder auditRecorder,
	creds models.Credentials, operation models.AuditOperation, table string,
	record models.Record, oldData, newData models.Record,
) error {
	recordId, _ := record.Id()

	entry := models.AuditEntry{
		ActorId:   creds.ActorId,
		Operation: operation,
		Table:     table,
		RecordId:  recordId,
	}
	if oldData != nil {
		serialized, err := json.Marshal(oldData)
		if err != nil {
			return errors.Wrap(err, "error serializing audit snapshot")
		}
		entry.OldData = serialized
	}
	if newData != nil {
		serialized, err := json.Marshal(newData)
		if err != nil {
			return errors.Wrap(err, "error serializing audit snapshot")
		}
		entry.NewData = serialized
	}

	return recorder.CreateAuditEntry(ctx, tx, entry)
}

// adaptMutationError turns database faults into the API error
// taxonomy. Unique violations become conflicts naming the colliding
// column where the constraint name allows deriving it.
func adaptMutationError(err error, table string) error {
	if err == nil {
		return nil
	}
	if repositories.IsUniqueViolationError(err) {
		if field := repositories.UniqueViolationField(err, table); field != "" {
			return models.ConflictOnFieldError{Field: field}
		}
		return errors.Wrapf(models.ConflictError, "unique constraint violation on %s", table)
	}
	return err
}
