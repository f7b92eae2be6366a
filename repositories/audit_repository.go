package repositories

import (
	"context"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/coursedesk/coursedesk-backend/models"
	"github.com/coursedesk/coursedesk-backend/repositories/dbmodels"
)

// CreateAuditEntry appends one row to the audit log. It is always
// called with the transaction of the mutation it traces: if this
// insert fails the mutation rolls back with it.
func (repo CourseDbRepository) CreateAuditEntry(ctx context.Context, exec Executor,
	entry models.AuditEntry,
) error {
	var oldData, newData any
	if len(entry.OldData) > 0 {
		oldData = json.RawMessage(entry.OldData)
	}
	if len(entry.NewData) > 0 {
		newData = json.RawMessage(entry.NewData)
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_AUDIT_LOG).
			Columns(
				"id",
				"actor_id",
				"operation",
				"table_name",
				"record_id",
				"old_data",
				"new_data",
			).
			Values(
				uuid.New(),
				entry.ActorId,
				string(entry.Operation),
				entry.Table,
				entry.RecordId,
				oldData,
				newData,
			),
	)
}

func (repo CourseDbRepository) ListAuditEntries(ctx context.Context, exec Executor,
	filters models.AuditEntryFilters,
) ([]models.AuditEntry, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectAuditEntryColumns...).
		From(dbmodels.TABLE_AUDIT_LOG).
		OrderBy("created_at DESC, id DESC")

	if filters.Table != "" {
		query = query.Where(squirrel.Eq{"table_name": filters.Table})
	}
	if filters.RecordId != 0 {
		query = query.Where(squirrel.Eq{"record_id": filters.RecordId})
	}
	if filters.ActorId != 0 {
		query = query.Where(squirrel.Eq{"actor_id": filters.ActorId})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptAuditEntry)
}
