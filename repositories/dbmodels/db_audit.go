package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/coursedesk/coursedesk-backend/models"
)

type DbAuditEntry struct {
	Id        uuid.UUID       `db:"id"`
	ActorId   int64           `db:"actor_id"`
	Operation string          `db:"operation"`
	TableName string          `db:"table_name"`
	RecordId  int64           `db:"record_id"`
	OldData   json.RawMessage `db:"old_data"`
	NewData   json.RawMessage `db:"new_data"`
	CreatedAt time.Time       `db:"created_at"`
}

const TABLE_AUDIT_LOG = "audit_log"

var SelectAuditEntryColumns = []string{
	"id",
	"actor_id",
	"operation",
	"table_name",
	"record_id",
	"old_data",
	"new_data",
	"created_at",
}

func AdaptAuditEntry(db DbAuditEntry) (models.AuditEntry, error) {
	return models.AuditEntry{
		Id:        db.Id,
		ActorId:   db.ActorId,
		Operation: models.AuditOperation(db.Operation),
		Table:     db.TableName,
		RecordId:  db.RecordId,
		OldData:   db.OldData,
		NewData:   db.NewData,
		CreatedAt: db.CreatedAt,
	}, nil
}
