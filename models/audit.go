package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type AuditOperation string

const (
	AuditOperationInsert AuditOperation = "INSERT"
	AuditOperationUpdate AuditOperation = "UPDATE"
	AuditOperationDelete AuditOperation = "DELETE"
)

// AuditEntry is the append-only trace of one committed mutation. It is
// written in the same transaction as the mutation itself: a rolled-back
// write leaves no entry, a committed write leaves exactly one.
type AuditEntry struct {
	Id        uuid.UUID
	ActorId   int64
	Operation AuditOperation
	Table     string
	RecordId  int64

	// Full before/after row images, not diffs. OldData is empty for
	// inserts, NewData is empty for deletes.
	OldData json.RawMessage
	NewData json.RawMessage

	CreatedAt time.Time
}

type AuditEntryFilters struct {
	Table    string
	RecordId int64
	ActorId  int64
}
