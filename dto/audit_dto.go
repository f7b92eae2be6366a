package dto

import (
	"encoding/json"
	"time"

	"github.com/coursedesk/coursedesk-backend/models"
)

type AuditEntry struct {
	Id        string          `json:"id"`
	ActorId   int64           `json:"actor_id"`
	Operation string          `json:"operation"`
	Table     string          `json:"table_name"`
	RecordId  int64           `json:"record_id"`
	OldData   json.RawMessage `json:"old_data,omitempty"`
	NewData   json.RawMessage `json:"new_data,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func AdaptAuditEntryDto(entry models.AuditEntry) AuditEntry {
	return AuditEntry{
		Id:        entry.Id.String(),
		ActorId:   entry.ActorId,
		Operation: string(entry.Operation),
		Table:     entry.Table,
		RecordId:  entry.RecordId,
		OldData:   entry.OldData,
		NewData:   entry.NewData,
		CreatedAt: entry.CreatedAt,
	}
}

type AuditEntryFilters struct {
	Table    string `form:"table_name"`
	RecordId int64  `form:"record_id"`
	ActorId  int64  `form:"actor_id"`
}
