package database

import (
	"time"
)

// Audited table literal and action kinds recorded in the catalog change log.
// "Game_item" is the historical table name consumers of the log expect.
const (
	AuditTableGameItem = "Game_item"

	AuditActionInsert = "INSERT"
	AuditActionUpdate = "UPDATE"
	AuditActionDelete = "DELETE"
)

// AuditLogEntry records one catalog mutation. The log is append-only: rows
// are written inside the mutating transaction and never updated or deleted.
type AuditLogEntry struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	TableName string    `gorm:"size:50;not null" json:"table_name"`
	Action    string    `gorm:"size:10;not null" json:"action"`
	RecordID  uint      `gorm:"not null;index" json:"record_id"`
	Actor     string    `gorm:"size:100;not null" json:"actor"`
	CreatedAt time.Time `json:"created_at"`
}
