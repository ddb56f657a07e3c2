package models

import (
	"time"

	"gorm.io/datatypes"
)

// Ledger entry statuses. Only submitted entries can be approved or
// rejected.
const (
	LedgerStatusDraft     = "draft"
	LedgerStatusSubmitted = "submitted"
	LedgerStatusApproved  = "approved"
	LedgerStatusRejected  = "rejected"
)

// LedgerEntry is one line of a project's job ledger, carrying the
// approval state and the free-form payload the office attaches to it.
type LedgerEntry struct {
	ID        string         `gorm:"primaryKey;column:id" json:"id"`
	ProjectNo string         `gorm:"column:project_no;not null;index" json:"project_no"`
	Title     string         `gorm:"column:title;not null" json:"title"`
	Amount    float64        `gorm:"column:amount;not null;default:0" json:"amount"`
	Status    string         `gorm:"column:status;not null;default:draft" json:"status"`
	SignedBy  string         `gorm:"column:signed_by" json:"signed_by"`
	DecidedAt *time.Time     `gorm:"column:decided_at" json:"decided_at,omitempty"`
	Metadata  datatypes.JSON `gorm:"column:metadata;type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time      `gorm:"column:created_at;default:current_timestamp" json:"created_at"`
}

func (LedgerEntry) TableName() string {
	return "job_ledger_entries"
}
