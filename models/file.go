package models

import "time"

// ProjectFile is a BLOB-backed attachment. TaskNo optionally ties the
// file to one task row in some category table; there is no enforced
// referential integrity, matching the project_no convention.
type ProjectFile struct {
	ID          string    `gorm:"primaryKey;column:id" json:"id"`
	ProjectNo   string    `gorm:"column:project_no;not null;index" json:"project_no"`
	TaskNo      *uint     `gorm:"column:task_no" json:"task_no,omitempty"`
	FileName    string    `gorm:"column:file_name;not null" json:"file_name"`
	ContentType string    `gorm:"column:content_type" json:"content_type"`
	Size        int64     `gorm:"column:size;not null" json:"size"`
	Data        []byte    `gorm:"column:data;type:bytea" json:"-"`
	CreatedAt   time.Time `gorm:"column:created_at;default:current_timestamp" json:"created_at"`
}

func (ProjectFile) TableName() string {
	return "project_files"
}
