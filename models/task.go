package models

import "time"

// Task is one shop-floor work item. Every category table shares this
// shape; the struct carries no table name and is always queried through
// db.Table(cat.TaskTable()).
type Task struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectNo     string     `gorm:"column:project_no;not null;index" json:"project_no"`
	Title         string     `gorm:"column:title;not null" json:"title"`
	Description   string     `gorm:"column:description;type:text" json:"description"`
	Priority      string     `gorm:"column:priority" json:"priority"`
	Status        string     `gorm:"column:status;not null;default:pending" json:"status"`
	DueDate       *time.Time `gorm:"column:due_date" json:"due_date,omitempty"`
	ApproveStatus string     `gorm:"column:approve_status" json:"approve_status"`
	CreatedAt     time.Time  `gorm:"column:created_at;default:current_timestamp" json:"created_at"`
}
