package models

import "time"

// Project statuses.
const (
	ProjectStatusDraft    = "draft"
	ProjectStatusActive   = "active"
	ProjectStatusApproved = "approved"
	ProjectStatusDone     = "done"
)

// Project is one fabrication order. The total_*/completed_* pairs are
// denormalized task counts: the task services adjust them as task rows
// change, and the reconcile routine repairs any drift against the task
// tables. They are not guarded by a cross-table transaction and may
// lag the task tables briefly.
type Project struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectNo string     `gorm:"column:project_no;unique;not null" json:"project_no"`
	Customer  string     `gorm:"column:customer" json:"customer"`
	Status    string     `gorm:"column:status;not null;default:draft" json:"status"`
	Remarks   string     `gorm:"column:remarks;type:text" json:"remarks"`
	OrderDate *time.Time `gorm:"column:order_date" json:"order_date,omitempty"`
	DueDate   *time.Time `gorm:"column:due_date" json:"due_date,omitempty"`
	CreatedAt time.Time  `gorm:"column:created_at;default:current_timestamp" json:"created_at"`

	TotalPanel              int `gorm:"column:total_panel;not null;default:0" json:"total_panel"`
	CompletedPanel          int `gorm:"column:completed_panel;not null;default:0" json:"completed_panel"`
	TotalDoor               int `gorm:"column:total_door;not null;default:0" json:"total_door"`
	CompletedDoor           int `gorm:"column:completed_door;not null;default:0" json:"completed_door"`
	TotalCutting            int `gorm:"column:total_cutting;not null;default:0" json:"total_cutting"`
	CompletedCutting        int `gorm:"column:completed_cutting;not null;default:0" json:"completed_cutting"`
	TotalAccessories        int `gorm:"column:total_accessories;not null;default:0" json:"total_accessories"`
	CompletedAccessories    int `gorm:"column:completed_accessories;not null;default:0" json:"completed_accessories"`
	TotalStripCurtain       int `gorm:"column:total_strip_curtain;not null;default:0" json:"total_strip_curtain"`
	CompletedStripCurtain   int `gorm:"column:completed_strip_curtain;not null;default:0" json:"completed_strip_curtain"`
	TotalSystem             int `gorm:"column:total_system;not null;default:0" json:"total_system"`
	CompletedSystem         int `gorm:"column:completed_system;not null;default:0" json:"completed_system"`
	TotalTransportation     int `gorm:"column:total_transportation;not null;default:0" json:"total_transportation"`
	CompletedTransportation int `gorm:"column:completed_transportation;not null;default:0" json:"completed_transportation"`
	TotalQuotation          int `gorm:"column:total_quotation;not null;default:0" json:"total_quotation"`
	CompletedQuotation      int `gorm:"column:completed_quotation;not null;default:0" json:"completed_quotation"`
}

func (Project) TableName() string {
	return "projects"
}

// Counters returns the stored counter pair for one category.
func (p *Project) Counters(cat Category) (total, completed int) {
	switch cat {
	case CategoryPanel:
		return p.TotalPanel, p.CompletedPanel
	case CategoryDoor:
		return p.TotalDoor, p.CompletedDoor
	case CategoryCutting:
		return p.TotalCutting, p.CompletedCutting
	case CategoryAccessories:
		return p.TotalAccessories, p.CompletedAccessories
	case CategoryStripCurtain:
		return p.TotalStripCurtain, p.CompletedStripCurtain
	case CategorySystem:
		return p.TotalSystem, p.CompletedSystem
	case CategoryTransportation:
		return p.TotalTransportation, p.CompletedTransportation
	case CategoryQuotation:
		return p.TotalQuotation, p.CompletedQuotation
	}
	return 0, 0
}
