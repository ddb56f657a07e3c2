package models

import "fmt"

// Category identifies one task partition. Each category has its own task
// table and its own pair of counter columns on the projects table.
type Category string

const (
	CategoryPanel          Category = "panel"
	CategoryDoor           Category = "door"
	CategoryCutting        Category = "cutting"
	CategoryAccessories    Category = "accessories"
	CategoryStripCurtain   Category = "strip_curtain"
	CategorySystem         Category = "system"
	CategoryTransportation Category = "transportation"
	CategoryQuotation      Category = "quotation"
)

// Categories lists every known category in a stable order.
var Categories = []Category{
	CategoryPanel,
	CategoryDoor,
	CategoryCutting,
	CategoryAccessories,
	CategoryStripCurtain,
	CategorySystem,
	CategoryTransportation,
	CategoryQuotation,
}

type CounterKind string

const (
	CounterTotal     CounterKind = "total"
	CounterCompleted CounterKind = "completed"
)

// categoryInfo is the fixed identifier lookup for a category. SQL table and
// column names are only ever taken from this table, never assembled from
// request input.
type categoryInfo struct {
	taskTable       string
	slug            string
	totalColumn     string
	completedColumn string
}

var categoryLookup = map[Category]categoryInfo{
	CategoryPanel:          {"panel_tasks", "panel", "total_panel", "completed_panel"},
	CategoryDoor:           {"door_tasks", "door", "total_door", "completed_door"},
	CategoryCutting:        {"cutting_tasks", "cutting", "total_cutting", "completed_cutting"},
	CategoryAccessories:    {"accessories_tasks", "accessories", "total_accessories", "completed_accessories"},
	CategoryStripCurtain:   {"strip_curtain_tasks", "strip-curtain", "total_strip_curtain", "completed_strip_curtain"},
	CategorySystem:         {"system_tasks", "system", "total_system", "completed_system"},
	CategoryTransportation: {"transportation_tasks", "transportation", "total_transportation", "completed_transportation"},
	CategoryQuotation:      {"quotation_tasks", "quotation", "total_quotation", "completed_quotation"},
}

func (c Category) Valid() bool {
	_, ok := categoryLookup[c]
	return ok
}

// TaskTable returns the name of the category's task table.
func (c Category) TaskTable() string {
	return categoryLookup[c].taskTable
}

// Slug returns the category's URL path form, e.g. "strip-curtain".
func (c Category) Slug() string {
	return categoryLookup[c].slug
}

// CounterColumn returns the projects-table column holding the category's
// total or completed count.
func (c Category) CounterColumn(kind CounterKind) string {
	if kind == CounterCompleted {
		return categoryLookup[c].completedColumn
	}
	return categoryLookup[c].totalColumn
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown task category: %q", s)
	}
	return c, nil
}
