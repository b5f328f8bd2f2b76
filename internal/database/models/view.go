package models

import "gorm.io/datatypes"

// DefaultSortField is the implicit creation timestamp column views sort on
const DefaultSortField = "created_at"

// ViewConfig holds presentation settings of a view
type ViewConfig struct {
	PageSize    int    `json:"pageSize,omitempty"`
	KanbanField string `json:"kanbanField,omitempty"`
}

// SortSpec is one entry of a view's ordered sort list
type SortSpec struct {
	Field     string        `json:"field"`
	Direction SortDirection `json:"direction"`
}

// View is a saved table or kanban presentation of a module's records
type View struct {
	BaseModel
	ModuleID  string                               `json:"moduleId" gorm:"size:36;not null;index"`
	Name      string                               `json:"name" gorm:"size:200;not null"`
	Type      ViewType                             `json:"type" gorm:"size:20;not null"`
	Config    datatypes.JSONType[ViewConfig]       `json:"config"`
	Filters   datatypes.JSONType[[]map[string]any] `json:"filters"`
	Sort      datatypes.JSONType[[]SortSpec]       `json:"sort"`
	Columns   datatypes.JSONType[[]string]         `json:"columns"`
	Grouping  string                               `json:"grouping" gorm:"size:50"`
	IsDefault bool                                 `json:"isDefault" gorm:"not null"`
	IsShared  bool                                 `json:"isShared" gorm:"not null"`
	CreatedBy string                               `json:"createdBy" gorm:"size:100"`
}

// TableName returns the table name for View
func (View) TableName() string {
	return "crm_views"
}
