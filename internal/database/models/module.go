package models

import "gorm.io/datatypes"

// PillarCustom is the pillar id of modules created outside provisioning
const PillarCustom = "custom"

// ModuleConfig holds the capability flags of a module
type ModuleConfig struct {
	AllowCreate bool `json:"allowCreate"`
	AllowEdit   bool `json:"allowEdit"`
	AllowDelete bool `json:"allowDelete"`
	AllowExport bool `json:"allowExport"`
}

// FullAccess returns a config with every capability enabled
func FullAccess() ModuleConfig {
	return ModuleConfig{AllowCreate: true, AllowEdit: true, AllowDelete: true, AllowExport: true}
}

// Module is a named collection of records inside a CRM app
type Module struct {
	BaseModel
	AppID       string                           `json:"appId" gorm:"size:36;not null;index;uniqueIndex:idx_crm_modules_app_system_name"`
	PillarID    string                           `json:"pillarId" gorm:"size:50;not null"`
	SystemName  string                           `json:"systemName" gorm:"size:50;not null;uniqueIndex:idx_crm_modules_app_system_name"`
	DisplayName string                           `json:"displayName" gorm:"size:200;not null"`
	Description string                           `json:"description" gorm:"type:text"`
	Icon        string                           `json:"icon" gorm:"size:50"`
	Color       string                           `json:"color" gorm:"size:20"`
	Enabled     bool                             `json:"enabled" gorm:"not null"`
	SortOrder   int                              `json:"sortOrder" gorm:"not null"`
	Config      datatypes.JSONType[ModuleConfig] `json:"config"`
	Permissions datatypes.JSONMap                `json:"permissions"`
}

// TableName returns the table name for Module
func (Module) TableName() string {
	return "crm_modules"
}
