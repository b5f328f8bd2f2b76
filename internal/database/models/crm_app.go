package models

import "gorm.io/datatypes"

// BusinessTypeCustom marks apps provisioned without a catalog preset
const BusinessTypeCustom = "custom"

// AppConfig is the configuration snapshot taken when an app is provisioned.
// Catalog changes never rewrite it.
type AppConfig struct {
	ModuleRenames map[string]string `json:"moduleRenames"`
}

// CrmApp is one provisioned CRM instance of a tenant
type CrmApp struct {
	BaseModel
	TenantID       string                        `json:"tenantId" gorm:"size:36;not null;index;uniqueIndex:idx_crm_apps_tenant_slug"`
	Name           string                        `json:"name" gorm:"size:200;not null"`
	Slug           string                        `json:"slug" gorm:"size:50;not null;uniqueIndex:idx_crm_apps_tenant_slug"`
	Description    string                        `json:"description" gorm:"type:text"`
	Icon           string                        `json:"icon" gorm:"size:50"`
	BusinessType   string                        `json:"businessType" gorm:"size:100;not null"`
	Config         datatypes.JSONType[AppConfig] `json:"config"`
	EnabledPillars datatypes.JSONType[[]string]  `json:"enabledPillars"`
	Branding       datatypes.JSONMap             `json:"branding"`
	IsActive       bool                          `json:"isActive" gorm:"not null"`
}

// TableName returns the table name for CrmApp
func (CrmApp) TableName() string {
	return "crm_apps"
}
