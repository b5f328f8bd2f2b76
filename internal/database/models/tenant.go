package models

import "gorm.io/datatypes"

// Tenant is a customer workspace owning one or more CRM apps
type Tenant struct {
	BaseModel
	Name     string            `json:"name" gorm:"size:200;not null"`
	Slug     string            `json:"slug" gorm:"size:100;not null;uniqueIndex"`
	OwnerID  string            `json:"ownerId" gorm:"size:100;not null;index"`
	Plan     TenantPlan        `json:"plan" gorm:"size:20;not null"`
	Branding datatypes.JSONMap `json:"branding"`
	Settings datatypes.JSONMap `json:"settings"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}
