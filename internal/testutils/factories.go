package testutils

import (
	"fmt"

	"crm-builder-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a test Tenant with default values
func (f *TenantFactory) Create() *models.Tenant {
	suffix := uuid.NewString()[:8]
	return &models.Tenant{
		Name:     "Test Tenant " + suffix,
		Slug:     "test-tenant-" + suffix,
		OwnerID:  "owner-" + suffix,
		Plan:     models.TenantPlanFree,
		Branding: datatypes.JSONMap{},
		Settings: datatypes.JSONMap{},
	}
}

// WithSlug sets a custom slug for the tenant
func (f *TenantFactory) WithSlug(slug string) *models.Tenant {
	tenant := f.Create()
	tenant.Slug = slug
	return tenant
}

// CrmAppFactory provides methods to create test CrmApp data
type CrmAppFactory struct{}

// NewCrmAppFactory creates a new CrmAppFactory
func NewCrmAppFactory() *CrmAppFactory {
	return &CrmAppFactory{}
}

// Create creates a test CrmApp for the given tenant
func (f *CrmAppFactory) Create(tenantID string) *models.CrmApp {
	suffix := uuid.NewString()[:8]
	return &models.CrmApp{
		TenantID:       tenantID,
		Name:           "Test App " + suffix,
		Slug:           "test-app-" + suffix,
		BusinessType:   models.BusinessTypeCustom,
		Config:         datatypes.NewJSONType(models.AppConfig{ModuleRenames: map[string]string{}}),
		EnabledPillars: datatypes.NewJSONType([]string{"people"}),
		Branding:       datatypes.JSONMap{"primaryColor": "#6366f1"},
		IsActive:       true,
	}
}

// ModuleFactory provides methods to create test Module data
type ModuleFactory struct{}

// NewModuleFactory creates a new ModuleFactory
func NewModuleFactory() *ModuleFactory {
	return &ModuleFactory{}
}

// Create creates a test Module for the given app
func (f *ModuleFactory) Create(appID string, sortOrder int) *models.Module {
	return &models.Module{
		AppID:       appID,
		PillarID:    "people",
		SystemName:  fmt.Sprintf("module_%d", sortOrder),
		DisplayName: fmt.Sprintf("Module %d", sortOrder),
		Icon:        "user",
		Color:       "#3b82f6",
		Enabled:     true,
		SortOrder:   sortOrder,
		Config:      datatypes.NewJSONType(models.FullAccess()),
	}
}

// FieldFactory provides methods to create test Field data
type FieldFactory struct{}

// NewFieldFactory creates a new FieldFactory
func NewFieldFactory() *FieldFactory {
	return &FieldFactory{}
}

// Create creates a text Field for the given module
func (f *FieldFactory) Create(moduleID, name string, sortOrder int) *models.Field {
	return &models.Field{
		ModuleID:   moduleID,
		Name:       name,
		Label:      name,
		Type:       models.FieldTypeText,
		SortOrder:  sortOrder,
		ShowInList: true,
		ShowInForm: true,
	}
}

// Select creates a select Field with the given choices
func (f *FieldFactory) Select(moduleID, name string, sortOrder int, choices ...models.Choice) *models.Field {
	field := f.Create(moduleID, name, sortOrder)
	field.Type = models.FieldTypeSelect
	field.Options = datatypes.NewJSONType(models.FieldOptions{Choices: choices})
	return field
}

// ViewFactory provides methods to create test View data
type ViewFactory struct{}

// NewViewFactory creates a new ViewFactory
func NewViewFactory() *ViewFactory {
	return &ViewFactory{}
}

// Table creates a table View for the given module
func (f *ViewFactory) Table(moduleID, name string, isDefault bool, columns ...string) *models.View {
	return &models.View{
		ModuleID:  moduleID,
		Name:      name,
		Type:      models.ViewTypeTable,
		Sort:      datatypes.NewJSONType([]models.SortSpec{{Field: models.DefaultSortField, Direction: models.SortDesc}}),
		Columns:   datatypes.NewJSONType(columns),
		IsDefault: isDefault,
		IsShared:  true,
	}
}

// RecordFactory provides methods to create test Record data
type RecordFactory struct{}

// NewRecordFactory creates a new RecordFactory
func NewRecordFactory() *RecordFactory {
	return &RecordFactory{}
}

// Create creates a Record holding data
func (f *RecordFactory) Create(appID, moduleID string, data map[string]interface{}) *models.Record {
	return &models.Record{
		AppID:     appID,
		ModuleID:  moduleID,
		Data:      models.JSONDocument(data),
		CreatedBy: "tester",
	}
}

// FactorySet bundles all factories
type FactorySet struct {
	Tenant *TenantFactory
	CrmApp *CrmAppFactory
	Module *ModuleFactory
	Field  *FieldFactory
	View   *ViewFactory
	Record *RecordFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Tenant: NewTenantFactory(),
		CrmApp: NewCrmAppFactory(),
		Module: NewModuleFactory(),
		Field:  NewFieldFactory(),
		View:   NewViewFactory(),
		Record: NewRecordFactory(),
	}
}
