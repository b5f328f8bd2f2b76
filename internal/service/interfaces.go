package service

import (
	"context"

	"crm-builder-backend/internal/catalog"

	"github.com/invopop/jsonschema"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CatalogServiceInterface exposes the read-only pillar and preset registry
type CatalogServiceInterface interface {
	ListPillars() *PillarListResponse
	GetPillar(id string) (*catalog.Pillar, error)
	ListPresets() *PresetListResponse
	GetPreset(id string) (*catalog.BusinessPreset, error)
}

// TenantServiceInterface defines the interface for tenant service
type TenantServiceInterface interface {
	CreateTenant(req *CreateTenantRequest) (*TenantResponse, error)
	GetByID(id string) (*TenantResponse, error)
	GetBySlug(slug string) (*TenantResponse, error)
	GetByOwnerID(ownerID string) (*TenantResponse, error)
	ListTenants(limit, offset int) (*TenantListResponse, error)
	UpdateTenant(id string, req *UpdateTenantRequest) (*TenantResponse, error)
	DeleteTenant(id string) error
}

// ProvisioningServiceInterface builds CRM apps from the catalog
type ProvisioningServiceInterface interface {
	PreviewCrmStructure(businessType string, customPillars []string) (*PreviewResponse, error)
	CreateCrmApp(ctx context.Context, tenantID string, req *CreateCrmAppRequest) (*ProvisionResult, error)
}

// CrmAppServiceInterface defines the interface for CRM app service
type CrmAppServiceInterface interface {
	GetApp(id string) (*AppDetailResponse, error)
	ListByTenant(tenantID string) ([]CrmAppResponse, error)
	UpdateApp(id string, req *UpdateCrmAppRequest) (*CrmAppResponse, error)
	DeleteApp(id string) error
	GetStats(id string) (*AppStatsResponse, error)
}

// ModuleServiceInterface defines the interface for module service
type ModuleServiceInterface interface {
	GetModule(id string) (*ModuleDetailResponse, error)
	ListByApp(appID string) ([]ModuleResponse, error)
	CreateModule(ctx context.Context, appID string, req *CreateModuleRequest) (*ModuleDetailResponse, error)
	UpdateModule(id string, req *UpdateModuleRequest) (*ModuleResponse, error)
	DeleteModule(id string) error
	GetRecordSchema(id string) (*jsonschema.Schema, error)
}

// FieldServiceInterface defines the interface for field service
type FieldServiceInterface interface {
	ListByModule(moduleID string) ([]FieldResponse, error)
	CreateField(moduleID string, req *CreateFieldRequest) (*FieldResponse, error)
	UpdateField(ctx context.Context, id string, req *UpdateFieldRequest) (*FieldResponse, error)
	DeleteField(id string) error
}

// ViewServiceInterface defines the interface for view service
type ViewServiceInterface interface {
	ListByModule(moduleID string) ([]ViewResponse, error)
	GetView(id string) (*ViewResponse, error)
	CreateView(ctx context.Context, moduleID string, req *CreateViewRequest) (*ViewResponse, error)
	UpdateView(id string, req *UpdateViewRequest) (*ViewResponse, error)
	DeleteView(id string) error
	GetViewData(id string, limit, offset int) (*ViewDataResponse, error)
}

// RecordServiceInterface defines the interface for record and activity operations
type RecordServiceInterface interface {
	CreateRecord(ctx context.Context, moduleID string, req *CreateRecordRequest) (*RecordResponse, error)
	GetRecord(id string) (*RecordResponse, error)
	ListByModule(moduleID string, limit, offset int) (*RecordListResponse, error)
	ListByApp(appID string, limit int) ([]RecordResponse, error)
	Search(moduleID, term string, limit int) ([]RecordResponse, error)
	UpdateRecord(ctx context.Context, id string, req *UpdateRecordRequest) (*RecordResponse, error)
	DeleteRecord(id string) error
	ValidateData(moduleID string, data map[string]interface{}) (*ValidationReport, error)
	ListActivities(recordID string, limit int) ([]ActivityResponse, error)
	AddActivity(ctx context.Context, recordID string, req *CreateActivityRequest) (*ActivityResponse, error)
	DeleteActivity(id string) error
}
