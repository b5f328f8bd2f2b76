package repository

import (
	"crm-builder-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TenantRepositoryInterface defines the interface for tenant repository operations
type TenantRepositoryInterface interface {
	Create(tenant *models.Tenant) error
	GetByID(id string) (*models.Tenant, error)
	GetBySlug(slug string) (*models.Tenant, error)
	GetByOwnerID(ownerID string) (*models.Tenant, error)
	GetAll(limit, offset int) ([]models.Tenant, int64, error)
	Update(id string, updates map[string]interface{}) (bool, error)
	Delete(id string) (bool, error)
}

// CrmAppRepositoryInterface defines the interface for CRM app repository operations
type CrmAppRepositoryInterface interface {
	Create(app *models.CrmApp) error
	GetByID(id string) (*models.CrmApp, error)
	GetBySlug(tenantID, slug string) (*models.CrmApp, error)
	GetByTenantID(tenantID string) ([]models.CrmApp, error)
	Update(id string, updates map[string]interface{}) (bool, error)
	Delete(id string) (bool, error)
}

// ModuleRepositoryInterface defines the interface for module repository operations
type ModuleRepositoryInterface interface {
	Create(module *models.Module) error
	GetByID(id string) (*models.Module, error)
	GetBySystemName(appID, systemName string) (*models.Module, error)
	GetByAppID(appID string) ([]models.Module, error)
	CountByAppID(appID string) (int64, error)
	MaxSortOrder(appID string) (int, error)
	Update(id string, updates map[string]interface{}) (bool, error)
	Delete(id string) (bool, error)
	DeleteByAppID(appID string) (int64, error)
}

// FieldRepositoryInterface defines the interface for field repository operations
type FieldRepositoryInterface interface {
	Create(field *models.Field) error
	GetByID(id string) (*models.Field, error)
	GetByName(moduleID, name string) (*models.Field, error)
	GetByModuleID(moduleID string) ([]models.Field, error)
	MaxSortOrder(moduleID string) (int, error)
	Update(id string, updates map[string]interface{}) (bool, error)
	Delete(id string) (bool, error)
	DeleteByModuleIDs(moduleIDs []string) (int64, error)
}

// ViewRepositoryInterface defines the interface for view repository operations
type ViewRepositoryInterface interface {
	Create(view *models.View) error
	GetByID(id string) (*models.View, error)
	GetByModuleID(moduleID string) ([]models.View, error)
	GetDefault(moduleID string) (*models.View, error)
	ClearDefault(moduleID, exceptID string) (int64, error)
	Update(id string, updates map[string]interface{}) (bool, error)
	Delete(id string) (bool, error)
	DeleteByModuleIDs(moduleIDs []string) (int64, error)
}

// RecordRepositoryInterface defines the interface for record repository operations
type RecordRepositoryInterface interface {
	Create(record *models.Record) error
	GetByID(id string) (*models.Record, error)
	GetByModuleID(moduleID string, limit, offset int) ([]models.Record, error)
	GetByAppID(appID string, limit int) ([]models.Record, error)
	CountByModuleID(moduleID string) (int64, error)
	CountByAppID(appID string) (int64, error)
	Search(moduleID, term string, limit int) ([]models.Record, error)
	Update(id string, data map[string]interface{}, updatedBy string) (bool, error)
	Delete(id string) (bool, error)
	DeleteByModuleIDs(moduleIDs []string) (int64, error)
}

// ActivityRepositoryInterface defines the interface for record activity operations
type ActivityRepositoryInterface interface {
	Create(activity *models.Activity) error
	GetByID(id string) (*models.Activity, error)
	GetByRecordID(recordID string, limit int) ([]models.Activity, error)
	Delete(id string) (bool, error)
	DeleteByRecordID(recordID string) (int64, error)
	DeleteByModuleIDs(moduleIDs []string) (int64, error)
}

// TransactorInterface runs a unit of work against repositories sharing one transaction
type TransactorInterface interface {
	WithinTransaction(fn func(repos *Repositories) error) error
}
