package repository

import (
	"crm-builder-backend/internal/database/models"

	"gorm.io/gorm"
)

// CrmAppRepository handles database operations for CRM apps
type CrmAppRepository struct {
	db *gorm.DB
}

// Ensure CrmAppRepository implements CrmAppRepositoryInterface
var _ CrmAppRepositoryInterface = (*CrmAppRepository)(nil)

// NewCrmAppRepository creates a new CRM app repository
func NewCrmAppRepository(db *gorm.DB) *CrmAppRepository {
	return &CrmAppRepository{db: db}
}

// Create creates a new CRM app
func (r *CrmAppRepository) Create(app *models.CrmApp) error {
	return r.db.Create(app).Error
}

// GetByID retrieves a CRM app by ID
func (r *CrmAppRepository) GetByID(id string) (*models.CrmApp, error) {
	var app models.CrmApp
	err := r.db.First(&app, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// GetBySlug retrieves a CRM app by slug within a tenant
func (r *CrmAppRepository) GetBySlug(tenantID, slug string) (*models.CrmApp, error) {
	var app models.CrmApp
	err := r.db.First(&app, "tenant_id = ? AND slug = ?", tenantID, slug).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// GetByTenantID retrieves all apps of a tenant, oldest first
func (r *CrmAppRepository) GetByTenantID(tenantID string) ([]models.CrmApp, error) {
	var apps []models.CrmApp
	err := r.db.Where("tenant_id = ?", tenantID).Order("created_at ASC").Order("id ASC").Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// Update applies a sparse patch to an app
func (r *CrmAppRepository) Update(id string, updates map[string]interface{}) (bool, error) {
	return updateByID(r.db, &models.CrmApp{}, id, updates)
}

// Delete deletes the app row only
func (r *CrmAppRepository) Delete(id string) (bool, error) {
	return deleteByID(r.db, &models.CrmApp{}, id)
}
