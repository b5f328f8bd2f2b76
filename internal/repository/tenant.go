package repository

import (
	"crm-builder-backend/internal/database/models"

	"gorm.io/gorm"
)

// TenantRepository handles database operations for tenants
type TenantRepository struct {
	db *gorm.DB
}

// Ensure TenantRepository implements TenantRepositoryInterface
var _ TenantRepositoryInterface = (*TenantRepository)(nil)

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// Create creates a new tenant
func (r *TenantRepository) Create(tenant *models.Tenant) error {
	return r.db.Create(tenant).Error
}

// GetByID retrieves a tenant by ID
func (r *TenantRepository) GetByID(id string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.First(&tenant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetBySlug retrieves a tenant by its globally unique slug
func (r *TenantRepository) GetBySlug(slug string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.First(&tenant, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetByOwnerID retrieves the tenant owned by an external user id
func (r *TenantRepository) GetByOwnerID(ownerID string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.First(&tenant, "owner_id = ?", ownerID).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetAll retrieves tenants with pagination, oldest first
func (r *TenantRepository) GetAll(limit, offset int) ([]models.Tenant, int64, error) {
	var tenants []models.Tenant
	var total int64

	if err := r.db.Model(&models.Tenant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at ASC").Order("id ASC").Limit(limit).Offset(offset).Find(&tenants).Error
	if err != nil {
		return nil, 0, err
	}

	return tenants, total, nil
}

// Update applies a sparse patch to a tenant
func (r *TenantRepository) Update(id string, updates map[string]interface{}) (bool, error) {
	return updateByID(r.db, &models.Tenant{}, id, updates)
}

// Delete deletes a tenant row. Callers remove the tenant's apps first.
func (r *TenantRepository) Delete(id string) (bool, error) {
	return deleteByID(r.db, &models.Tenant{}, id)
}
