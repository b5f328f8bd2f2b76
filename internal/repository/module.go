package repository

import (
	"crm-builder-backend/internal/database/models"

	"gorm.io/gorm"
)

// ModuleRepository handles database operations for modules
type ModuleRepository struct {
	db *gorm.DB
}

// Ensure ModuleRepository implements ModuleRepositoryInterface
var _ ModuleRepositoryInterface = (*ModuleRepository)(nil)

// NewModuleRepository creates a new module repository
func NewModuleRepository(db *gorm.DB) *ModuleRepository {
	return &ModuleRepository{db: db}
}

// Create creates a new module
func (r *ModuleRepository) Create(module *models.Module) error {
	return r.db.Create(module).Error
}

// GetByID retrieves a module by ID
func (r *ModuleRepository) GetByID(id string) (*models.Module, error) {
	var module models.Module
	err := r.db.First(&module, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &module, nil
}

// GetBySystemName retrieves a module by its stable system name within an app
func (r *ModuleRepository) GetBySystemName(appID, systemName string) (*models.Module, error) {
	var module models.Module
	err := r.db.First(&module, "app_id = ? AND system_name = ?", appID, systemName).Error
	if err != nil {
		return nil, err
	}
	return &module, nil
}

// GetByAppID retrieves the modules of an app in navigation order.
// Equal sort orders fall back to insertion order.
func (r *ModuleRepository) GetByAppID(appID string) ([]models.Module, error) {
	var modules []models.Module
	err := r.db.Where("app_id = ?", appID).
		Order("sort_order ASC").Order("created_at ASC").Order("id ASC").
		Find(&modules).Error
	if err != nil {
		return nil, err
	}
	return modules, nil
}

// CountByAppID counts the modules of an app
func (r *ModuleRepository) CountByAppID(appID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Module{}).Where("app_id = ?", appID).Count(&count).Error
	return count, err
}

// MaxSortOrder returns the highest module sort order of an app, -1 when it has none
func (r *ModuleRepository) MaxSortOrder(appID string) (int, error) {
	maxOrder := -1
	err := r.db.Model(&models.Module{}).Where("app_id = ?", appID).Select("COALESCE(MAX(sort_order), -1)").Scan(&maxOrder).Error
	return maxOrder, err
}

// Update applies a sparse patch to a module
func (r *ModuleRepository) Update(id string, updates map[string]interface{}) (bool, error) {
	return updateByID(r.db, &models.Module{}, id, updates)
}

// Delete deletes the module row only
func (r *ModuleRepository) Delete(id string) (bool, error) {
	return deleteByID(r.db, &models.Module{}, id)
}

// DeleteByAppID deletes every module row of an app
func (r *ModuleRepository) DeleteByAppID(appID string) (int64, error) {
	result := r.db.Where("app_id = ?", appID).Delete(&models.Module{})
	return result.RowsAffected, result.Error
}
