package repository

import (
	"crm-builder-backend/internal/database/models"

	"gorm.io/gorm"
)

// FieldRepository handles database operations for module fields
type FieldRepository struct {
	db *gorm.DB
}

// Ensure FieldRepository implements FieldRepositoryInterface
var _ FieldRepositoryInterface = (*FieldRepository)(nil)

// NewFieldRepository creates a new field repository
func NewFieldRepository(db *gorm.DB) *FieldRepository {
	return &FieldRepository{db: db}
}

// Create creates a new field
func (r *FieldRepository) Create(field *models.Field) error {
	return r.db.Create(field).Error
}

// GetByID retrieves a field by ID
func (r *FieldRepository) GetByID(id string) (*models.Field, error) {
	var field models.Field
	err := r.db.First(&field, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &field, nil
}

// GetByName retrieves a field by name within a module
func (r *FieldRepository) GetByName(moduleID, name string) (*models.Field, error) {
	var field models.Field
	err := r.db.First(&field, "module_id = ? AND name = ?", moduleID, name).Error
	if err != nil {
		return nil, err
	}
	return &field, nil
}

// GetByModuleID retrieves the fields of a module in form order
func (r *FieldRepository) GetByModuleID(moduleID string) ([]models.Field, error) {
	var fields []models.Field
	err := r.db.Where("module_id = ?", moduleID).
		Order("sort_order ASC").Order("created_at ASC").Order("id ASC").
		Find(&fields).Error
	if err != nil {
		return nil, err
	}
	return fields, nil
}

// MaxSortOrder returns the highest field sort order of a module, -1 when it has none
func (r *FieldRepository) MaxSortOrder(moduleID string) (int, error) {
	maxOrder := -1
	err := r.db.Model(&models.Field{}).Where("module_id = ?", moduleID).Select("COALESCE(MAX(sort_order), -1)").Scan(&maxOrder).Error
	return maxOrder, err
}

// Update applies a sparse patch to a field
func (r *FieldRepository) Update(id string, updates map[string]interface{}) (bool, error) {
	return updateByID(r.db, &models.Field{}, id, updates)
}

// Delete deletes a field. Sort orders of the remaining fields are left untouched.
func (r *FieldRepository) Delete(id string) (bool, error) {
	return deleteByID(r.db, &models.Field{}, id)
}

// DeleteByModuleIDs deletes every field of the given modules
func (r *FieldRepository) DeleteByModuleIDs(moduleIDs []string) (int64, error) {
	if len(moduleIDs) == 0 {
		return 0, nil
	}
	result := r.db.Where("module_id IN ?", moduleIDs).Delete(&models.Field{})
	return result.RowsAffected, result.Error
}
