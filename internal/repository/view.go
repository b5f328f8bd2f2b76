package repository

import (
	"crm-builder-backend/internal/database/models"

	"gorm.io/gorm"
)

// ViewRepository handles database operations for saved views
type ViewRepository struct {
	db *gorm.DB
}

// Ensure ViewRepository implements ViewRepositoryInterface
var _ ViewRepositoryInterface = (*ViewRepository)(nil)

// NewViewRepository creates a new view repository
func NewViewRepository(db *gorm.DB) *ViewRepository {
	return &ViewRepository{db: db}
}

// Create creates a new view
func (r *ViewRepository) Create(view *models.View) error {
	return r.db.Create(view).Error
}

// GetByID retrieves a view by ID
func (r *ViewRepository) GetByID(id string) (*models.View, error) {
	var view models.View
	err := r.db.First(&view, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// GetByModuleID retrieves the views of a module, default view first
func (r *ViewRepository) GetByModuleID(moduleID string) ([]models.View, error) {
	var views []models.View
	err := r.db.Where("module_id = ?", moduleID).
		Order("is_default DESC").Order("created_at ASC").Order("id ASC").
		Find(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

// GetDefault retrieves the default view of a module
func (r *ViewRepository) GetDefault(moduleID string) (*models.View, error) {
	var view models.View
	err := r.db.Where("module_id = ? AND is_default = ?", moduleID, true).
		Order("created_at ASC").First(&view).Error
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// ClearDefault demotes every default view of a module except exceptID
func (r *ViewRepository) ClearDefault(moduleID, exceptID string) (int64, error) {
	query := r.db.Model(&models.View{}).Where("module_id = ? AND is_default = ?", moduleID, true)
	if exceptID != "" {
		query = query.Where("id <> ?", exceptID)
	}
	result := query.Update("is_default", false)
	return result.RowsAffected, result.Error
}

// Update applies a sparse patch to a view
func (r *ViewRepository) Update(id string, updates map[string]interface{}) (bool, error) {
	return updateByID(r.db, &models.View{}, id, updates)
}

// Delete deletes a view
func (r *ViewRepository) Delete(id string) (bool, error) {
	return deleteByID(r.db, &models.View{}, id)
}

// DeleteByModuleIDs deletes every view of the given modules
func (r *ViewRepository) DeleteByModuleIDs(moduleIDs []string) (int64, error) {
	if len(moduleIDs) == 0 {
		return 0, nil
	}
	result := r.db.Where("module_id IN ?", moduleIDs).Delete(&models.View{})
	return result.RowsAffected, result.Error
}
