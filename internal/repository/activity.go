package repository

import (
	"crm-builder-backend/internal/database/models"

	"gorm.io/gorm"
)

// ActivityRepository handles the append-only record audit trail
type ActivityRepository struct {
	db *gorm.DB
}

// Ensure ActivityRepository implements ActivityRepositoryInterface
var _ ActivityRepositoryInterface = (*ActivityRepository)(nil)

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create appends an activity
func (r *ActivityRepository) Create(activity *models.Activity) error {
	return r.db.Create(activity).Error
}

// GetByID retrieves an activity by ID
func (r *ActivityRepository) GetByID(id string) (*models.Activity, error) {
	var activity models.Activity
	err := r.db.First(&activity, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// GetByRecordID retrieves the activities of a record, newest first
func (r *ActivityRepository) GetByRecordID(recordID string, limit int) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Where("record_id = ?", recordID).Order("id DESC").Limit(limit).Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// Delete removes a single activity
func (r *ActivityRepository) Delete(id string) (bool, error) {
	return deleteByID(r.db, &models.Activity{}, id)
}

// DeleteByRecordID removes the trail of a deleted record
func (r *ActivityRepository) DeleteByRecordID(recordID string) (int64, error) {
	result := r.db.Where("record_id = ?", recordID).Delete(&models.Activity{})
	return result.RowsAffected, result.Error
}

// DeleteByModuleIDs removes the trails of every record in the given modules
func (r *ActivityRepository) DeleteByModuleIDs(moduleIDs []string) (int64, error) {
	if len(moduleIDs) == 0 {
		return 0, nil
	}
	recordIDs := r.db.Model(&models.Record{}).Select("id").Where("module_id IN ?", moduleIDs)
	result := r.db.Where("record_id IN (?)", recordIDs).Delete(&models.Activity{})
	return result.RowsAffected, result.Error
}
