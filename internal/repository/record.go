package repository

import (
	"strings"

	"crm-builder-backend/internal/database/models"

	"gorm.io/gorm"
)

// RecordRepository handles database operations for schema-less records
type RecordRepository struct {
	db *gorm.DB
}

// Ensure RecordRepository implements RecordRepositoryInterface
var _ RecordRepositoryInterface = (*RecordRepository)(nil)

// NewRecordRepository creates a new record repository
func NewRecordRepository(db *gorm.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// Create stores a record; data is written verbatim
func (r *RecordRepository) Create(record *models.Record) error {
	if record.Data == nil {
		record.Data = models.JSONDocument{}
	}
	return r.db.Create(record).Error
}

// GetByID retrieves a record by ID
func (r *RecordRepository) GetByID(id string) (*models.Record, error) {
	var record models.Record
	err := r.db.First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// newestFirst orders by creation time with the id as tie-breaker so that
// consecutive pages never overlap
func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}

// GetByModuleID retrieves one page of a module's records, newest first
func (r *RecordRepository) GetByModuleID(moduleID string, limit, offset int) ([]models.Record, error) {
	var records []models.Record
	err := r.db.Where("module_id = ?", moduleID).
		Scopes(newestFirst).
		Limit(limit).Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// GetByAppID retrieves the most recent records across all modules of an app
func (r *RecordRepository) GetByAppID(appID string, limit int) ([]models.Record, error) {
	var records []models.Record
	err := r.db.Where("app_id = ?", appID).
		Scopes(newestFirst).
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// CountByModuleID counts the records of a module
func (r *RecordRepository) CountByModuleID(moduleID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Record{}).Where("module_id = ?", moduleID).Count(&count).Error
	return count, err
}

// CountByAppID counts the records of an app
func (r *RecordRepository) CountByAppID(appID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Record{}).Where("app_id = ?", appID).Count(&count).Error
	return count, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search returns records whose serialized data contains term anywhere,
// compared case-insensitively, newest first
func (r *RecordRepository) Search(moduleID, term string, limit int) ([]models.Record, error) {
	var records []models.Record
	pattern := "%" + strings.ToLower(likeEscaper.Replace(term)) + "%"
	err := r.db.Where("module_id = ?", moduleID).
		Where(`LOWER(CAST(data AS TEXT)) LIKE ? ESCAPE '\'`, pattern).
		Scopes(newestFirst).
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Update replaces the whole data column. Merging with the stored data is the
// caller's job.
func (r *RecordRepository) Update(id string, data map[string]interface{}, updatedBy string) (bool, error) {
	if data == nil {
		data = map[string]interface{}{}
	}
	return updateByID(r.db, &models.Record{}, id, map[string]interface{}{
		"data":       models.JSONDocument(data),
		"updated_by": updatedBy,
	})
}

// Delete deletes a record
func (r *RecordRepository) Delete(id string) (bool, error) {
	return deleteByID(r.db, &models.Record{}, id)
}

// DeleteByModuleIDs deletes every record of the given modules
func (r *RecordRepository) DeleteByModuleIDs(moduleIDs []string) (int64, error) {
	if len(moduleIDs) == 0 {
		return 0, nil
	}
	result := r.db.Where("module_id IN ?", moduleIDs).Delete(&models.Record{})
	return result.RowsAffected, result.Error
}
