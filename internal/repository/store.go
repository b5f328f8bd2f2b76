package repository

import "gorm.io/gorm"

// Repositories bundles every repository bound to the same database handle
type Repositories struct {
	Tenants    TenantRepositoryInterface
	Apps       CrmAppRepositoryInterface
	Modules    ModuleRepositoryInterface
	Fields     FieldRepositoryInterface
	Views      ViewRepositoryInterface
	Records    RecordRepositoryInterface
	Activities ActivityRepositoryInterface
}

// NewRepositories creates repositories over db (a connection or a transaction)
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Tenants:    NewTenantRepository(db),
		Apps:       NewCrmAppRepository(db),
		Modules:    NewModuleRepository(db),
		Fields:     NewFieldRepository(db),
		Views:      NewViewRepository(db),
		Records:    NewRecordRepository(db),
		Activities: NewActivityRepository(db),
	}
}

// Transactor opens gorm transactions and hands out transaction-bound repositories
type Transactor struct {
	db *gorm.DB
}

// Ensure Transactor implements TransactorInterface
var _ TransactorInterface = (*Transactor)(nil)

// NewTransactor creates a new Transactor
func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{db: db}
}

// WithinTransaction commits when fn returns nil and rolls back otherwise
func (t *Transactor) WithinTransaction(fn func(repos *Repositories) error) error {
	return t.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

// updateByID applies a sparse patch and reports whether the row exists
func updateByID(db *gorm.DB, model interface{}, id string, updates map[string]interface{}) (bool, error) {
	if len(updates) == 0 {
		var count int64
		if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
			return false, err
		}
		return count > 0, nil
	}
	result := db.Model(model).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// deleteByID removes one row and reports whether it existed
func deleteByID(db *gorm.DB, model interface{}, id string) (bool, error) {
	result := db.Delete(model, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
