package database

import (
	"fmt"

	"crm-builder-backend/internal/database/models"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

const recordListingIndex = "idx_crm_records_module_created"

// AllModels lists every persisted model, parents first
func AllModels() []interface{} {
	return []interface{}{
		&models.Tenant{},
		&models.CrmApp{},
		&models.Module{},
		&models.Field{},
		&models.View{},
		&models.Record{},
		&models.Activity{},
	}
}

// Migrations returns the ordered schema history
func Migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "202610010001_initial_schema",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(AllModels()...)
			},
			Rollback: func(tx *gorm.DB) error {
				all := AllModels()
				for i := len(all) - 1; i >= 0; i-- {
					if err := tx.Migrator().DropTable(all[i]); err != nil {
						return err
					}
				}
				return nil
			},
		},
		{
			ID:      "202610080002_record_listing_index",
			Migrate: createRecordListingIndex,
			Rollback: func(tx *gorm.DB) error {
				return tx.Exec("DROP INDEX IF EXISTS " + recordListingIndex).Error
			},
		},
	}
}

func createRecordListingIndex(tx *gorm.DB) error {
	return tx.Exec("CREATE INDEX IF NOT EXISTS " + recordListingIndex +
		" ON crm_records (module_id, created_at DESC, id DESC)").Error
}

// Migrate brings the schema up to date. A clean database gets the full
// schema in one step.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, Migrations())

	m.InitSchema(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(AllModels()...); err != nil {
			return err
		}
		return createRecordListingIndex(tx)
	})

	if err := m.Migrate(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// RollbackLast undoes the most recently applied migration
func RollbackLast(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, Migrations())
	if err := m.RollbackLast(); err != nil {
		return fmt.Errorf("rollback: %w", err)
	}
	return nil
}
