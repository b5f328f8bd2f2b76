package database

import (
	"errors"
	"fmt"
	"testing"

	"crm-builder-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := Initialize(dsn, &Options{Driver: DriverSQLite})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestInitialize_CreatesSchema(t *testing.T) {
	db := openMemory(t)

	for _, table := range []string{"tenants", "crm_apps", "crm_modules", "crm_fields", "crm_views", "crm_records", "crm_activities"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasIndex(&models.Record{}, recordListingIndex))
}

func TestMigrate_IsIdempotent(t *testing.T) {
	db := openMemory(t)
	assert.NoError(t, Migrate(db))

	ids := make([]string, 0, len(Migrations()))
	for _, m := range Migrations() {
		ids = append(ids, m.ID)
	}
	var applied int64
	require.NoError(t, db.Table("migrations").Where("id IN ?", ids).Count(&applied).Error)
	assert.Equal(t, int64(len(ids)), applied)
}

func TestRollbackLast_DropsListingIndex(t *testing.T) {
	db := openMemory(t)

	require.NoError(t, RollbackLast(db))
	assert.False(t, db.Migrator().HasIndex(&models.Record{}, recordListingIndex))
	assert.True(t, db.Migrator().HasTable("crm_records"))

	require.NoError(t, Migrate(db))
	assert.True(t, db.Migrator().HasIndex(&models.Record{}, recordListingIndex))
}

func TestUniqueIndexesTranslateToDuplicatedKey(t *testing.T) {
	db := openMemory(t)

	require.NoError(t, db.Create(&models.Tenant{Name: "Acme", Slug: "acme", OwnerID: "u1", Plan: models.TenantPlanFree}).Error)
	err := db.Create(&models.Tenant{Name: "Acme 2", Slug: "acme", OwnerID: "u2", Plan: models.TenantPlanFree}).Error
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)

	require.NoError(t, db.Create(&models.Field{ModuleID: "m1", Name: "email", Label: "Email", Type: models.FieldTypeEmail}).Error)
	require.NoError(t, db.Create(&models.Field{ModuleID: "m2", Name: "email", Label: "Email", Type: models.FieldTypeEmail}).Error)
	err = db.Create(&models.Field{ModuleID: "m1", Name: "email", Label: "Again", Type: models.FieldTypeEmail}).Error
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)
}

func TestInitialize_UnsupportedDriver(t *testing.T) {
	_, err := Initialize("whatever", &Options{Driver: "oracle"})
	assert.Error(t, err)
}
