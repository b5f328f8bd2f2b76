package testutils

import (
	"fmt"
	"testing"

	"crm-builder-backend/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens a private, fully migrated in-memory database that is
// closed when the test ends
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Initialize(dsn, &database.Options{
		Driver:   database.DriverSQLite,
		LogLevel: logger.Silent,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
