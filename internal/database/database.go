package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Options struct {
	Driver          string
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrations  bool
}

// Initialize opens a connection for the configured driver and applies the
// versioned migrations unless told otherwise.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.Driver == "" {
		opts.Driver = DriverPostgres
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	var dialector gorm.Dialector
	switch opts.Driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
		// sqlite serializes writers; a single connection avoids SQLITE_BUSY
		// and keeps in-memory databases alive across calls.
		opts.MaxOpenConns = 1
		opts.MaxIdleConns = 1
		opts.ConnMaxLifetime = 0
		opts.ConnMaxIdleTime = 0
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(opts.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", opts.Driver, err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if !opts.SkipMigrations {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}
