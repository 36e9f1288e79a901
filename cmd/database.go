package cmd

import (
	"fmt"

	"marketplace/internal/adapters/out/postgres"

	"gorm.io/gorm"
)

// OpenDatabase connects with the configured driver and brings the schema up to date.
func OpenDatabase(cfg Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case DriverPostgres:
		db, err = postgres.OpenPostgres(cfg.PostgresDSN())
	case DriverSQLite:
		db, err = postgres.OpenSQLite(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}

	if err = postgres.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}
