package postgres

import (
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/lib/pq"
)

func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}
}

// OpenPostgres connects through lib/pq rather than the dialector's default pgx driver.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	return gorm.Open(gorm_postgres.New(gorm_postgres.Config{
		DriverName: "postgres",
		DSN:        dsn,
	}), gormConfig())
}

// OpenSQLite opens a file database. SQLite allows one writer, so the pool is
// limited to a single connection and transactions queue instead of failing
// with SQLITE_BUSY.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path+"?_busy_timeout=5000"), gormConfig())
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
