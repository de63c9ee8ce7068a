// Package database persists conversations and messages for the collaborator
// server. Postgres is used for postgres:// URLs, sqlite for anything else.
package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/zhubert/ragchat/internal/logger"
)

// IsPostgres reports whether dsn selects the postgres driver.
func IsPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Open connects to dsn and brings the schema up to date.
func Open(dsn string) (*gorm.DB, error) {
	log := logger.WithComponent("database")

	cfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)}

	var (
		db  *gorm.DB
		err error
	)
	if IsPostgres(dsn) {
		log.Info("connecting to postgres")
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	} else {
		log.Info("opening sqlite database", "path", dsn)
		db, err = gorm.Open(sqlite.Open(dsn), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if db.Dialector.Name() == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("retrieve sql db: %w", err)
		}
		// One connection keeps an in-memory database alive and avoids
		// SQLITE_BUSY between concurrent writers.
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	}

	if err := GetMigrator(db).Migrate(); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
