package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tailorbook-backend/models"
)

// ConnectDB opens the backup archive database and migrates its tables.
func ConnectDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect archive database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// backups are rare, keep the pool small
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(4)

	if err := db.AutoMigrate(&models.SnapshotArchive{}); err != nil {
		return nil, fmt.Errorf("migrate archive tables: %w", err)
	}
	return db, nil
}
