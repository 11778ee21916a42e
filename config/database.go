package config

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"autorepair/models"
)

// Open connects to the SQLite store at cfg.DBPath and brings the schema up to
// date. The connection is the one shared resource of the process: opened once
// at startup and held until exit. Failure here is the only unrecoverable
// condition in the system.
func Open(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open record store: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Part{},
		&models.Tool{},
		&models.Service{},
		&models.Invoice{},
	); err != nil {
		return nil, fmt.Errorf("migrate record store: %w", err)
	}

	return db, nil
}
