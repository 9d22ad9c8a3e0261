package database

import (
	"fmt"

	"gallery-app/internal/domain/inquiry"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to Postgres. The catalog never lives here; the database only
// holds visitor inquiries.
func Open(dsn string, log *zap.Logger) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database: DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("database: failed to connect: %w", err)
	}

	log.Info("connected to database")
	return db, nil
}

// Migrate creates or updates the tables the app writes to.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&inquiry.ContactRequest{},
	); err != nil {
		return fmt.Errorf("database: AutoMigrate error: %w", err)
	}
	return nil
}
