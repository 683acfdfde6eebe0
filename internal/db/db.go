package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"storefront/internal/models"
)

// Open connects to PostgreSQL with the given DSN and migrates the schema.
func Open(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("db: empty DSN (check your .env)")
	}
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("db: connect: %w", err)
	}
	if err := gdb.AutoMigrate(models.All()...); err != nil {
		return nil, fmt.Errorf("db: migrate: %w", err)
	}
	return gdb, nil
}
