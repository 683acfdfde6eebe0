package models

import "time"

// Base holds the columns shared by every table.
type Base struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// All lists every entity for AutoMigrate, in dependency order.
func All() []any {
	return []any{&User{}, &Category{}, &Product{}, &ProductReview{}}
}
