package models

import "time"

// ProductReview is a user-submitted review. Deleting the product keeps the
// review with a cleared product reference; deleting the user removes it.
type ProductReview struct {
	ID        uint     `gorm:"primaryKey"`
	ProductID *uint    `gorm:"index"`
	Product   *Product
	UserID    *uint    `gorm:"index"`
	User      *User    `gorm:"constraint:OnDelete:CASCADE"`
	Title     string   `gorm:"size:250;not null"`
	Body      string   `gorm:"type:text"`
	Rating    int      `gorm:"not null;default:3"` // 1..5
	CreatedAt time.Time
}
