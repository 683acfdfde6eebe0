package models

import "github.com/shopspring/decimal"

// Product is a catalog item. Inactive products stay in the table but are
// hidden from the public detail view.
type Product struct {
	Base
	CategoryID  *uint     `gorm:"index"`
	Category    *Category `gorm:"constraint:OnDelete:SET NULL"`
	Name        string    `gorm:"size:250;not null"`
	Slug        string    `gorm:"size:250;uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	Price       decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	Rating      *decimal.Decimal `gorm:"type:decimal(10,2)"`
	ImageURL    string           `gorm:"size:1024"` // external image, optional
	ImagePath   string           // uploaded image under /uploads, optional
	HasSizes    bool             `gorm:"not null"`
	InStock     bool             `gorm:"not null"`
	IsActive    bool             `gorm:"not null"`

	Reviews []ProductReview `gorm:"constraint:OnDelete:SET NULL"`
}
