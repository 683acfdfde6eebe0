package models

// Category groups products. Deleting one leaves its products behind with a
// cleared category reference.
type Category struct {
	Base
	Name string `gorm:"size:250;index;not null"`
	Slug string `gorm:"size:250;uniqueIndex;not null"`
}
