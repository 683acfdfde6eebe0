package catalog

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"storefront/internal/models"
)

// ErrNotFound is returned when a lookup matches nothing.
var ErrNotFound = errors.New("catalog: not found")

// Catalog provides access to the product catalog storage.
type Catalog struct {
	db *gorm.DB
}

// New creates a Catalog on top of a gorm connection.
func New(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// Categories returns every category, ordered by name.
func (c *Catalog) Categories() ([]models.Category, error) {
	var cats []models.Category
	if err := c.db.Order("name").Find(&cats).Error; err != nil {
		return nil, fmt.Errorf("catalog: list categories: %w", err)
	}
	return cats, nil
}

// CategoryByID looks up a single category.
func (c *Catalog) CategoryByID(id uint) (*models.Category, error) {
	var cat models.Category
	if err := c.db.First(&cat, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("catalog: category by id: %w", err)
	}
	return &cat, nil
}

// CategoryBySlug looks up a single category.
func (c *Catalog) CategoryBySlug(slug string) (*models.Category, error) {
	var cat models.Category
	if err := c.db.First(&cat, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("catalog: category by slug: %w", err)
	}
	return &cat, nil
}

// ActiveProductBySlug resolves the public detail view: the product must match
// the slug and still be active, otherwise the caller gets ErrNotFound. The
// result carries its category and reviews (newest first, with authors).
func (c *Catalog) ActiveProductBySlug(slug string) (*models.Product, error) {
	var p models.Product
	err := c.db.
		Preload("Category").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC, id DESC") }).
		Preload("Reviews.User").
		First(&p, "slug = ? AND is_active = ?", slug, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("catalog: active product by slug: %w", err)
	}
	return &p, nil
}

// ProductBySlug looks up a product regardless of its active flag. Management
// screens use this so an inactive product can still be edited or deleted.
func (c *Catalog) ProductBySlug(slug string) (*models.Product, error) {
	var p models.Product
	if err := c.db.Preload("Category").First(&p, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("catalog: product by slug: %w", err)
	}
	return &p, nil
}

// SlugTaken reports whether another product already uses slug. excludeID
// skips the product being edited.
func (c *Catalog) SlugTaken(slug string, excludeID uint) (bool, error) {
	var n int64
	q := c.db.Model(&models.Product{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, fmt.Errorf("catalog: slug taken: %w", err)
	}
	return n > 0, nil
}

// CreateProduct persists a new product.
func (c *Catalog) CreateProduct(p *models.Product) error {
	if err := c.db.Create(p).Error; err != nil {
		return fmt.Errorf("catalog: create product: %w", err)
	}
	return nil
}

// UpdateProduct saves the full set of editable fields in place.
func (c *Catalog) UpdateProduct(p *models.Product) error {
	if err := c.db.Save(p).Error; err != nil {
		return fmt.Errorf("catalog: update product: %w", err)
	}
	return nil
}

// DeleteProduct removes a product. Its reviews survive with a cleared
// product reference.
func (c *Catalog) DeleteProduct(p *models.Product) error {
	if err := c.db.Delete(p).Error; err != nil {
		return fmt.Errorf("catalog: delete product: %w", err)
	}
	return nil
}

// ReviewByID looks up a review together with its parent product.
func (c *Catalog) ReviewByID(id uint) (*models.ProductReview, error) {
	var r models.ProductReview
	if err := c.db.Preload("Product").First(&r, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("catalog: review by id: %w", err)
	}
	return &r, nil
}

// CreateReview persists a new review.
func (c *Catalog) CreateReview(r *models.ProductReview) error {
	if err := c.db.Create(r).Error; err != nil {
		return fmt.Errorf("catalog: create review: %w", err)
	}
	return nil
}

// UpdateReview saves an edited review.
func (c *Catalog) UpdateReview(r *models.ProductReview) error {
	if err := c.db.Save(r).Error; err != nil {
		return fmt.Errorf("catalog: update review: %w", err)
	}
	return nil
}

// DeleteReview removes a review.
func (c *Catalog) DeleteReview(r *models.ProductReview) error {
	if err := c.db.Delete(r).Error; err != nil {
		return fmt.Errorf("catalog: delete review: %w", err)
	}
	return nil
}
