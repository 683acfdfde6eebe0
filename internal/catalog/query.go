package catalog

import (
	"fmt"
	"strings"

	"storefront/internal/models"
)

// ListParams are the optional, independent listing dimensions taken from the
// query string. The zero value means "all active products, newest first".
type ListParams struct {
	Sort       string   // name, category, price, rating, created
	Direction  string   // "desc" flips the order; anything else is ascending
	Categories []string // exact category names
	Search     string   // case-insensitive substring over name and description
}

// sortColumns whitelists the sort keys a client may pick. An unrecognized
// key falls back to the default order instead of reaching the database.
var sortColumns = map[string]string{
	"name":     "LOWER(products.name)",
	"category": "categories.name",
	"price":    "products.price",
	"rating":   "products.rating",
	"created":  "products.created_at",
}

// Products returns the active products matching params. Each dimension is
// applied only when present, so any subset of them composes.
func (c *Catalog) Products(params ListParams) ([]models.Product, error) {
	q := c.db.Model(&models.Product{}).
		Preload("Category").
		Where("products.is_active = ?", true)

	if params.Sort == "category" || len(params.Categories) > 0 {
		q = q.Joins("LEFT JOIN categories ON categories.id = products.category_id")
	}
	if len(params.Categories) > 0 {
		q = q.Where("categories.name IN ?", params.Categories)
	}
	if params.Search != "" {
		term := "%" + strings.ToLower(params.Search) + "%"
		q = q.Where("(LOWER(products.name) LIKE ? OR LOWER(products.description) LIKE ?)", term, term)
	}

	if expr, ok := sortColumns[params.Sort]; ok {
		if strings.EqualFold(params.Direction, "desc") {
			expr += " DESC"
		}
		q = q.Order(expr)
	} else {
		q = q.Order("products.created_at DESC")
	}
	// stable tiebreak so equal keys keep a deterministic order
	q = q.Order("products.id")

	var items []models.Product
	if err := q.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("catalog: list products: %w", err)
	}
	return items, nil
}
