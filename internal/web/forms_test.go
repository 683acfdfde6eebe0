package web

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront/internal/catalog"
	"storefront/internal/models"
)

func newTestCatalog(t *testing.T) (*catalog.Catalog, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.All()...))
	return catalog.New(db), db
}

func TestProductFormApply(t *testing.T) {
	cat, db := newTestCatalog(t)
	kitchen := models.Category{Name: "Kitchen", Slug: "kitchen"}
	require.NoError(t, db.Create(&kitchen).Error)

	t.Run("derives the slug from the name", func(t *testing.T) {
		f := ProductForm{Name: "Walnut Coffee Table", Price: "129.50", InStock: true, IsActive: true}
		var p models.Product
		errs, err := f.apply(&p, cat)
		require.NoError(t, err)
		require.Empty(t, errs)
		assert.Equal(t, "walnut-coffee-table", p.Slug)
		assert.Equal(t, "129.50", p.Price.StringFixed(2))
	})

	t.Run("normalizes an explicit slug", func(t *testing.T) {
		f := ProductForm{Name: "Lamp", Slug: "Brass LAMP!", Price: "30"}
		var p models.Product
		errs, err := f.apply(&p, cat)
		require.NoError(t, err)
		require.Empty(t, errs)
		assert.Equal(t, "brass-lamp", p.Slug)
	})

	t.Run("accepts a decimal comma", func(t *testing.T) {
		f := ProductForm{Name: "Chair", Price: "49,90"}
		var p models.Product
		errs, err := f.apply(&p, cat)
		require.NoError(t, err)
		require.Empty(t, errs)
		assert.Equal(t, "49.90", p.Price.StringFixed(2))
	})

	t.Run("collects field errors", func(t *testing.T) {
		f := ProductForm{Price: "-3", Rating: "9", CategoryID: "999"}
		var p models.Product
		errs, err := f.apply(&p, cat)
		require.NoError(t, err)
		assert.Contains(t, errs, "Name")
		assert.Contains(t, errs, "Price")
		assert.Contains(t, errs, "Rating")
		assert.Contains(t, errs, "Category")
	})

	t.Run("resolves a valid category", func(t *testing.T) {
		f := ProductForm{Name: "Pan", Price: "10", CategoryID: fmt.Sprint(kitchen.ID)}
		var p models.Product
		errs, err := f.apply(&p, cat)
		require.NoError(t, err)
		require.Empty(t, errs)
		require.NotNil(t, p.CategoryID)
		assert.Equal(t, kitchen.ID, *p.CategoryID)
	})
}

func TestReviewFormApply(t *testing.T) {
	t.Run("rating defaults to 3", func(t *testing.T) {
		f := ReviewForm{Title: "Fine", Body: "It does the job."}
		var r models.ProductReview
		require.Empty(t, f.apply(&r))
		assert.Equal(t, 3, r.Rating)
	})

	t.Run("rating out of range is rejected", func(t *testing.T) {
		f := ReviewForm{Title: "Fine", Body: "x", Rating: "6"}
		var r models.ProductReview
		assert.Contains(t, f.apply(&r), "Rating")
	})

	t.Run("title and body are required", func(t *testing.T) {
		f := ReviewForm{}
		var r models.ProductReview
		errs := f.apply(&r)
		assert.Contains(t, errs, "Title")
		assert.Contains(t, errs, "Body")
	})
}
