package catalog

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront/internal/models"
)

// setupTestDB creates an in-memory SQLite database for testing. Foreign keys
// are switched on so the referential actions behave like PostgreSQL.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps the in-memory database and the pragma alive
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name, slug string) *models.Category {
	t.Helper()
	c := &models.Category{Name: name, Slug: slug}
	require.NoError(t, db.Create(c).Error)
	return c
}

type productSeed struct {
	name        string
	slug        string
	description string
	price       string
	category    *models.Category
	inactive    bool
	createdAt   time.Time
}

func seedProduct(t *testing.T, db *gorm.DB, s productSeed) *models.Product {
	t.Helper()
	price := decimal.Zero
	if s.price != "" {
		var err error
		price, err = decimal.NewFromString(s.price)
		require.NoError(t, err)
	}
	p := &models.Product{
		Name:        s.name,
		Slug:        s.slug,
		Description: s.description,
		Price:       price,
		InStock:     true,
		IsActive:    !s.inactive,
	}
	if s.category != nil {
		p.CategoryID = &s.category.ID
	}
	if !s.createdAt.IsZero() {
		p.CreatedAt = s.createdAt
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedUser(t *testing.T, db *gorm.DB, username string, superuser bool) *models.User {
	t.Helper()
	hash, err := models.HashPassword("secret123")
	require.NoError(t, err)
	u := &models.User{Username: username, Email: username + "@example.com", PasswordHash: hash, Superuser: superuser}
	require.NoError(t, db.Create(u).Error)
	return u
}
