package catalog

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stridewell/storefront-backend/pkg/db/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	products := `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  price NUMERIC NOT NULL,
  category TEXT NOT NULL,
  brand TEXT NOT NULL,
  size TEXT,
  color TEXT,
  image_url TEXT,
  stock_quantity INTEGER NOT NULL DEFAULT 0,
  is_featured INTEGER NOT NULL DEFAULT 0,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(products).Error)
	return db
}

type productOpts struct {
	name     string
	category string
	featured bool
	active   bool
	price    string
}

func newProduct(t *testing.T, db *gorm.DB, opts productOpts) *models.Product {
	t.Helper()

	if opts.name == "" {
		opts.name = fmt.Sprintf("Product %s", uuid.NewString()[:8])
	}
	if opts.category == "" {
		opts.category = "running"
	}
	if opts.price == "" {
		opts.price = "120.00"
	}

	product := &models.Product{
		ID:            uuid.New(),
		Name:          opts.name,
		Price:         decimal.RequireFromString(opts.price),
		Category:      opts.category,
		Brand:         "ASICS",
		StockQuantity: 10,
		IsFeatured:    opts.featured,
		IsActive:      opts.active,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
