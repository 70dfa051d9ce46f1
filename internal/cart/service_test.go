package cart

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stridewell/storefront-backend/internal/catalog"
	"github.com/stridewell/storefront-backend/pkg/db/models"
	pkgerrors "github.com/stridewell/storefront-backend/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newCartTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
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
	require.NoError(t, conn.Exec(products).Error)

	svc, err := NewService(catalog.NewRepository(conn))
	require.NoError(t, err)
	return svc, conn
}

func TestAddValidatesProduct(t *testing.T) {
	svc, conn := newCartTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	product := &models.Product{
		ID:       uuid.New(),
		Name:     "Gel-Kayano 31",
		Price:    decimal.NewFromInt(165),
		Category: "running",
		Brand:    "ASICS",
		IsActive: true,
	}
	require.NoError(t, conn.Create(product).Error)

	require.NoError(t, svc.Add(ctx, userID, product.ID, 1))

	err := svc.Add(ctx, userID, uuid.New(), 1)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())

	err = svc.Add(ctx, userID, product.ID, 0)
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestCartStateless(t *testing.T) {
	svc, conn := newCartTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	product := &models.Product{
		ID:       uuid.New(),
		Name:     "Gel-Nimbus 26",
		Price:    decimal.NewFromInt(160),
		Category: "running",
		Brand:    "ASICS",
		IsActive: true,
	}
	require.NoError(t, conn.Create(product).Error)

	require.NoError(t, svc.Add(ctx, userID, product.ID, 2))

	items, err := svc.Items(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, svc.Remove(ctx, userID, product.ID))
	require.NoError(t, svc.Clear(ctx, userID))
}
