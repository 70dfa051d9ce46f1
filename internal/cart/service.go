package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/stridewell/storefront-backend/pkg/db/models"
	pkgerrors "github.com/stridewell/storefront-backend/pkg/errors"
	"gorm.io/gorm"
)

type productReader interface {
	FindActiveByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// Service is the cart surface. Carts live entirely on the client; the
// server validates additions but persists nothing, so Items is always
// empty and Remove/Clear acknowledge without touching state.
type Service interface {
	Items(ctx context.Context, userID uuid.UUID) ([]ItemDTO, error)
	Add(ctx context.Context, userID, productID uuid.UUID, quantity int) error
	Remove(ctx context.Context, userID, productID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

// ItemDTO is one cart line as returned to API consumers.
type ItemDTO struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

type service struct {
	products productReader
}

// NewService constructs a cart service instance.
func NewService(products productReader) (Service, error) {
	if products == nil {
		return nil, fmt.Errorf("product reader required")
	}
	return &service{products: products}, nil
}

// Items always reports an empty cart.
func (s *service) Items(ctx context.Context, userID uuid.UUID) ([]ItemDTO, error) {
	return []ItemDTO{}, nil
}

// Add verifies the product exists and is purchasable, then discards the
// line.
func (s *service) Add(ctx context.Context, userID, productID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	if _, err := s.products.FindActiveByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return nil
}

// Remove acknowledges without touching state.
func (s *service) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	return nil
}

// Clear acknowledges without touching state.
func (s *service) Clear(ctx context.Context, userID uuid.UUID) error {
	return nil
}
