package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stridewell/storefront-backend/pkg/db/models"
	pkgerrors "github.com/stridewell/storefront-backend/pkg/errors"
	"github.com/stridewell/storefront-backend/pkg/pagination"
	"gorm.io/gorm"
)

const (
	// DefaultFeaturedLimit is used when a featured query omits the limit.
	DefaultFeaturedLimit = 8
	// MaxFeaturedLimit caps a featured query.
	MaxFeaturedLimit = 20
	// DefaultRelatedLimit is used when a related query omits the limit.
	DefaultRelatedLimit = 4
	// MaxRelatedLimit caps a related query.
	MaxRelatedLimit = 20
)

// Service exposes catalog read and admin write operations.
type Service interface {
	ListPaginated(ctx context.Context, input ListPaginatedInput) (*ListResult, error)
	ListFeatured(ctx context.Context, limit int) ([]ProductDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
	ListRelated(ctx context.Context, id uuid.UUID, limit int) ([]ProductDTO, error)
	ListCategories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// ListPaginatedInput holds the catalog browse query.
type ListPaginatedInput struct {
	Category   *string
	Search     string
	Pagination pagination.Params
}

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	Name          string
	Description   *string
	Price         decimal.Decimal
	Category      string
	Brand         string
	Size          *string
	Color         *string
	ImageURL      *string
	StockQuantity int
	IsFeatured    bool
}

// UpdateProductInput holds optional mutation values for a product. Nil
// fields are left untouched.
type UpdateProductInput struct {
	Name          *string
	Description   *string
	Price         *decimal.Decimal
	Category      *string
	Brand         *string
	Size          *string
	Color         *string
	ImageURL      *string
	StockQuantity *int
	IsFeatured    *bool
	IsActive      *bool
}

// service implements the catalog service.
type service struct {
	repo         *Repository
	defaultBrand string
}

// NewService constructs a catalog service instance.
func NewService(repo *Repository, defaultBrand string) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo, defaultBrand: defaultBrand}, nil
}

// ListPaginated returns one page of active products with totals.
func (s *service) ListPaginated(ctx context.Context, input ListPaginatedInput) (*ListResult, error) {
	params := input.Pagination.Normalize()

	var category *string
	if input.Category != nil {
		if trimmed := strings.TrimSpace(*input.Category); trimmed != "" {
			category = &trimmed
		}
	}

	rows, count, err := s.repo.ListPaginated(ctx, listQuery{
		Pagination: params,
		Filters: ListFilters{
			Category: category,
			Search:   input.Search,
		},
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}

	return &ListResult{
		Products:   newProductDTOs(rows),
		Total:      count,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: pagination.TotalPages(count, params.PerPage),
	}, nil
}

// ListFeatured returns active featured products.
func (s *service) ListFeatured(ctx context.Context, limit int) ([]ProductDTO, error) {
	limit = pagination.ClampLimit(limit, DefaultFeaturedLimit, MaxFeaturedLimit)
	rows, err := s.repo.ListFeatured(ctx, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list featured products")
	}
	return newProductDTOs(rows), nil
}

// GetByID returns the active product or a not-found error.
func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	product, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return NewProductDTO(product), nil
}

// ListRelated returns other active products in the anchor's category.
func (s *service) ListRelated(ctx context.Context, id uuid.UUID, limit int) ([]ProductDTO, error) {
	limit = pagination.ClampLimit(limit, DefaultRelatedLimit, MaxRelatedLimit)

	anchor, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	rows, err := s.repo.ListRelated(ctx, anchor.Category, anchor.ID, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list related products")
	}
	return newProductDTOs(rows), nil
}

// ListCategories returns the distinct categories of active products.
func (s *service) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list categories")
	}
	return categories, nil
}

// Create validates and inserts a new product.
func (s *service) Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category is required")
	}
	if input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be non-negative")
	}
	if input.StockQuantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock_quantity must be non-negative")
	}

	brand := strings.TrimSpace(input.Brand)
	if brand == "" {
		brand = s.defaultBrand
	}

	product := &models.Product{
		Name:          name,
		Description:   input.Description,
		Price:         input.Price,
		Category:      category,
		Brand:         brand,
		Size:          input.Size,
		Color:         input.Color,
		ImageURL:      input.ImageURL,
		StockQuantity: input.StockQuantity,
		IsFeatured:    input.IsFeatured,
		IsActive:      true,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert product")
	}
	return NewProductDTO(created), nil
}

// Update applies the provided fields to an existing product. The lookup is
// not scoped to active rows so a deactivated product can be restored.
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
	}
	if input.Category != nil && strings.TrimSpace(*input.Category) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category cannot be empty")
	}
	if input.Price != nil && input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be non-negative")
	}
	if input.StockQuantity != nil && *input.StockQuantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock_quantity must be non-negative")
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	applyUpdateToProduct(product, input)

	updated, err := s.repo.Save(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update product")
	}
	return NewProductDTO(updated), nil
}

// Deactivate soft-deletes a product by clearing its active flag.
func (s *service) Deactivate(ctx context.Context, id uuid.UUID) error {
	inactive := false
	_, err := s.Update(ctx, id, UpdateProductInput{IsActive: &inactive})
	return err
}

func applyUpdateToProduct(product *models.Product, input UpdateProductInput) {
	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Category != nil {
		product.Category = strings.TrimSpace(*input.Category)
	}
	if input.Brand != nil {
		product.Brand = strings.TrimSpace(*input.Brand)
	}
	if input.Size != nil {
		product.Size = input.Size
	}
	if input.Color != nil {
		product.Color = input.Color
	}
	if input.ImageURL != nil {
		product.ImageURL = input.ImageURL
	}
	if input.StockQuantity != nil {
		product.StockQuantity = *input.StockQuantity
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
}
