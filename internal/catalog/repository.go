package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/stridewell/storefront-backend/pkg/db/models"
	"github.com/stridewell/storefront-backend/pkg/pagination"
	"gorm.io/gorm"
)

// ListFilters narrows paginated catalog queries.
type ListFilters struct {
	Category *string
	Search   string
}

type listQuery struct {
	Pagination pagination.Params
	Filters    ListFilters
}

// Repository wires together all catalog persistence helpers.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create inserts a new product row, assigning an ID when the caller left
// it unset.
func (r *Repository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Save writes the full product row back.
func (r *Repository) Save(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// FindByID loads the product regardless of its active flag.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindActiveByID loads the product only when it is still active.
func (r *Repository) FindActiveByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		First(&product, "id = ? AND is_active = ?", id, true).
		Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ListPaginated counts and pages active products matching the filters.
func (r *Repository) ListPaginated(ctx context.Context, query listQuery) ([]models.Product, int64, error) {
	params := query.Pagination.Normalize()

	qb := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("is_active = ?", true)

	if query.Filters.Category != nil {
		qb = qb.Where("category = ?", *query.Filters.Category)
	}
	if search := strings.TrimSpace(query.Filters.Search); search != "" {
		pattern := "%" + search + "%"
		qb = qb.Where("(name LIKE ? OR description LIKE ?)", pattern, pattern)
	}

	var count int64
	if err := qb.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Product
	err := qb.
		Order("created_at DESC").
		Order("id").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&rows).
		Error
	if err != nil {
		return nil, 0, err
	}
	return rows, count, nil
}

// ListFeatured returns active featured products, newest first.
func (r *Repository) ListFeatured(ctx context.Context, limit int) ([]models.Product, error) {
	var rows []models.Product
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND is_featured = ?", true, true).
		Order("created_at DESC").
		Order("id").
		Limit(limit).
		Find(&rows).
		Error
	return rows, err
}

// ListRelated returns active products sharing the category, excluding the
// anchor product itself.
func (r *Repository) ListRelated(ctx context.Context, category string, excludeID uuid.UUID, limit int) ([]models.Product, error) {
	var rows []models.Product
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND category = ? AND id <> ?", true, category, excludeID).
		Order("created_at DESC").
		Order("id").
		Limit(limit).
		Find(&rows).
		Error
	return rows, err
}

// ListCategories returns the distinct categories of active products.
func (r *Repository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("is_active = ?", true).
		Distinct().
		Order("category").
		Pluck("category", &categories).
		Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
