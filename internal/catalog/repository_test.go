package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stridewell/storefront-backend/pkg/db/models"
	"github.com/stridewell/storefront-backend/pkg/pagination"
	"gorm.io/gorm"
)

func TestRepositoryCreateAssignsID(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)

	created, err := repo.Create(context.Background(), &models.Product{
		Name:     "Gel-Kayano 31",
		Category: "running",
		Brand:    "ASICS",
		IsActive: true,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	loaded, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gel-Kayano 31", loaded.Name)
}

func TestRepositoryFindActiveByIDSkipsInactive(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)

	inactive := newProduct(t, db, productOpts{active: false})

	_, err := repo.FindActiveByID(context.Background(), inactive.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	loaded, err := repo.FindByID(context.Background(), inactive.ID)
	require.NoError(t, err)
	assert.False(t, loaded.IsActive)
}

func TestRepositoryListPaginatedCountsAndPages(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)

	for i := 0; i < 25; i++ {
		newProduct(t, db, productOpts{active: true})
	}
	newProduct(t, db, productOpts{active: false})

	rows, count, err := repo.ListPaginated(context.Background(), listQuery{
		Pagination: pagination.Params{Page: 3, PerPage: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(25), count)
	assert.Len(t, rows, 5)

	rows, count, err = repo.ListPaginated(context.Background(), listQuery{
		Pagination: pagination.Params{Page: 4, PerPage: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(25), count)
	assert.Empty(t, rows)
}

func TestRepositoryListPaginatedFilters(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)

	desc := "Responsive cushioning for long distance"
	trail := newProduct(t, db, productOpts{name: "Gel-Trabuco", category: "trail", active: true})
	road := newProduct(t, db, productOpts{name: "Novablast 4", category: "running", active: true})
	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", road.ID).
		Update("description", desc).Error)
	newProduct(t, db, productOpts{name: "Gel-Trabuco Retired", category: "trail", active: false})

	category := "trail"
	rows, count, err := repo.ListPaginated(context.Background(), listQuery{
		Pagination: pagination.Params{Page: 1, PerPage: 10},
		Filters:    ListFilters{Category: &category},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, rows, 1)
	assert.Equal(t, trail.ID, rows[0].ID)

	rows, count, err = repo.ListPaginated(context.Background(), listQuery{
		Pagination: pagination.Params{Page: 1, PerPage: 10},
		Filters:    ListFilters{Search: "cushioning"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, rows, 1)
	assert.Equal(t, road.ID, rows[0].ID)
}

func TestRepositoryListFeatured(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)

	newProduct(t, db, productOpts{featured: true, active: true})
	newProduct(t, db, productOpts{featured: true, active: true})
	newProduct(t, db, productOpts{featured: true, active: false})
	newProduct(t, db, productOpts{featured: false, active: true})

	rows, err := repo.ListFeatured(context.Background(), 8)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = repo.ListFeatured(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestRepositoryListRelatedExcludesAnchor(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)

	anchor := newProduct(t, db, productOpts{category: "trail", active: true})
	sibling := newProduct(t, db, productOpts{category: "trail", active: true})
	newProduct(t, db, productOpts{category: "running", active: true})
	newProduct(t, db, productOpts{category: "trail", active: false})

	rows, err := repo.ListRelated(context.Background(), "trail", anchor.ID, 4)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, sibling.ID, rows[0].ID)
}

func TestRepositoryListCategoriesDistinctActive(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)

	newProduct(t, db, productOpts{category: "running", active: true})
	newProduct(t, db, productOpts{category: "running", active: true})
	newProduct(t, db, productOpts{category: "trail", active: true})
	newProduct(t, db, productOpts{category: "tennis", active: false})

	categories, err := repo.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"running", "trail"}, categories)
}
