package seed

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stridewell/storefront-backend/internal/catalog"
	"github.com/stridewell/storefront-backend/internal/users"
	"github.com/stridewell/storefront-backend/pkg/config"
	"github.com/stridewell/storefront-backend/pkg/db"
	"github.com/stridewell/storefront-backend/pkg/db/models"
	"github.com/stridewell/storefront-backend/pkg/logger"
	"github.com/stridewell/storefront-backend/pkg/security"
	"gorm.io/gorm"
)

// AdminEmail is the seeded administrator login.
const AdminEmail = "admin@asicsstore.com"

const adminPassword = "admin123"

type sampleProduct struct {
	name        string
	description string
	price       string
	category    string
	size        string
	color       string
	imageURL    string
	stock       int
	featured    bool
}

var sampleProducts = []sampleProduct{
	{
		name:        "ASICS GEL-KAYANO 30",
		description: "Premium stability running shoe with advanced cushioning technology",
		price:       "159.99",
		category:    "Running",
		size:        "US 9",
		color:       "Black/White",
		imageURL:    "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400&h=400&fit=crop",
		stock:       25,
		featured:    true,
	},
	{
		name:        "ASICS GEL-NIMBUS 25",
		description: "Maximum cushioning for long-distance running comfort",
		price:       "149.99",
		category:    "Running",
		size:        "US 10",
		color:       "Blue/Silver",
		imageURL:    "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=400&h=400&fit=crop",
		stock:       30,
		featured:    true,
	},
	{
		name:        "ASICS GEL-CUMULUS 25",
		description: "Versatile daily trainer with responsive cushioning",
		price:       "129.99",
		category:    "Running",
		size:        "US 8.5",
		color:       "Gray/Orange",
		imageURL:    "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=400&h=400&fit=crop",
		stock:       20,
		featured:    true,
	},
	{
		name:        "ASICS COURT FF 3",
		description: "Professional tennis shoe with superior court grip",
		price:       "139.99",
		category:    "Tennis",
		size:        "US 9.5",
		color:       "White/Navy",
		imageURL:    "https://images.unsplash.com/photo-1551107696-a4b0c5a0d9a2?w=400&h=400&fit=crop",
		stock:       15,
	},
	{
		name:        "ASICS GEL-RESOLUTION 9",
		description: "Durable tennis shoe built for aggressive players",
		price:       "149.99",
		category:    "Tennis",
		size:        "US 10.5",
		color:       "Black/Red",
		imageURL:    "https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?w=400&h=400&fit=crop",
		stock:       18,
	},
	{
		name:        "ASICS METARISE",
		description: "High-performance volleyball shoe with exceptional jump support",
		price:       "119.99",
		category:    "Volleyball",
		size:        "US 9",
		color:       "White/Blue",
		imageURL:    "https://images.unsplash.com/photo-1544966503-7cc5ac882d5f?w=400&h=400&fit=crop",
		stock:       12,
	},
	{
		name:        "ASICS UPCOURT 5",
		description: "Affordable indoor court shoe for multiple sports",
		price:       "79.99",
		category:    "Volleyball",
		size:        "US 8",
		color:       "Black/White",
		imageURL:    "https://images.unsplash.com/photo-1460353581641-37baddab0fa2?w=400&h=400&fit=crop",
		stock:       22,
	},
	{
		name:        "ASICS NOVABLAST 4",
		description: "Energy-returning running shoe for dynamic workouts",
		price:       "139.99",
		category:    "Running",
		size:        "US 11",
		color:       "Green/Black",
		imageURL:    "https://images.unsplash.com/photo-1608231387042-66d1773070a5?w=400&h=400&fit=crop",
		stock:       16,
		featured:    true,
	},
}

// Seeder populates the sample catalog and the admin account.
type Seeder struct {
	dbClient    *db.Client
	passwordCfg config.PasswordConfig
	logg        *logger.Logger
}

// New constructs a seeder.
func New(dbClient *db.Client, passwordCfg config.PasswordConfig, logg *logger.Logger) (*Seeder, error) {
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &Seeder{dbClient: dbClient, passwordCfg: passwordCfg, logg: logg}, nil
}

// Run is idempotent: when any product already exists it does nothing.
func (s *Seeder) Run(ctx context.Context) error {
	var count int64
	if err := s.dbClient.DB().WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("counting products: %w", err)
	}
	if count > 0 {
		if s.logg != nil {
			s.logg.Info(ctx, "seed skipped, catalog already populated")
		}
		return nil
	}

	adminHash, err := security.HashPassword(adminPassword, s.passwordCfg)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		catalogRepo := catalog.NewRepository(tx)
		for _, sample := range sampleProducts {
			description := sample.description
			size := sample.size
			color := sample.color
			imageURL := sample.imageURL
			product := &models.Product{
				Name:          sample.name,
				Description:   &description,
				Price:         decimal.RequireFromString(sample.price),
				Category:      sample.category,
				Brand:         "ASICS",
				Size:          &size,
				Color:         &color,
				ImageURL:      &imageURL,
				StockQuantity: sample.stock,
				IsFeatured:    sample.featured,
				IsActive:      true,
			}
			if _, err := catalogRepo.Create(ctx, product); err != nil {
				return fmt.Errorf("inserting product %q: %w", sample.name, err)
			}
		}

		fullName := "Store Administrator"
		admin := &models.User{
			Email:        AdminEmail,
			Username:     "admin",
			PasswordHash: adminHash,
			FullName:     &fullName,
			IsActive:     true,
			IsAdmin:      true,
		}
		if _, err := users.NewRepository(tx).Create(ctx, admin); err != nil {
			return fmt.Errorf("inserting admin user: %w", err)
		}
		return nil
	}); err != nil {
		return err
	}

	if s.logg != nil {
		ctx = s.logg.WithField(ctx, "products", len(sampleProducts))
		s.logg.Info(ctx, "seed completed")
	}
	return nil
}
