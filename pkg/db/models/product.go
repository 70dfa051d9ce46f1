package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a sellable catalog item. Rows are soft-deleted by
// flipping IsActive; nothing in the application removes them physically.
type Product struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	Name          string          `gorm:"column:name;not null;index"`
	Description   *string         `gorm:"column:description"`
	Price         decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	Category      string          `gorm:"column:category;not null;index"`
	Brand         string          `gorm:"column:brand;not null"`
	Size          *string         `gorm:"column:size"`
	Color         *string         `gorm:"column:color"`
	ImageURL      *string         `gorm:"column:image_url"`
	StockQuantity int             `gorm:"column:stock_quantity;not null;default:0"`
	IsFeatured    bool            `gorm:"column:is_featured;not null;default:false"`
	IsActive      bool            `gorm:"column:is_active;not null;default:true"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
}
