package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is the purchase header. Line items reference it through
// OrderItem.OrderID; there is no preloaded association traversal.
type Order struct {
	ID              uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	OrderNumber     string          `gorm:"column:order_number;not null;uniqueIndex"`
	UserID          uuid.UUID       `gorm:"column:user_id;type:uuid;not null;index"`
	TotalAmount     decimal.Decimal `gorm:"column:total_amount;type:numeric(12,2);not null"`
	Status          string          `gorm:"column:status;not null;default:pending"`
	ShippingAddress string          `gorm:"column:shipping_address"`
	BillingAddress  string          `gorm:"column:billing_address"`
	PaymentMethod   string          `gorm:"column:payment_method"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
