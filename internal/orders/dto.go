package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stridewell/storefront-backend/pkg/db/models"
)

// OrderLineInput is one requested purchase line. Price is the unit price
// captured when the line entered the cart.
type OrderLineInput struct {
	ProductID uuid.UUID
	Quantity  int
	Price     decimal.Decimal
}

// CreateOrderInput holds the validated payload to place an order.
type CreateOrderInput struct {
	Lines           []OrderLineInput
	ShippingAddress string
	BillingAddress  string
	PaymentMethod   string
}

// OrderItemDTO is one purchased line as returned to API consumers.
type OrderItemDTO struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// OrderDTO is the order representation returned to API consumers.
type OrderDTO struct {
	ID              uuid.UUID       `json:"id"`
	OrderNumber     string          `json:"order_number"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          string          `json:"status"`
	ShippingAddress string          `json:"shipping_address,omitempty"`
	BillingAddress  string          `json:"billing_address,omitempty"`
	PaymentMethod   string          `json:"payment_method,omitempty"`
	Items           []OrderItemDTO  `json:"items,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// NewOrderDTO maps an order row plus its items into the API shape.
func NewOrderDTO(order *models.Order, items []models.OrderItem) *OrderDTO {
	if order == nil {
		return nil
	}
	dto := &OrderDTO{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		TotalAmount:     order.TotalAmount,
		Status:          order.Status,
		ShippingAddress: order.ShippingAddress,
		BillingAddress:  order.BillingAddress,
		PaymentMethod:   order.PaymentMethod,
		CreatedAt:       order.CreatedAt,
	}
	for _, item := range items {
		dto.Items = append(dto.Items, OrderItemDTO{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return dto
}
