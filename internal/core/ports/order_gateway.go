package ports

import (
	"context"

	"github.com/lapiogga/clothing-opencode/internal/core/domain"
)

// OrderItemInput is one line of a new order.
type OrderItemInput struct {
	ItemID        int
	SpecID        *int
	Quantity      int
	PaymentMethod domain.PaymentMethod
}

// CreateOrderInput carries all data needed to place an order.
type CreateOrderInput struct {
	SalesOfficeID      int
	OrderType          domain.OrderType
	Items              []OrderItemInput
	DeliveryType       domain.DeliveryType
	DeliveryLocationID *int
	RecipientName      string
	RecipientPhone     string
	ShippingAddress    string
	DeliveryNote       string
}

// RefundInput carries a refund request for an existing order.
type RefundInput struct {
	Reason  string
	ItemIDs []int
}

// OrderFilters are the client-side filter fields merged into every order
// list request.
type OrderFilters struct {
	Status    string
	StartDate string
	EndDate   string
	Search    string
}

// ListOrdersQuery is the full parameter set for the order list endpoint.
type ListOrdersQuery struct {
	Filters  OrderFilters
	Page     int
	PageSize int
}

// OrderPage is the list envelope returned by the order list endpoint.
type OrderPage struct {
	Items []domain.Order `json:"items"`
	Total int            `json:"total"`
}

// OrderGateway wraps the order endpoints of the backend.
type OrderGateway interface {
	List(ctx context.Context, query ListOrdersQuery) (*OrderPage, error)
	Get(ctx context.Context, id int) (*domain.Order, error)
	Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int, status domain.OrderStatus) (*domain.Order, error)
	Cancel(ctx context.Context, id int, reason string) (*domain.Order, error)
	RequestRefund(ctx context.Context, id int, input RefundInput) (*domain.Order, error)
}
