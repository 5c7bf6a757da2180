package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lapiogga/clothing-opencode/internal/core/domain"
	"github.com/lapiogga/clothing-opencode/internal/core/ports"
)

// OrderGateway implements ports.OrderGateway over the /orders endpoints.
type OrderGateway struct {
	client *Client
}

func NewOrderGateway(client *Client) *OrderGateway {
	return &OrderGateway{client: client}
}

type orderItemRequest struct {
	ItemID        int    `json:"item_id"  validate:"required,gt=0"`
	SpecID        *int   `json:"spec_id,omitempty"`
	Quantity      int    `json:"quantity" validate:"required,gt=0"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=point voucher"`
}

type createOrderRequest struct {
	SalesOfficeID      int                `json:"sales_office_id" validate:"required,gt=0"`
	OrderType          string             `json:"order_type"      validate:"required,oneof=online offline"`
	Items              []orderItemRequest `json:"items"           validate:"required,min=1,dive"`
	DeliveryType       string             `json:"delivery_type,omitempty"       validate:"omitempty,oneof=parcel direct"`
	DeliveryLocationID *int               `json:"delivery_location_id,omitempty"`
	RecipientName      string             `json:"recipient_name,omitempty"`
	RecipientPhone     string             `json:"recipient_phone,omitempty"`
	ShippingAddress    string             `json:"shipping_address,omitempty"`
	DeliveryNote       string             `json:"delivery_note,omitempty"`
}

type orderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed processing shipped delivered received cancelled returned refunded"`
}

type cancelOrderRequest struct {
	Reason string `json:"reason,omitempty"`
}

type refundRequest struct {
	Reason  string `json:"reason" validate:"required"`
	ItemIDs []int  `json:"item_ids,omitempty"`
}

// List retrieves one page of orders.
func (g *OrderGateway) List(ctx context.Context, query ports.ListOrdersQuery) (*ports.OrderPage, error) {
	params := url.Values{}
	f := query.Filters
	if f.Status != "" {
		params.Set("status", f.Status)
	}
	if f.StartDate != "" {
		params.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		params.Set("end_date", f.EndDate)
	}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if query.Page > 0 {
		params.Set("page", strconv.Itoa(query.Page))
	}
	if query.PageSize > 0 {
		params.Set("page_size", strconv.Itoa(query.PageSize))
	}

	var page ports.OrderPage
	if err := g.client.do(ctx, http.MethodGet, "orders", "/orders", params, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get retrieves a single order.
func (g *OrderGateway) Get(ctx context.Context, id int) (*domain.Order, error) {
	var order domain.Order
	path := fmt.Sprintf("/orders/%d", id)
	if err := g.client.do(ctx, http.MethodGet, "orders", path, nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Create places a new order.
func (g *OrderGateway) Create(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	req := createOrderRequest{
		SalesOfficeID:      input.SalesOfficeID,
		OrderType:          string(input.OrderType),
		DeliveryType:       string(input.DeliveryType),
		DeliveryLocationID: input.DeliveryLocationID,
		RecipientName:      input.RecipientName,
		RecipientPhone:     input.RecipientPhone,
		ShippingAddress:    input.ShippingAddress,
		DeliveryNote:       input.DeliveryNote,
	}
	for _, item := range input.Items {
		req.Items = append(req.Items, orderItemRequest{
			ItemID:        item.ItemID,
			SpecID:        item.SpecID,
			Quantity:      item.Quantity,
			PaymentMethod: string(item.PaymentMethod),
		})
	}
	if err := validateSchema(req); err != nil {
		return nil, err
	}

	var order domain.Order
	if err := g.client.do(ctx, http.MethodPost, "orders", "/orders", nil, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus moves an order to a new status.
func (g *OrderGateway) UpdateStatus(ctx context.Context, id int, status domain.OrderStatus) (*domain.Order, error) {
	req := orderStatusRequest{Status: string(status)}
	if err := validateSchema(req); err != nil {
		return nil, err
	}

	var order domain.Order
	path := fmt.Sprintf("/orders/%d/status", id)
	if err := g.client.do(ctx, http.MethodPut, "order_status", path, nil, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Cancel cancels an order. Reason is optional.
func (g *OrderGateway) Cancel(ctx context.Context, id int, reason string) (*domain.Order, error) {
	var body any
	if reason != "" {
		body = cancelOrderRequest{Reason: reason}
	}

	var order domain.Order
	path := fmt.Sprintf("/orders/%d/cancel", id)
	if err := g.client.do(ctx, http.MethodPut, "order_cancel", path, nil, body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// RequestRefund files a refund request against a delivered order.
func (g *OrderGateway) RequestRefund(ctx context.Context, id int, input ports.RefundInput) (*domain.Order, error) {
	req := refundRequest{Reason: input.Reason, ItemIDs: input.ItemIDs}
	if err := validateSchema(req); err != nil {
		return nil, err
	}

	var order domain.Order
	path := fmt.Sprintf("/orders/%d/refund", id)
	if err := g.client.do(ctx, http.MethodPost, "order_refund", path, nil, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
