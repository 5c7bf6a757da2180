package domain

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderReceived   OrderStatus = "received"
	OrderCancelled  OrderStatus = "cancelled"
	OrderReturned   OrderStatus = "returned"
	OrderRefunded   OrderStatus = "refunded"
)

// statusLabels maps each status to its display label.
var statusLabels = map[OrderStatus]string{
	OrderPending:    "주문대기",
	OrderConfirmed:  "주문확인",
	OrderProcessing: "상품준비중",
	OrderShipped:    "배송중",
	OrderDelivered:  "배송완료",
	OrderReceived:   "수령완료",
	OrderCancelled:  "주문취소",
	OrderReturned:   "반품",
	OrderRefunded:   "반품완료",
}

// Label returns the human-readable label for s, or the raw status string
// when no label is defined.
func (s OrderStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// OrderType distinguishes online orders from offline point-of-sale ones.
type OrderType string

const (
	OrderOnline  OrderType = "online"
	OrderOffline OrderType = "offline"
)

// PaymentMethod is how a line item was paid for.
type PaymentMethod string

const (
	PaymentPoint   PaymentMethod = "point"
	PaymentVoucher PaymentMethod = "voucher"
)

// DeliveryType is how an order reaches the customer.
type DeliveryType string

const (
	DeliveryParcel DeliveryType = "parcel"
	DeliveryDirect DeliveryType = "direct"
)

// OrderItem is a single line of an order.
type OrderItem struct {
	ID            int           `json:"id"`
	ItemID        int           `json:"item_id"`
	ItemName      string        `json:"item_name,omitempty"`
	SpecID        *int          `json:"spec_id,omitempty"`
	SpecSize      string        `json:"spec_size,omitempty"`
	Quantity      int           `json:"quantity"`
	UnitPrice     int           `json:"unit_price"`
	TotalPrice    int           `json:"total_price"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	IsReturned    bool          `json:"is_returned"`
}

// Delivery is the shipping record attached to a parcel order.
type Delivery struct {
	ID              int          `json:"id"`
	DeliveryType    DeliveryType `json:"delivery_type"`
	Status          string       `json:"status"`
	RecipientName   string       `json:"recipient_name,omitempty"`
	RecipientPhone  string       `json:"recipient_phone,omitempty"`
	ShippingAddress string       `json:"shipping_address,omitempty"`
	TrackingNumber  string       `json:"tracking_number,omitempty"`
	ShippedAt       *time.Time   `json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time   `json:"delivered_at,omitempty"`
}

// Order is an order as returned by the backend.
type Order struct {
	ID                int         `json:"id"`
	OrderNumber       string      `json:"order_number"`
	UserID            int         `json:"user_id"`
	SalesOfficeID     int         `json:"sales_office_id"`
	OrderType         OrderType   `json:"order_type"`
	Status            OrderStatus `json:"status"`
	TotalAmount       int         `json:"total_amount"`
	UsedPoint         int         `json:"used_point"`
	UsedVoucherAmount int         `json:"used_voucher_amount"`
	OrderedAt         time.Time   `json:"ordered_at"`
	Items             []OrderItem `json:"items"`
	Delivery          *Delivery   `json:"delivery,omitempty"`
}
