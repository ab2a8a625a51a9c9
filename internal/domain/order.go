package domain

import "time"

// Known order statuses. The column itself is an open string settable by
// admins; these are the values the storefront uses.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Order is the immutable result of a checkout. Items are a point-in-time
// snapshot of the cart; later catalog changes never alter them.
type Order struct {
	ID            int64       `json:"id"`
	UserID        int64       `json:"userId"`
	TotalAmount   float64     `json:"totalAmount"`
	Status        string      `json:"status"`
	Address       string      `json:"address,omitempty"`
	PaymentMethod string      `json:"paymentMethod,omitempty"`
	Items         []OrderItem `json:"orderItems"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// OrderItem keeps a weak product reference: the product may be deleted later
// without touching the snapshot, in which case ProductID is nil.
type OrderItem struct {
	ID        int64   `json:"id"`
	OrderID   int64   `json:"orderId"`
	ProductID *int64  `json:"productId,omitempty"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}
