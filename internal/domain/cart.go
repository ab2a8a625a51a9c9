package domain

import "time"

// Cart holds a user's pre-checkout selection. One cart per user, created on
// first item add; it survives checkout empty.
type Cart struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"userId"`
	TotalAmount float64    `json:"totalAmount"`
	Items       []CartItem `json:"cartItems"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// CartItem freezes its subtotal at add time; it is not repriced against the
// product's current price or discount.
type CartItem struct {
	ID        int64   `json:"id"`
	CartID    int64   `json:"cartId"`
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}
