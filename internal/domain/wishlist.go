package domain

// Wishlist is a per-user saved-product set, created lazily on first access.
type Wishlist struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"userId"`
	Products []Product `json:"products"`
}
