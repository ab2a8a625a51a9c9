package cart

import (
	"context"

	"ecommerce/internal/domain"
)

// ItemInput is a priced cart line ready to persist; the subtotal was computed
// by the service at add time and is stored verbatim.
type ItemInput struct {
	ProductID int64
	Quantity  int
	Subtotal  float64
}

type Repository interface {
	GetByUser(ctx context.Context, userID int64) (*domain.Cart, error)
	// CreateWithItems creates the user's cart together with its initial
	// items as one transaction.
	CreateWithItems(ctx context.Context, userID int64, items []ItemInput) (*domain.Cart, error)
	// ReplaceItems drops every existing item and installs the given set
	// (full-replace semantics, not a merge).
	ReplaceItems(ctx context.Context, cartID int64, items []ItemInput) (*domain.Cart, error)
	Delete(ctx context.Context, cartID int64) error
}
