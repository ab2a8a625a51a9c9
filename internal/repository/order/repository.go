package order

import (
	"context"

	"ecommerce/internal/domain"
)

// CreateFromCartInput carries everything the checkout transaction needs. The
// item subtotals come from the cart unchanged; checkout does not reprice.
type CreateFromCartInput struct {
	UserID        int64
	CartID        int64
	Address       string
	PaymentMethod string
	TotalAmount   float64
	Items         []domain.CartItem
}

type Repository interface {
	// CreateFromCart converts a cart into an order as one atomic unit:
	// order row, item snapshots, stock decrements and cart clearing all
	// commit or roll back together.
	CreateFromCart(ctx context.Context, in CreateFromCartInput) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int64, page, limit int) ([]domain.Order, error)
	ListAll(ctx context.Context, page, limit int) ([]domain.Order, error)
	SetStatus(ctx context.Context, id int64, status string) (*domain.Order, error)
	// DeleteOwned removes an order only when userID owns it.
	DeleteOwned(ctx context.Context, id, userID int64) error
}
