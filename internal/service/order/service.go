package order

import (
	"context"
	"errors"
	"strings"

	"ecommerce/internal/domain"
	orderrepo "ecommerce/internal/repository/order"
)

// TaxRate is the flat rate applied to the cart subtotal at checkout.
const TaxRate = 0.10

type Service struct {
	orders orderRepo
	carts  cartRepo
}

type orderRepo interface {
	CreateFromCart(ctx context.Context, in orderrepo.CreateFromCartInput) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int64, page, limit int) ([]domain.Order, error)
	ListAll(ctx context.Context, page, limit int) ([]domain.Order, error)
	SetStatus(ctx context.Context, id int64, status string) (*domain.Order, error)
	DeleteOwned(ctx context.Context, id, userID int64) error
}

type cartRepo interface {
	GetByUser(ctx context.Context, userID int64) (*domain.Cart, error)
}

func New(orders orderrepo.Repository, carts cartRepo) *Service {
	return &Service{orders: orders, carts: carts}
}

// CheckoutInput carries the order details supplied by the client. The payment
// method is an opaque string; no payment processing happens here.
type CheckoutInput struct {
	Address       string `json:"address"`
	PaymentMethod string `json:"paymentMethod"`
}

// Checkout converts the user's cart into an order. Totals are computed from
// the frozen cart subtotals plus tax; stock checks, item snapshots, stock
// decrements and cart clearing run as one transaction in the repository, so
// a failure at any point leaves everything untouched.
func (s *Service) Checkout(ctx context.Context, userID int64, in CheckoutInput) (*domain.Order, error) {
	if strings.TrimSpace(in.Address) == "" {
		return nil, &domain.ValidationError{Reason: "address required"}
	}
	if strings.TrimSpace(in.PaymentMethod) == "" {
		return nil, &domain.ValidationError{Reason: "payment method required"}
	}

	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrEmptyCart
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	subtotal := 0.0
	for _, item := range cart.Items {
		subtotal += item.Subtotal
	}
	total := subtotal + subtotal*TaxRate

	return s.orders.CreateFromCart(ctx, orderrepo.CreateFromCartInput{
		UserID:        userID,
		CartID:        cart.ID,
		Address:       strings.TrimSpace(in.Address),
		PaymentMethod: strings.TrimSpace(in.PaymentMethod),
		TotalAmount:   total,
		Items:         cart.Items,
	})
}

func (s *Service) Get(ctx context.Context, orderID int64) (*domain.Order, error) {
	return s.orders.GetByID(ctx, orderID)
}

func (s *Service) ListForUser(ctx context.Context, userID int64, page, limit int) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID, page, limit)
}

// ListAll returns a page of every order; the handler gates it to admins.
func (s *Service) ListAll(ctx context.Context, page, limit int) ([]domain.Order, error) {
	return s.orders.ListAll(ctx, page, limit)
}

// SetStatus is an unconstrained admin override: any non-empty status string
// is accepted, with no transition graph.
func (s *Service) SetStatus(ctx context.Context, orderID int64, status string) (*domain.Order, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, &domain.ValidationError{Reason: "status required"}
	}
	return s.orders.SetStatus(ctx, orderID, status)
}

// Delete removes an order the requester owns. Unlike other admin deletes this
// is an ownership check, not a role check.
func (s *Service) Delete(ctx context.Context, orderID, userID int64) error {
	return s.orders.DeleteOwned(ctx, orderID, userID)
}
