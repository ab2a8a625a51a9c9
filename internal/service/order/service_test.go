package order

import (
	"context"
	"errors"
	"math"
	"testing"

	"ecommerce/internal/domain"
	orderrepo "ecommerce/internal/repository/order"
)

type stubOrderRepo struct {
	order      *domain.Order
	createErr  error
	lastCreate orderrepo.CreateFromCartInput
	statusErr  error
	lastStatus string
	deleteErr  error
}

func (s *stubOrderRepo) CreateFromCart(_ context.Context, in orderrepo.CreateFromCartInput) (*domain.Order, error) {
	s.lastCreate = in
	return s.order, s.createErr
}

func (s *stubOrderRepo) GetByID(_ context.Context, _ int64) (*domain.Order, error) {
	return s.order, nil
}

func (s *stubOrderRepo) ListByUser(_ context.Context, _ int64, _, _ int) ([]domain.Order, error) {
	return nil, nil
}

func (s *stubOrderRepo) ListAll(_ context.Context, _, _ int) ([]domain.Order, error) {
	return nil, nil
}

func (s *stubOrderRepo) SetStatus(_ context.Context, _ int64, status string) (*domain.Order, error) {
	s.lastStatus = status
	return s.order, s.statusErr
}

func (s *stubOrderRepo) DeleteOwned(_ context.Context, _, _ int64) error { return s.deleteErr }

type stubCartRepo struct {
	cart *domain.Cart
	err  error
}

func (s *stubCartRepo) GetByUser(_ context.Context, _ int64) (*domain.Cart, error) {
	return s.cart, s.err
}

func TestCheckout_TotalIncludesTax(t *testing.T) {
	orders := &stubOrderRepo{order: &domain.Order{ID: 1}}
	carts := &stubCartRepo{cart: &domain.Cart{
		ID:     4,
		UserID: 7,
		Items: []domain.CartItem{
			{ProductID: 1, Quantity: 11, Subtotal: 20.0},
			{ProductID: 2, Quantity: 15, Subtotal: 15.0},
		},
	}}
	svc := New(orders, carts)

	_, err := svc.Checkout(context.Background(), 7, CheckoutInput{Address: "1 Main St", PaymentMethod: "card"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 35.00 in line subtotals plus 10% tax.
	if math.Abs(orders.lastCreate.TotalAmount-38.5) > 1e-9 {
		t.Fatalf("expected total 38.5, got %f", orders.lastCreate.TotalAmount)
	}
	if orders.lastCreate.CartID != 4 {
		t.Fatalf("expected cart 4, got %d", orders.lastCreate.CartID)
	}
	if len(orders.lastCreate.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(orders.lastCreate.Items))
	}
}

func TestCheckout_MissingCart(t *testing.T) {
	svc := New(&stubOrderRepo{}, &stubCartRepo{err: domain.ErrNotFound})

	_, err := svc.Checkout(context.Background(), 7, CheckoutInput{Address: "1 Main St", PaymentMethod: "card"})
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected empty cart error, got %v", err)
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc := New(&stubOrderRepo{}, &stubCartRepo{cart: &domain.Cart{ID: 4, UserID: 7}})

	_, err := svc.Checkout(context.Background(), 7, CheckoutInput{Address: "1 Main St", PaymentMethod: "card"})
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected empty cart error, got %v", err)
	}
}

func TestCheckout_MissingAddress(t *testing.T) {
	svc := New(&stubOrderRepo{}, &stubCartRepo{})

	_, err := svc.Checkout(context.Background(), 7, CheckoutInput{PaymentMethod: "card"})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCheckout_InsufficientStockPropagates(t *testing.T) {
	stockErr := &domain.InsufficientStockError{Products: []string{"Widget", "Gadget"}}
	orders := &stubOrderRepo{createErr: stockErr}
	carts := &stubCartRepo{cart: &domain.Cart{
		ID:     4,
		UserID: 7,
		Items:  []domain.CartItem{{ProductID: 1, Quantity: 11, Subtotal: 20.0}},
	}}
	svc := New(orders, carts)

	_, err := svc.Checkout(context.Background(), 7, CheckoutInput{Address: "1 Main St", PaymentMethod: "card"})
	var ise *domain.InsufficientStockError
	if !errors.As(err, &ise) {
		t.Fatalf("expected insufficient stock error, got %v", err)
	}
	if len(ise.Products) != 2 {
		t.Fatalf("expected both products named, got %v", ise.Products)
	}
}

func TestSetStatus_RequiresValue(t *testing.T) {
	svc := New(&stubOrderRepo{}, &stubCartRepo{})

	_, err := svc.SetStatus(context.Background(), 1, "   ")
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSetStatus_TrimsValue(t *testing.T) {
	orders := &stubOrderRepo{order: &domain.Order{ID: 1, Status: domain.OrderStatusShipped}}
	svc := New(orders, &stubCartRepo{})

	if _, err := svc.SetStatus(context.Background(), 1, " shipped "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orders.lastStatus != "shipped" {
		t.Fatalf("expected trimmed status, got %q", orders.lastStatus)
	}
}
