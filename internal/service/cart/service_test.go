package cart

import (
	"context"
	"errors"
	"math"
	"testing"

	"ecommerce/internal/domain"
	cartrepo "ecommerce/internal/repository/cart"
)

type stubRepo struct {
	cart           *domain.Cart
	getErr         error
	created        *domain.Cart
	createErr      error
	replaced       *domain.Cart
	replaceErr     error
	lastCreateUser int64
	lastItems      []cartrepo.ItemInput
	lastReplaceID  int64
	lastDeleteID   int64
	deleteErr      error
}

func (s *stubRepo) GetByUser(_ context.Context, _ int64) (*domain.Cart, error) {
	return s.cart, s.getErr
}

func (s *stubRepo) CreateWithItems(_ context.Context, userID int64, items []cartrepo.ItemInput) (*domain.Cart, error) {
	s.lastCreateUser = userID
	s.lastItems = items
	return s.created, s.createErr
}

func (s *stubRepo) ReplaceItems(_ context.Context, cartID int64, items []cartrepo.ItemInput) (*domain.Cart, error) {
	s.lastReplaceID = cartID
	s.lastItems = items
	return s.replaced, s.replaceErr
}

func (s *stubRepo) Delete(_ context.Context, cartID int64) error {
	s.lastDeleteID = cartID
	return s.deleteErr
}

type stubProducts struct {
	products map[int64]*domain.Product
}

func (s *stubProducts) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "Product", ID: id}
	}
	return p, nil
}

func TestAddOrReplace_RejectsQuantityAtMinimum(t *testing.T) {
	repo := &stubRepo{getErr: domain.ErrNotFound}
	products := &stubProducts{products: map[int64]*domain.Product{
		1: {ID: 1, Price: 10},
	}}
	svc := New(repo, products, DefaultMinLineQuantity)

	_, err := svc.AddOrReplace(context.Background(), 7, []ItemInput{{ProductID: 1, Quantity: 10}})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAddOrReplace_CreatesCartWithDiscountedSubtotals(t *testing.T) {
	repo := &stubRepo{
		getErr:  domain.ErrNotFound,
		created: &domain.Cart{ID: 3, UserID: 7},
	}
	products := &stubProducts{products: map[int64]*domain.Product{
		1: {ID: 1, Price: 10, DiscountPercentage: 20},
	}}
	svc := New(repo, products, DefaultMinLineQuantity)

	cart, err := svc.AddOrReplace(context.Background(), 7, []ItemInput{{ProductID: 1, Quantity: 11}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.ID != 3 {
		t.Fatalf("expected created cart, got %+v", cart)
	}
	if repo.lastCreateUser != 7 {
		t.Fatalf("expected cart created for user 7, got %d", repo.lastCreateUser)
	}
	if len(repo.lastItems) != 1 {
		t.Fatalf("expected 1 priced item, got %d", len(repo.lastItems))
	}
	// 11 units at 10.00 with 20% off.
	if math.Abs(repo.lastItems[0].Subtotal-88.0) > 1e-9 {
		t.Fatalf("expected subtotal 88.0, got %f", repo.lastItems[0].Subtotal)
	}
}

func TestAddOrReplace_ReplacesExistingCart(t *testing.T) {
	repo := &stubRepo{
		cart:     &domain.Cart{ID: 5, UserID: 7},
		replaced: &domain.Cart{ID: 5, UserID: 7},
	}
	products := &stubProducts{products: map[int64]*domain.Product{
		2: {ID: 2, Price: 4},
	}}
	svc := New(repo, products, DefaultMinLineQuantity)

	if _, err := svc.AddOrReplace(context.Background(), 7, []ItemInput{{ProductID: 2, Quantity: 12}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastReplaceID != 5 {
		t.Fatalf("expected replace on cart 5, got %d", repo.lastReplaceID)
	}
}

func TestDelete_RemovesOwnCart(t *testing.T) {
	repo := &stubRepo{cart: &domain.Cart{ID: 5, UserID: 7}}
	svc := New(repo, &stubProducts{}, DefaultMinLineQuantity)

	if err := svc.Delete(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastDeleteID != 5 {
		t.Fatalf("expected delete of cart 5, got %d", repo.lastDeleteID)
	}
}

func TestDelete_NoCart(t *testing.T) {
	repo := &stubRepo{getErr: domain.ErrNotFound}
	svc := New(repo, &stubProducts{}, DefaultMinLineQuantity)

	if err := svc.Delete(context.Background(), 7); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAddOrReplace_UnknownProduct(t *testing.T) {
	repo := &stubRepo{getErr: domain.ErrNotFound}
	svc := New(repo, &stubProducts{}, DefaultMinLineQuantity)

	_, err := svc.AddOrReplace(context.Background(), 7, []ItemInput{{ProductID: 99, Quantity: 11}})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
