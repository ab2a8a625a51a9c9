package cart

import (
	"context"
	"errors"
	"fmt"

	"ecommerce/internal/domain"
	cartrepo "ecommerce/internal/repository/cart"
)

// DefaultMinLineQuantity is the historical minimum order increment: a cart
// line is rejected unless its quantity exceeds this. Overridable via
// MIN_LINE_QUANTITY; flagged as a reviewable business rule since it rejects
// ordinary small purchases.
const DefaultMinLineQuantity = 10

type Service struct {
	repo     cartRepo
	products productRepo
	minQty   int
}

type cartRepo interface {
	GetByUser(ctx context.Context, userID int64) (*domain.Cart, error)
	CreateWithItems(ctx context.Context, userID int64, items []cartrepo.ItemInput) (*domain.Cart, error)
	ReplaceItems(ctx context.Context, cartID int64, items []cartrepo.ItemInput) (*domain.Cart, error)
	Delete(ctx context.Context, cartID int64) error
}

type productRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

func New(repo cartrepo.Repository, products productRepo, minQty int) *Service {
	return &Service{repo: repo, products: products, minQty: minQty}
}

// ItemInput is one requested cart line.
type ItemInput struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// Get returns the user's cart with its items.
func (s *Service) Get(ctx context.Context, userID int64) (*domain.Cart, error) {
	return s.repo.GetByUser(ctx, userID)
}

// AddOrReplace prices the requested items against the current catalog and
// installs them as the cart's entire item set. The cart is created lazily on
// first use; subsequent calls replace every line (no merging). Each subtotal
// is frozen here: later price or discount changes do not reprice the line.
func (s *Service) AddOrReplace(ctx context.Context, userID int64, items []ItemInput) (*domain.Cart, error) {
	priced, err := s.price(ctx, items)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return s.repo.CreateWithItems(ctx, userID, priced)
		}
		return nil, err
	}
	return s.repo.ReplaceItems(ctx, existing.ID, priced)
}

// Delete drops the user's cart and its items entirely, unlike checkout
// clearing which keeps the row for reuse.
func (s *Service) Delete(ctx context.Context, userID int64) error {
	cart, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, cart.ID)
}

func (s *Service) price(ctx context.Context, items []ItemInput) ([]cartrepo.ItemInput, error) {
	priced := make([]cartrepo.ItemInput, 0, len(items))
	for _, item := range items {
		if item.Quantity <= s.minQty {
			return nil, &domain.ValidationError{Reason: fmt.Sprintf("quantity must be greater than %d", s.minQty)}
		}
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		priced = append(priced, cartrepo.ItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Subtotal:  float64(item.Quantity) * product.DiscountedPrice(),
		})
	}
	return priced, nil
}
