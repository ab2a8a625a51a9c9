package wishlist

import (
	"context"
	"errors"

	"ecommerce/internal/domain"
	wishlistrepo "ecommerce/internal/repository/wishlist"
)

type Service struct {
	repo     wishlistRepo
	products productRepo
}

type wishlistRepo interface {
	GetByUser(ctx context.Context, userID int64) (*domain.Wishlist, error)
	Create(ctx context.Context, userID int64) (*domain.Wishlist, error)
	AddProduct(ctx context.Context, wishlistID, productID int64) error
	RemoveProduct(ctx context.Context, wishlistID, productID int64) error
}

type productRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

func New(repo wishlistrepo.Repository, products productRepo) *Service {
	return &Service{repo: repo, products: products}
}

// Get returns the user's wishlist, creating an empty one on first access.
func (s *Service) Get(ctx context.Context, userID int64) (*domain.Wishlist, error) {
	w, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return s.repo.Create(ctx, userID)
		}
		return nil, err
	}
	return w, nil
}

// Add saves a product to the wishlist. Duplicates are rejected rather than
// ignored so the client can tell the product was already saved.
func (s *Service) Add(ctx context.Context, userID, productID int64) error {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return err
	}
	w, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	return s.repo.AddProduct(ctx, w.ID, productID)
}

func (s *Service) Remove(ctx context.Context, userID, productID int64) error {
	w, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.NotFoundError{Entity: "Product", ID: productID}
		}
		return err
	}
	return s.repo.RemoveProduct(ctx, w.ID, productID)
}
