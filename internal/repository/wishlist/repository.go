package wishlist

import (
	"context"

	"ecommerce/internal/domain"
)

type Repository interface {
	GetByUser(ctx context.Context, userID int64) (*domain.Wishlist, error)
	Create(ctx context.Context, userID int64) (*domain.Wishlist, error)
	AddProduct(ctx context.Context, wishlistID, productID int64) error
	RemoveProduct(ctx context.Context, wishlistID, productID int64) error
}
