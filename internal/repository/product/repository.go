package product

import (
	"context"

	"ecommerce/internal/domain"
)

// ListFilter narrows the catalog listing. PublishedOnly hides unpublished
// products from the public surface; admins list everything.
type ListFilter struct {
	PublishedOnly bool
	CategoryID    *int64
}

type Repository interface {
	List(ctx context.Context, filter ListFilter, page, limit int) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	AddImage(ctx context.Context, productID int64, imageURL string) (*domain.ProductImage, error)
}
