package review

import (
	"context"

	"ecommerce/internal/domain"
)

type Repository interface {
	// Create inserts the review and recomputes the product's review_count
	// and average_rating in the same transaction.
	Create(ctx context.Context, rev domain.Review) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Review, error)
	ListAll(ctx context.Context, page, limit int) ([]domain.Review, error)
}
