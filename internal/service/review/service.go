package review

import (
	"context"

	"ecommerce/internal/domain"
	reviewrepo "ecommerce/internal/repository/review"
)

type Service struct {
	repo     reviewRepo
	products productRepo
}

type reviewRepo interface {
	Create(ctx context.Context, rev domain.Review) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Review, error)
	ListAll(ctx context.Context, page, limit int) ([]domain.Review, error)
}

type productRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

func New(repo reviewrepo.Repository, products productRepo) *Service {
	return &Service{repo: repo, products: products}
}

type CreateInput struct {
	ProductID int64  `json:"productId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// Create stores one review per (product, user) and folds the new rating into
// the product's denormalized review_count and average_rating.
func (s *Service) Create(ctx context.Context, userID int64, in CreateInput) (*domain.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, &domain.ValidationError{Reason: "rating must be between 1 and 5"}
	}
	if _, err := s.products.GetByID(ctx, in.ProductID); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, domain.Review{
		ProductID: in.ProductID,
		UserID:    userID,
		Rating:    in.Rating,
		Comment:   in.Comment,
	})
}

func (s *Service) ListForProduct(ctx context.Context, productID int64) ([]domain.Review, error) {
	return s.repo.ListByProduct(ctx, productID)
}

// ListForUser returns a user's reviews; the handler restricts it to the user
// themselves or an admin.
func (s *Service) ListForUser(ctx context.Context, userID int64) ([]domain.Review, error) {
	return s.repo.ListByUser(ctx, userID)
}

// ListAll returns a page of every review; the handler gates it to admins.
func (s *Service) ListAll(ctx context.Context, page, limit int) ([]domain.Review, error) {
	return s.repo.ListAll(ctx, page, limit)
}
