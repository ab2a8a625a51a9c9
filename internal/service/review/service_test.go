package review

import (
	"context"
	"errors"
	"testing"

	"ecommerce/internal/domain"
)

type stubReviewRepo struct {
	review    *domain.Review
	createErr error
	lastRev   domain.Review
}

func (s *stubReviewRepo) Create(_ context.Context, rev domain.Review) (*domain.Review, error) {
	s.lastRev = rev
	return s.review, s.createErr
}

func (s *stubReviewRepo) ListByProduct(_ context.Context, _ int64) ([]domain.Review, error) {
	return nil, nil
}

func (s *stubReviewRepo) ListByUser(_ context.Context, _ int64) ([]domain.Review, error) {
	return nil, nil
}

func (s *stubReviewRepo) ListAll(_ context.Context, _, _ int) ([]domain.Review, error) {
	return nil, nil
}

type stubProducts struct {
	product *domain.Product
	err     error
}

func (s *stubProducts) GetByID(_ context.Context, _ int64) (*domain.Product, error) {
	return s.product, s.err
}

func TestCreate_RatingOutOfRange(t *testing.T) {
	svc := New(&stubReviewRepo{}, &stubProducts{product: &domain.Product{ID: 1}})

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(context.Background(), 7, CreateInput{ProductID: 1, Rating: rating})
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("rating %d: expected validation error, got %v", rating, err)
		}
	}
}

func TestCreate_UnknownProduct(t *testing.T) {
	svc := New(&stubReviewRepo{}, &stubProducts{err: &domain.NotFoundError{Entity: "Product", ID: 9}})

	_, err := svc.Create(context.Background(), 7, CreateInput{ProductID: 9, Rating: 4})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreate_SetsAuthor(t *testing.T) {
	repo := &stubReviewRepo{review: &domain.Review{ID: 1}}
	svc := New(repo, &stubProducts{product: &domain.Product{ID: 1}})

	if _, err := svc.Create(context.Background(), 7, CreateInput{ProductID: 1, Rating: 4, Comment: "nice"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastRev.UserID != 7 || repo.lastRev.ProductID != 1 {
		t.Fatalf("unexpected review persisted: %+v", repo.lastRev)
	}
}

func TestCreate_DuplicatePropagates(t *testing.T) {
	repo := &stubReviewRepo{createErr: &domain.DuplicateError{Reason: "you have already reviewed this product"}}
	svc := New(repo, &stubProducts{product: &domain.Product{ID: 1}})

	_, err := svc.Create(context.Background(), 7, CreateInput{ProductID: 1, Rating: 4})
	var de *domain.DuplicateError
	if !errors.As(err, &de) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}
