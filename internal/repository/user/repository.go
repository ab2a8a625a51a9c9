package user

import (
	"context"

	"ecommerce/internal/domain"
)

// UpdateProfileInput carries the self-editable profile fields. Nil pointers
// leave the column untouched.
type UpdateProfileInput struct {
	FullName    *string
	Address     *string
	PhoneNumber *string
}

type Repository interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, page, limit int) ([]domain.User, error)
	UpdateProfile(ctx context.Context, id int64, in UpdateProfileInput) (*domain.User, error)
}
