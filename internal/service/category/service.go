package category

import (
	"context"
	"strings"

	"ecommerce/internal/domain"
	categoryrepo "ecommerce/internal/repository/category"
)

type Service struct {
	repo categoryrepo.Repository
}

func New(repo categoryrepo.Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail"`
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &domain.ValidationError{Reason: "name required"}
	}
	return s.repo.Create(ctx, domain.Category{Name: name, Description: in.Description, ThumbnailURL: in.ThumbnailURL})
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, page, limit int) ([]domain.Category, error) {
	return s.repo.List(ctx, page, limit)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (*domain.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &domain.ValidationError{Reason: "name required"}
	}
	return s.repo.Update(ctx, domain.Category{ID: id, Name: name, Description: in.Description, ThumbnailURL: in.ThumbnailURL})
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
