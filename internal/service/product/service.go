package product

import (
	"context"
	"strings"

	"ecommerce/internal/domain"
	productrepo "ecommerce/internal/repository/product"
)

type Service struct {
	repo       productrepo.Repository
	categories categoryRepo
	ledger     stockLedger
}

type categoryRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
}

type stockLedger interface {
	Restock(ctx context.Context, productID int64, quantity int) (*domain.Product, error)
}

func New(repo productrepo.Repository, categories categoryRepo, ledger stockLedger) *Service {
	return &Service{repo: repo, categories: categories, ledger: ledger}
}

// Input carries the admin-editable product fields.
type Input struct {
	CategoryID         int64   `json:"categoryId"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	Brand              string  `json:"brand"`
	Price              float64 `json:"price"`
	DiscountPercentage float64 `json:"discountPercentage"`
	Stock              int     `json:"stock"`
	IsPublished        *bool   `json:"isPublished"`
	ThumbnailURL       string  `json:"thumbnail"`
}

// List returns a page of products. publishedOnly hides unpublished products
// from the public catalog.
func (s *Service) List(ctx context.Context, publishedOnly bool, categoryID *int64, page, limit int) ([]domain.Product, error) {
	return s.repo.List(ctx, productrepo.ListFilter{PublishedOnly: publishedOnly, CategoryID: categoryID}, page, limit)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Product, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}
	if in.Stock < 0 {
		return nil, &domain.ValidationError{Reason: "stock must not be negative"}
	}
	published := true
	if in.IsPublished != nil {
		published = *in.IsPublished
	}
	return s.repo.Create(ctx, domain.Product{
		CategoryID:         in.CategoryID,
		Title:              strings.TrimSpace(in.Title),
		Description:        in.Description,
		Brand:              in.Brand,
		Price:              in.Price,
		DiscountPercentage: in.DiscountPercentage,
		Stock:              in.Stock,
		IsPublished:        published,
		ThumbnailURL:       in.ThumbnailURL,
	})
}

// Update edits catalog fields only. Stock is owned by the inventory ledger
// and never written here.
func (s *Service) Update(ctx context.Context, id int64, in Input) (*domain.Product, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}
	published := true
	if in.IsPublished != nil {
		published = *in.IsPublished
	}
	return s.repo.Update(ctx, domain.Product{
		ID:                 id,
		CategoryID:         in.CategoryID,
		Title:              strings.TrimSpace(in.Title),
		Description:        in.Description,
		Brand:              in.Brand,
		Price:              in.Price,
		DiscountPercentage: in.DiscountPercentage,
		IsPublished:        published,
		ThumbnailURL:       in.ThumbnailURL,
	})
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Restock raises stock through the inventory ledger.
func (s *Service) Restock(ctx context.Context, id int64, quantity int) (*domain.Product, error) {
	if quantity <= 0 {
		return nil, &domain.ValidationError{Reason: "restock quantity must be positive"}
	}
	return s.ledger.Restock(ctx, id, quantity)
}

func (s *Service) AddImage(ctx context.Context, productID int64, imageURL string) (*domain.ProductImage, error) {
	if _, err := s.repo.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.repo.AddImage(ctx, productID, imageURL)
}

func (s *Service) validate(ctx context.Context, in Input) error {
	if strings.TrimSpace(in.Title) == "" {
		return &domain.ValidationError{Reason: "title required"}
	}
	if in.Price < 0 {
		return &domain.ValidationError{Reason: "price must not be negative"}
	}
	if in.DiscountPercentage < 0 || in.DiscountPercentage > 100 {
		return &domain.ValidationError{Reason: "discount percentage must be between 0 and 100"}
	}
	if _, err := s.categories.GetByID(ctx, in.CategoryID); err != nil {
		return err
	}
	return nil
}
