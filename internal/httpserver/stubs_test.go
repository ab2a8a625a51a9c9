package httpserver

import (
	"context"
	"io"
	"log"

	"ecommerce/internal/domain"
	cartsvc "ecommerce/internal/service/cart"
	categorysvc "ecommerce/internal/service/category"
	ordersvc "ecommerce/internal/service/order"
	productsvc "ecommerce/internal/service/product"
	reviewsvc "ecommerce/internal/service/review"
	usersvc "ecommerce/internal/service/user"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func testDeps() Deps {
	return Deps{
		UserSvc:     &stubUserService{},
		ProductSvc:  &stubProductService{},
		CategorySvc: &stubCategoryService{},
		CartSvc:     &stubCartService{},
		OrderSvc:    &stubOrderService{},
		ReviewSvc:   &stubReviewService{},
		WishlistSvc: &stubWishlistService{},
	}
}

type stubUserService struct {
	user      *domain.User
	users     []domain.User
	signupErr error
	loginErr  error
	lookupErr error
	updateErr error
}

func (s *stubUserService) Signup(_ context.Context, _ usersvc.SignupInput) (*domain.User, error) {
	return s.user, s.signupErr
}

func (s *stubUserService) Login(_ context.Context, _, _ string) (*domain.User, string, string, error) {
	if s.loginErr != nil {
		return nil, "", "", s.loginErr
	}
	return s.user, "access", "refresh", nil
}

func (s *stubUserService) LookupByToken(_ context.Context, _ string) (*domain.User, error) {
	return s.user, s.lookupErr
}

func (s *stubUserService) UpdateProfile(_ context.Context, _ int64, _ usersvc.UpdateProfileInput) (*domain.User, error) {
	return s.user, s.updateErr
}

func (s *stubUserService) List(_ context.Context, _, _ int) ([]domain.User, error) {
	return s.users, nil
}

func (s *stubUserService) AccessTTLSeconds() int { return 3600 }

type stubProductService struct {
	product  *domain.Product
	products []domain.Product
	image    *domain.ProductImage
	err      error
}

func (s *stubProductService) List(_ context.Context, _ bool, _ *int64, _, _ int) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubProductService) Get(_ context.Context, _ int64) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductService) Create(_ context.Context, _ productsvc.Input) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductService) Update(_ context.Context, _ int64, _ productsvc.Input) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductService) Delete(_ context.Context, _ int64) error { return s.err }

func (s *stubProductService) Restock(_ context.Context, _ int64, _ int) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductService) AddImage(_ context.Context, _ int64, _ string) (*domain.ProductImage, error) {
	return s.image, s.err
}

type stubCategoryService struct {
	category   *domain.Category
	categories []domain.Category
	err        error
}

func (s *stubCategoryService) Create(_ context.Context, _ categorysvc.Input) (*domain.Category, error) {
	return s.category, s.err
}

func (s *stubCategoryService) Get(_ context.Context, _ int64) (*domain.Category, error) {
	return s.category, s.err
}

func (s *stubCategoryService) List(_ context.Context, _, _ int) ([]domain.Category, error) {
	return s.categories, s.err
}

func (s *stubCategoryService) Update(_ context.Context, _ int64, _ categorysvc.Input) (*domain.Category, error) {
	return s.category, s.err
}

func (s *stubCategoryService) Delete(_ context.Context, _ int64) error { return s.err }

type stubCartService struct {
	cart       *domain.Cart
	err        error
	deletedFor int64
}

func (s *stubCartService) Get(_ context.Context, _ int64) (*domain.Cart, error) {
	return s.cart, s.err
}

func (s *stubCartService) AddOrReplace(_ context.Context, _ int64, _ []cartsvc.ItemInput) (*domain.Cart, error) {
	return s.cart, s.err
}

func (s *stubCartService) Delete(_ context.Context, userID int64) error {
	s.deletedFor = userID
	return s.err
}

type stubOrderService struct {
	order      *domain.Order
	orders     []domain.Order
	err        error
	lastStatus string
}

func (s *stubOrderService) Checkout(_ context.Context, _ int64, _ ordersvc.CheckoutInput) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderService) Get(_ context.Context, _ int64) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderService) ListForUser(_ context.Context, _ int64, _, _ int) ([]domain.Order, error) {
	return s.orders, s.err
}

func (s *stubOrderService) ListAll(_ context.Context, _, _ int) ([]domain.Order, error) {
	return s.orders, s.err
}

func (s *stubOrderService) SetStatus(_ context.Context, _ int64, status string) (*domain.Order, error) {
	s.lastStatus = status
	return s.order, s.err
}

func (s *stubOrderService) Delete(_ context.Context, _, _ int64) error { return s.err }

type stubReviewService struct {
	review  *domain.Review
	reviews []domain.Review
	err     error
}

func (s *stubReviewService) Create(_ context.Context, _ int64, _ reviewsvc.CreateInput) (*domain.Review, error) {
	return s.review, s.err
}

func (s *stubReviewService) ListForProduct(_ context.Context, _ int64) ([]domain.Review, error) {
	return s.reviews, s.err
}

func (s *stubReviewService) ListForUser(_ context.Context, _ int64) ([]domain.Review, error) {
	return s.reviews, s.err
}

func (s *stubReviewService) ListAll(_ context.Context, _, _ int) ([]domain.Review, error) {
	return s.reviews, s.err
}

type stubWishlistService struct {
	wishlist *domain.Wishlist
	err      error
}

func (s *stubWishlistService) Get(_ context.Context, _ int64) (*domain.Wishlist, error) {
	return s.wishlist, s.err
}

func (s *stubWishlistService) Add(_ context.Context, _, _ int64) error { return s.err }

func (s *stubWishlistService) Remove(_ context.Context, _, _ int64) error { return s.err }
