package httpserver

import (
	"context"
	"io"

	"ecommerce/internal/domain"
	cartsvc "ecommerce/internal/service/cart"
	categorysvc "ecommerce/internal/service/category"
	ordersvc "ecommerce/internal/service/order"
	productsvc "ecommerce/internal/service/product"
	reviewsvc "ecommerce/internal/service/review"
	usersvc "ecommerce/internal/service/user"
)

// Deps carries the services the router needs. Interfaces are declared here so
// handlers can be tested against stubs.
type Deps struct {
	UserSvc     UserService
	ProductSvc  ProductService
	CategorySvc CategoryService
	CartSvc     CartService
	OrderSvc    OrderService
	ReviewSvc   ReviewService
	WishlistSvc WishlistService
	Uploads     Uploader
}

type UserService interface {
	Signup(ctx context.Context, in usersvc.SignupInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, string, string, error)
	LookupByToken(ctx context.Context, token string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int64, in usersvc.UpdateProfileInput) (*domain.User, error)
	List(ctx context.Context, page, limit int) ([]domain.User, error)
	AccessTTLSeconds() int
}

type ProductService interface {
	List(ctx context.Context, publishedOnly bool, categoryID *int64, page, limit int) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, in productsvc.Input) (*domain.Product, error)
	Update(ctx context.Context, id int64, in productsvc.Input) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	Restock(ctx context.Context, id int64, quantity int) (*domain.Product, error)
	AddImage(ctx context.Context, productID int64, imageURL string) (*domain.ProductImage, error)
}

type CategoryService interface {
	Create(ctx context.Context, in categorysvc.Input) (*domain.Category, error)
	Get(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context, page, limit int) ([]domain.Category, error)
	Update(ctx context.Context, id int64, in categorysvc.Input) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

type CartService interface {
	Get(ctx context.Context, userID int64) (*domain.Cart, error)
	AddOrReplace(ctx context.Context, userID int64, items []cartsvc.ItemInput) (*domain.Cart, error)
	Delete(ctx context.Context, userID int64) error
}

type OrderService interface {
	Checkout(ctx context.Context, userID int64, in ordersvc.CheckoutInput) (*domain.Order, error)
	Get(ctx context.Context, orderID int64) (*domain.Order, error)
	ListForUser(ctx context.Context, userID int64, page, limit int) ([]domain.Order, error)
	ListAll(ctx context.Context, page, limit int) ([]domain.Order, error)
	SetStatus(ctx context.Context, orderID int64, status string) (*domain.Order, error)
	Delete(ctx context.Context, orderID, userID int64) error
}

type ReviewService interface {
	Create(ctx context.Context, userID int64, in reviewsvc.CreateInput) (*domain.Review, error)
	ListForProduct(ctx context.Context, productID int64) ([]domain.Review, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.Review, error)
	ListAll(ctx context.Context, page, limit int) ([]domain.Review, error)
}

type WishlistService interface {
	Get(ctx context.Context, userID int64) (*domain.Wishlist, error)
	Add(ctx context.Context, userID, productID int64) error
	Remove(ctx context.Context, userID, productID int64) error
}

type Uploader interface {
	Save(originalName string, r io.Reader) (string, error)
	Dir() string
}
