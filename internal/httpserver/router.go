package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(requestID())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	if deps.Uploads != nil {
		router.Static("/uploads", deps.Uploads.Dir())
	}

	// Public surface: account creation plus catalog and review reads.
	router.POST("/auth/signup", signupHandler(deps.UserSvc))
	router.POST("/auth/login", loginHandler(deps.UserSvc))
	router.GET("/products", listProductsHandler(deps.ProductSvc, false))
	router.GET("/products/:id", getProductHandler(deps.ProductSvc))
	router.GET("/categories", listCategoriesHandler(deps.CategorySvc))
	router.GET("/categories/:id", getCategoryHandler(deps.CategorySvc))
	router.GET("/reviews/product/:id", listProductReviewsHandler(deps.ReviewSvc))

	// Everything below requires a valid bearer token.
	auth := router.Group("/", authRequired(deps.UserSvc))
	{
		auth.GET("/auth/me", meHandler())
		auth.PUT("/auth/me", updateMeHandler(deps.UserSvc))

		auth.GET("/cart", getCartHandler(deps.CartSvc))
		auth.POST("/cart", putCartHandler(deps.CartSvc))
		auth.DELETE("/cart", deleteCartHandler(deps.CartSvc))

		auth.POST("/orders", checkoutHandler(deps.OrderSvc))
		auth.GET("/orders", listOrdersHandler(deps.OrderSvc))
		auth.GET("/orders/all", adminOnly(), listAllOrdersHandler(deps.OrderSvc))
		auth.GET("/orders/:id", getOrderHandler(deps.OrderSvc))
		auth.PUT("/orders/:id/status", adminOnly(), setOrderStatusHandler(deps.OrderSvc))
		auth.DELETE("/orders/:id", deleteOrderHandler(deps.OrderSvc))

		auth.POST("/reviews", createReviewHandler(deps.ReviewSvc))
		auth.GET("/reviews", adminOnly(), listAllReviewsHandler(deps.ReviewSvc))
		auth.GET("/reviews/user/:id", listUserReviewsHandler(deps.ReviewSvc))

		auth.GET("/wishlist", getWishlistHandler(deps.WishlistSvc))
		auth.POST("/wishlist/:productId", addWishlistHandler(deps.WishlistSvc))
		auth.DELETE("/wishlist/:productId", removeWishlistHandler(deps.WishlistSvc))
	}

	// Administrative surface.
	admin := router.Group("/admin", authRequired(deps.UserSvc), adminOnly())
	{
		admin.GET("/users", listUsersHandler(deps.UserSvc))

		admin.GET("/products", listProductsHandler(deps.ProductSvc, true))
		admin.POST("/products", createProductHandler(deps.ProductSvc))
		admin.PUT("/products/:id", updateProductHandler(deps.ProductSvc))
		admin.DELETE("/products/:id", deleteProductHandler(deps.ProductSvc))
		admin.POST("/products/:id/restock", restockProductHandler(deps.ProductSvc))
		admin.POST("/products/:id/images", addProductImageHandler(deps.ProductSvc))

		admin.POST("/categories", createCategoryHandler(deps.CategorySvc))
		admin.PUT("/categories/:id", updateCategoryHandler(deps.CategorySvc))
		admin.DELETE("/categories/:id", deleteCategoryHandler(deps.CategorySvc))

		admin.POST("/uploads", uploadHandler(deps.Uploads))
	}

	return router
}
