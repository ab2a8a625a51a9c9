package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ecommerce/internal/config"
	"ecommerce/internal/db"
	"ecommerce/internal/httpserver"
	cartrepo "ecommerce/internal/repository/cart"
	categoryrepo "ecommerce/internal/repository/category"
	"ecommerce/internal/repository/inventory"
	orderrepo "ecommerce/internal/repository/order"
	productrepo "ecommerce/internal/repository/product"
	reviewrepo "ecommerce/internal/repository/review"
	tokenrepo "ecommerce/internal/repository/token"
	userrepo "ecommerce/internal/repository/user"
	wishlistrepo "ecommerce/internal/repository/wishlist"
	cartsvc "ecommerce/internal/service/cart"
	categorysvc "ecommerce/internal/service/category"
	ordersvc "ecommerce/internal/service/order"
	productsvc "ecommerce/internal/service/product"
	reviewsvc "ecommerce/internal/service/review"
	usersvc "ecommerce/internal/service/user"
	wishlistsvc "ecommerce/internal/service/wishlist"
	"ecommerce/internal/upload"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	uploads, err := upload.NewStore(cfg.UploadDir, cfg.FileURLHost)
	if err != nil {
		logger.Fatalf("init upload store: %v", err)
	}

	ledger := inventory.NewLedger(dbpool)

	userRepo := userrepo.NewPostgres(dbpool)
	tokenRepo := tokenrepo.NewPostgres(dbpool)
	userService := usersvc.New(userRepo, tokenRepo)

	categoryRepo := categoryrepo.NewPostgres(dbpool)
	categoryService := categorysvc.New(categoryRepo)

	productRepo := productrepo.NewPostgres(dbpool, logger)
	productService := productsvc.New(productRepo, categoryRepo, ledger)

	cartRepo := cartrepo.NewPostgres(dbpool)
	cartService := cartsvc.New(cartRepo, productRepo, cfg.MinLineQuantity)

	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	orderService := ordersvc.New(orderRepo, cartRepo)

	reviewRepo := reviewrepo.NewPostgres(dbpool)
	reviewService := reviewsvc.New(reviewRepo, productRepo)

	wishlistRepo := wishlistrepo.NewPostgres(dbpool)
	wishlistService := wishlistsvc.New(wishlistRepo, productRepo)

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		UserSvc:     userService,
		ProductSvc:  productService,
		CategorySvc: categoryService,
		CartSvc:     cartService,
		OrderSvc:    orderService,
		ReviewSvc:   reviewService,
		WishlistSvc: wishlistService,
		Uploads:     uploads,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
