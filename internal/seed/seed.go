package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type productSeed struct {
	Title              string
	Description        string
	Brand              string
	Price              float64
	DiscountPercentage float64
	Stock              int
}

// Apply inserts basic seed data for manual testing: an admin account, a demo
// category and a few products. It is idempotent.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	if err := ensureAdmin(ctx, pool, "admin", "admin@example.com", "Admin123"); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}

	categoryID, err := ensureCategory(ctx, pool, "general", "Uncategorized demo products")
	if err != nil {
		return fmt.Errorf("ensure category: %w", err)
	}

	products := []productSeed{
		{
			Title:       "Demo T-Shirt",
			Description: "Soft cotton tee for demo purposes",
			Brand:       "Demo",
			Price:       19.99,
			Stock:       100,
		},
		{
			Title:              "Demo Mug",
			Description:        "Ceramic mug with demo logo",
			Brand:              "Demo",
			Price:              12.99,
			DiscountPercentage: 10,
			Stock:              50,
		},
	}

	for _, p := range products {
		if err := ensureProduct(ctx, pool, categoryID, p); err != nil {
			return fmt.Errorf("ensure product %s: %w", p.Title, err)
		}
	}

	return nil
}

func ensureAdmin(ctx context.Context, pool *pgxpool.Pool, username, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO users (username, email, password_hash, full_name, role)
VALUES ($1, $2, $3, 'Administrator', 'admin')
ON CONFLICT (username) DO NOTHING
`
	_, err = pool.Exec(ctx, q, username, email, string(hash))
	return err
}

func ensureCategory(ctx context.Context, pool *pgxpool.Pool, name, description string) (int64, error) {
	const q = `
INSERT INTO categories (name, description)
VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description
RETURNING id
`
	var id int64
	if err := pool.QueryRow(ctx, q, name, description).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// ensureProduct checks by title before inserting: products carry no natural
// unique key, so ON CONFLICT is not available here.
func ensureProduct(ctx context.Context, pool *pgxpool.Pool, categoryID int64, p productSeed) error {
	var exists bool
	const check = `SELECT EXISTS (SELECT 1 FROM products WHERE title = $1)`
	if err := pool.QueryRow(ctx, check, p.Title).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	const q = `
INSERT INTO products (category_id, title, description, brand, price, discount_percentage, stock, is_available)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7 > 0)
`
	_, err := pool.Exec(ctx, q, categoryID, p.Title, p.Description, p.Brand, p.Price, p.DiscountPercentage, p.Stock)
	return err
}
