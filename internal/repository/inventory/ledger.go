// Package inventory is the only writer of product stock. Checkout reserves
// stock through Reserve inside its own transaction; admin restocks go through
// Ledger.Restock. The availability flag tracks stock strictly: it flips false
// when a decrement lands at or below zero and true when a restock raises
// stock above zero.
package inventory

import (
	"context"
	"errors"
	"sort"

	"ecommerce/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Line is one stock reservation request.
type Line struct {
	ProductID int64
	Quantity  int
}

// Reserve checks and decrements stock for every line within the caller's
// transaction. All lines are validated before any stock is touched; on a
// shortfall the returned InsufficientStockError names every offending product
// and nothing is written. Product rows are locked during validation so two
// concurrent checkouts cannot both pass the check and decrement past zero.
func Reserve(ctx context.Context, tx pgx.Tx, lines []Line) error {
	// Lock in a stable order so concurrent checkouts over overlapping
	// products cannot deadlock.
	ordered := make([]Line, len(lines))
	copy(ordered, lines)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ProductID < ordered[j].ProductID })

	var short []string
	for _, line := range ordered {
		var title string
		var stock int
		err := tx.QueryRow(ctx, `SELECT title, stock FROM products WHERE id = $1 FOR UPDATE`, line.ProductID).Scan(&title, &stock)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &domain.NotFoundError{Entity: "Product", ID: line.ProductID}
			}
			return err
		}
		if stock < line.Quantity {
			short = append(short, title)
		}
	}
	if len(short) > 0 {
		return &domain.InsufficientStockError{Products: short}
	}

	for _, line := range ordered {
		const q = `
UPDATE products
SET stock = stock - $2,
    is_available = (stock - $2) > 0
WHERE id = $1
`
		if _, err := tx.Exec(ctx, q, line.ProductID, line.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// Ledger performs standalone stock mutations outside a checkout.
type Ledger struct {
	pool *pgxpool.Pool
}

func NewLedger(pool *pgxpool.Pool) *Ledger {
	return &Ledger{pool: pool}
}

// Restock raises stock by quantity and re-enables availability once stock is
// positive again.
func (l *Ledger) Restock(ctx context.Context, productID int64, quantity int) (*domain.Product, error) {
	const q = `
UPDATE products
SET stock = stock + $2,
    is_available = (stock + $2) > 0
WHERE id = $1
RETURNING id, category_id, title, description, brand, price, discount_percentage, stock, is_available, is_published, thumbnail_url, average_rating, review_count, created_at
`
	var p domain.Product
	err := l.pool.QueryRow(ctx, q, productID, quantity).Scan(
		&p.ID,
		&p.CategoryID,
		&p.Title,
		&p.Description,
		&p.Brand,
		&p.Price,
		&p.DiscountPercentage,
		&p.Stock,
		&p.IsAvailable,
		&p.IsPublished,
		&p.ThumbnailURL,
		&p.AverageRating,
		&p.ReviewCount,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "Product", ID: productID}
		}
		return nil, err
	}
	return &p, nil
}
