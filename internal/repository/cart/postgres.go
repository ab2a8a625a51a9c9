package cart

import (
	"context"
	"errors"

	"ecommerce/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetByUser(ctx context.Context, userID int64) (*domain.Cart, error) {
	const q = `
SELECT id, user_id, total_amount, created_at
FROM carts
WHERE user_id = $1
`
	var cart domain.Cart
	err := r.pool.QueryRow(ctx, q, userID).Scan(&cart.ID, &cart.UserID, &cart.TotalAmount, &cart.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	const itemsQuery = `
SELECT id, cart_id, product_id, quantity, subtotal
FROM cart_items
WHERE cart_id = $1
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, itemsQuery, cart.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.Subtotal); err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *postgresRepo) CreateWithItems(ctx context.Context, userID int64, items []ItemInput) (*domain.Cart, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var cartID int64
	if err := tx.QueryRow(ctx, `
INSERT INTO carts (user_id, total_amount)
VALUES ($1, 0)
RETURNING id
`, userID).Scan(&cartID); err != nil {
		return nil, err
	}

	if err := insertItems(ctx, tx, cartID, items); err != nil {
		return nil, err
	}
	if err := updateCartTotal(ctx, tx, cartID); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByUser(ctx, userID)
}

func (r *postgresRepo) ReplaceItems(ctx context.Context, cartID int64, items []ItemInput) (*domain.Cart, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var userID int64
	if err := tx.QueryRow(ctx, `SELECT user_id FROM carts WHERE id = $1`, cartID).Scan(&userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "Cart", ID: cartID}
		}
		return nil, err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return nil, err
	}
	if err := insertItems(ctx, tx, cartID, items); err != nil {
		return nil, err
	}
	if err := updateCartTotal(ctx, tx, cartID); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByUser(ctx, userID)
}

func (r *postgresRepo) Delete(ctx context.Context, cartID int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM carts WHERE id = $1`, cartID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return &domain.NotFoundError{Entity: "Cart", ID: cartID}
	}
	return nil
}

func insertItems(ctx context.Context, tx pgx.Tx, cartID int64, items []ItemInput) error {
	for _, item := range items {
		if _, err := tx.Exec(ctx, `
INSERT INTO cart_items (cart_id, product_id, quantity, subtotal)
VALUES ($1, $2, $3, $4)
`, cartID, item.ProductID, item.Quantity, item.Subtotal); err != nil {
			return err
		}
	}
	return nil
}

// updateCartTotal keeps carts.total_amount equal to the sum of item subtotals
// after every mutation.
func updateCartTotal(ctx context.Context, tx pgx.Tx, cartID int64) error {
	_, err := tx.Exec(ctx, `
UPDATE carts
SET total_amount = COALESCE((
	SELECT SUM(subtotal)
	FROM cart_items
	WHERE cart_id = $1
), 0)
WHERE id = $1
`, cartID)
	return err
}
