package order

import (
	"context"
	"errors"
	"io"
	"log"

	"ecommerce/internal/domain"
	"ecommerce/internal/repository/inventory"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orderColumns = `id, user_id, total_amount, status, COALESCE(address, ''), COALESCE(payment_method, ''), created_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) CreateFromCart(ctx context.Context, in CreateFromCartInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// The order row goes in first so item snapshots can reference its id;
	// it only survives if the whole unit commits.
	order := domain.Order{
		UserID:        in.UserID,
		TotalAmount:   in.TotalAmount,
		Status:        domain.OrderStatusPending,
		Address:       in.Address,
		PaymentMethod: in.PaymentMethod,
	}
	if err := tx.QueryRow(ctx, `
INSERT INTO orders (user_id, total_amount, status, address, payment_method)
VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''))
RETURNING id, created_at
`, in.UserID, in.TotalAmount, order.Status, in.Address, in.PaymentMethod).Scan(&order.ID, &order.CreatedAt); err != nil {
		return nil, err
	}

	lines := make([]inventory.Line, 0, len(in.Items))
	for _, item := range in.Items {
		lines = append(lines, inventory.Line{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	if err := inventory.Reserve(ctx, tx, lines); err != nil {
		return nil, err
	}

	for _, item := range in.Items {
		var snapshot domain.OrderItem
		productID := item.ProductID
		if err := tx.QueryRow(ctx, `
INSERT INTO order_items (order_id, product_id, quantity, subtotal)
VALUES ($1, $2, $3, $4)
RETURNING id
`, order.ID, item.ProductID, item.Quantity, item.Subtotal).Scan(&snapshot.ID); err != nil {
			return nil, err
		}
		snapshot.OrderID = order.ID
		snapshot.ProductID = &productID
		snapshot.Quantity = item.Quantity
		snapshot.Subtotal = item.Subtotal
		order.Items = append(order.Items, snapshot)
	}

	// Empty the cart but keep the row for reuse.
	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, in.CartID); err != nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx, `UPDATE carts SET total_amount = 0 WHERE id = $1`, in.CartID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("order repo: created order id=%d user_id=%d items=%d total=%.2f", order.ID, in.UserID, len(order.Items), in.TotalAmount)
	return &order, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var order domain.Order
	err := r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id).Scan(
		&order.ID,
		&order.UserID,
		&order.TotalAmount,
		&order.Status,
		&order.Address,
		&order.PaymentMethod,
		&order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "Order", ID: id}
		}
		return nil, err
	}
	items, err := r.fetchItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID int64, page, limit int) ([]domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC
OFFSET $2 LIMIT $3
`
	return r.list(ctx, q, userID, (page-1)*limit, limit)
}

func (r *postgresRepo) ListAll(ctx context.Context, page, limit int) ([]domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
ORDER BY created_at DESC
OFFSET $1 LIMIT $2
`
	return r.list(ctx, q, (page-1)*limit, limit)
}

func (r *postgresRepo) SetStatus(ctx context.Context, id int64, status string) (*domain.Order, error) {
	cmd, err := r.pool.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, &domain.NotFoundError{Entity: "Order", ID: id}
	}
	return r.GetByID(ctx, id)
}

func (r *postgresRepo) DeleteOwned(ctx context.Context, id, userID int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return &domain.NotFoundError{Entity: "Order", ID: id}
	}
	return nil
}

func (r *postgresRepo) list(ctx context.Context, query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.TotalAmount,
			&order.Status,
			&order.Address,
			&order.PaymentMethod,
			&order.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		items, err := r.fetchItems(ctx, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Items = items
	}
	return result, nil
}

func (r *postgresRepo) fetchItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	const q = `
SELECT id, order_id, product_id, quantity, subtotal
FROM order_items
WHERE order_id = $1
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Subtotal); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
