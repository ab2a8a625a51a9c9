package wishlist

import (
	"context"
	"errors"

	"ecommerce/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetByUser(ctx context.Context, userID int64) (*domain.Wishlist, error) {
	var w domain.Wishlist
	err := r.pool.QueryRow(ctx, `SELECT id, user_id FROM wishlists WHERE user_id = $1`, userID).Scan(&w.ID, &w.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	const productsQuery = `
SELECT p.id, p.category_id, p.title, p.description, p.brand, p.price, p.discount_percentage,
       p.stock, p.is_available, p.is_published, p.thumbnail_url, p.average_rating, p.review_count, p.created_at
FROM wishlist_items wi
JOIN products p ON p.id = wi.product_id
WHERE wi.wishlist_id = $1
ORDER BY p.id ASC
`
	rows, err := r.pool.Query(ctx, productsQuery, w.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
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
		); err != nil {
			return nil, err
		}
		w.Products = append(w.Products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *postgresRepo) Create(ctx context.Context, userID int64) (*domain.Wishlist, error) {
	var w domain.Wishlist
	err := r.pool.QueryRow(ctx, `
INSERT INTO wishlists (user_id)
VALUES ($1)
ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
RETURNING id, user_id
`, userID).Scan(&w.ID, &w.UserID)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *postgresRepo) AddProduct(ctx context.Context, wishlistID, productID int64) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO wishlist_items (wishlist_id, product_id)
VALUES ($1, $2)
`, wishlistID, productID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return &domain.DuplicateError{Reason: "product already in wishlist"}
		}
		return err
	}
	return nil
}

func (r *postgresRepo) RemoveProduct(ctx context.Context, wishlistID, productID int64) error {
	cmd, err := r.pool.Exec(ctx, `
DELETE FROM wishlist_items
WHERE wishlist_id = $1 AND product_id = $2
`, wishlistID, productID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return &domain.NotFoundError{Entity: "Product", ID: productID}
	}
	return nil
}
