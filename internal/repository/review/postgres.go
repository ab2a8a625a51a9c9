package review

import (
	"context"
	"errors"

	"ecommerce/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reviewColumns = `id, product_id, user_id, rating, COALESCE(comment, ''), created_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, rev domain.Review) (*domain.Review, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var out domain.Review
	err = tx.QueryRow(ctx, `
INSERT INTO reviews (product_id, user_id, rating, comment)
VALUES ($1, $2, $3, NULLIF($4, ''))
RETURNING `+reviewColumns, rev.ProductID, rev.UserID, rev.Rating, rev.Comment).Scan(
		&out.ID,
		&out.ProductID,
		&out.UserID,
		&out.Rating,
		&out.Comment,
		&out.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, &domain.DuplicateError{Reason: "you have already reviewed this product"}
		}
		return nil, err
	}

	// Full recompute rather than incremental maintenance; review volume per
	// product stays small enough that this is fine.
	if _, err := tx.Exec(ctx, `
UPDATE products
SET review_count = agg.cnt,
    average_rating = agg.avg_rating
FROM (
	SELECT COUNT(*) AS cnt, COALESCE(AVG(rating), 0) AS avg_rating
	FROM reviews
	WHERE product_id = $1
) AS agg
WHERE id = $1
`, rev.ProductID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error) {
	const q = `SELECT ` + reviewColumns + ` FROM reviews WHERE product_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, q, productID)
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Review, error) {
	const q = `SELECT ` + reviewColumns + ` FROM reviews WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, q, userID)
}

func (r *postgresRepo) ListAll(ctx context.Context, page, limit int) ([]domain.Review, error) {
	const q = `SELECT ` + reviewColumns + ` FROM reviews ORDER BY created_at DESC OFFSET $1 LIMIT $2`
	return r.list(ctx, q, (page-1)*limit, limit)
}

func (r *postgresRepo) list(ctx context.Context, query string, args ...interface{}) ([]domain.Review, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Review
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.ProductID, &rev.UserID, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, rev)
	}
	return result, rows.Err()
}
