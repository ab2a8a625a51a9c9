package category

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

func (r *postgresRepo) Create(ctx context.Context, c domain.Category) (*domain.Category, error) {
	const q = `
INSERT INTO categories (name, description, thumbnail_url)
VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))
RETURNING id, name, COALESCE(description, ''), COALESCE(thumbnail_url, '')
`
	out, err := scanCategory(r.pool.QueryRow(ctx, q, c.Name, c.Description, c.ThumbnailURL))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, &domain.DuplicateError{Reason: "category name already exists"}
		}
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	const q = `
SELECT id, name, COALESCE(description, ''), COALESCE(thumbnail_url, '')
FROM categories
WHERE id = $1
`
	out, err := scanCategory(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "Category", ID: id}
		}
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) List(ctx context.Context, page, limit int) ([]domain.Category, error) {
	const q = `
SELECT id, name, COALESCE(description, ''), COALESCE(thumbnail_url, '')
FROM categories
ORDER BY name ASC
OFFSET $1 LIMIT $2
`
	rows, err := r.pool.Query(ctx, q, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	return result, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, c domain.Category) (*domain.Category, error) {
	const q = `
UPDATE categories
SET name = $2, description = NULLIF($3, ''), thumbnail_url = NULLIF($4, '')
WHERE id = $1
RETURNING id, name, COALESCE(description, ''), COALESCE(thumbnail_url, '')
`
	out, err := scanCategory(r.pool.QueryRow(ctx, q, c.ID, c.Name, c.Description, c.ThumbnailURL))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "Category", ID: c.ID}
		}
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return &domain.NotFoundError{Entity: "Category", ID: id}
	}
	return nil
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.ThumbnailURL); err != nil {
		return nil, err
	}
	return &c, nil
}
