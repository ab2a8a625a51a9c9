package product

import (
	"context"
	"errors"
	"io"
	"log"

	"ecommerce/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `id, category_id, title, description, brand, price, discount_percentage, stock, is_available, is_published, thumbnail_url, average_rating, review_count, created_at`

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

func (r *postgresRepo) List(ctx context.Context, filter ListFilter, page, limit int) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE ($1::boolean = false OR is_published)
  AND ($2::bigint IS NULL OR category_id = $2)
ORDER BY created_at DESC
OFFSET $3 LIMIT $4
`
	rows, err := r.pool.Query(ctx, q, filter.PublishedOnly, filter.CategoryID, (page-1)*limit, limit)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "Product", ID: id}
		}
		r.logger.Printf("product repo: get id=%d error=%v", id, err)
		return nil, err
	}

	const imagesQuery = `SELECT id, product_id, image_url FROM product_images WHERE product_id = $1 ORDER BY id ASC`
	rows, err := r.pool.Query(ctx, imagesQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var img domain.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.ImageURL); err != nil {
			return nil, err
		}
		p.Images = append(p.Images, img)
	}
	return p, rows.Err()
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (category_id, title, description, brand, price, discount_percentage, stock, is_available, is_published, thumbnail_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7 > 0, $8, $9)
RETURNING ` + productColumns
	out, err := scanProduct(r.pool.QueryRow(ctx, q,
		p.CategoryID,
		p.Title,
		p.Description,
		p.Brand,
		p.Price,
		p.DiscountPercentage,
		p.Stock,
		p.IsPublished,
		p.ThumbnailURL,
	))
	if err != nil {
		r.logger.Printf("product repo: create title=%q error=%v", p.Title, err)
		return nil, err
	}
	r.logger.Printf("product repo: created id=%d title=%q", out.ID, out.Title)
	return out, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
UPDATE products
SET category_id = $2,
    title = $3,
    description = $4,
    brand = $5,
    price = $6,
    discount_percentage = $7,
    is_published = $8,
    thumbnail_url = $9
WHERE id = $1
RETURNING ` + productColumns
	out, err := scanProduct(r.pool.QueryRow(ctx, q,
		p.ID,
		p.CategoryID,
		p.Title,
		p.Description,
		p.Brand,
		p.Price,
		p.DiscountPercentage,
		p.IsPublished,
		p.ThumbnailURL,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "Product", ID: p.ID}
		}
		r.logger.Printf("product repo: update id=%d error=%v", p.ID, err)
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%d error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return &domain.NotFoundError{Entity: "Product", ID: id}
	}
	return nil
}

func (r *postgresRepo) AddImage(ctx context.Context, productID int64, imageURL string) (*domain.ProductImage, error) {
	const q = `
INSERT INTO product_images (product_id, image_url)
VALUES ($1, $2)
RETURNING id, product_id, image_url
`
	var img domain.ProductImage
	if err := r.pool.QueryRow(ctx, q, productID, imageURL).Scan(&img.ID, &img.ProductID, &img.ImageURL); err != nil {
		return nil, err
	}
	return &img, nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(
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
	return &p, nil
}
