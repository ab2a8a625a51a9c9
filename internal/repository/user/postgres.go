package user

import (
	"context"
	"errors"

	"ecommerce/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, username, email, password_hash, full_name, role, is_active, COALESCE(address, ''), COALESCE(phone_number, ''), created_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	const q = `
INSERT INTO users (username, email, password_hash, full_name, role, address, phone_number)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''))
RETURNING ` + userColumns
	row := r.pool.QueryRow(ctx, q, u.Username, u.Email, u.PasswordHash, u.FullName, u.Role, u.Address, u.PhoneNumber)
	out, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, &domain.DuplicateError{Reason: "username or email already registered"}
		}
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	out, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "User", ID: id}
		}
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	out, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) List(ctx context.Context, page, limit int) ([]domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users ORDER BY id ASC OFFSET $1 LIMIT $2`
	rows, err := r.pool.Query(ctx, q, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *u)
	}
	return result, rows.Err()
}

func (r *postgresRepo) UpdateProfile(ctx context.Context, id int64, in UpdateProfileInput) (*domain.User, error) {
	const q = `
UPDATE users
SET full_name = COALESCE($2, full_name),
    address = COALESCE($3, address),
    phone_number = COALESCE($4, phone_number)
WHERE id = $1
RETURNING ` + userColumns
	row := r.pool.QueryRow(ctx, q, id, in.FullName, in.Address, in.PhoneNumber)
	out, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "User", ID: id}
		}
		return nil, err
	}
	return out, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.FullName,
		&u.Role,
		&u.IsActive,
		&u.Address,
		&u.PhoneNumber,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}
