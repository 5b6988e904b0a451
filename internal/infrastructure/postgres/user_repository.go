package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tinybigcorp/backend/internal/domain/entity"
	"github.com/tinybigcorp/backend/internal/domain/errs"
	"github.com/tinybigcorp/backend/internal/domain/repository"
)

const userColumns = "id, email, username, full_name, is_active, created_at, updated_at"

// UserRepository implements the domain repository contract against a
// Postgres users table. Every write is a single statement, so each
// operation runs in its own implicit transaction, and every write uses
// RETURNING so server-computed columns are re-read before the entity is
// handed back.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.FullName,
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// getBy runs a single-row point query. Uniqueness of id/email/username
// guarantees at most one row; absence maps to (nil, nil).
func (r *UserRepository) getBy(ctx context.Context, column string, value any) (*entity.User, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE "+column+" = $1", value)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.getBy(ctx, "username", username)
}

// ListAll pages over the table in primary-key order so that repeated
// calls see a stable ordering. The contract leaves ordering open;
// ordering by id keeps offset pagination deterministic.
func (r *UserRepository) ListAll(ctx context.Context, skip, limit int) ([]*entity.User, error) {
	if skip < 0 {
		skip = repository.DefaultSkip
	}
	if limit <= 0 {
		limit = repository.DefaultLimit
	}
	rows, err := r.pool.Query(ctx,
		"SELECT "+userColumns+" FROM users ORDER BY id OFFSET $1 LIMIT $2", skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*entity.User, 0, limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, username, full_name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+userColumns,
		u.Email, u.Username, u.FullName, u.IsActive, u.CreatedAt, u.UpdatedAt)
	return scanUser(row)
}

// Update persists all mutable-or-identifying fields for an existing id.
// Calling it with an id that does not exist is a contract violation on
// the caller's side; it surfaces as a NotFoundError rather than a
// silent no-op. UpdatedAt is written as carried by the entity, not
// refreshed here: deactivation deliberately leaves it unchanged.
func (r *UserRepository) Update(ctx context.Context, u *entity.User) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users
		SET email = $1, username = $2, full_name = $3, is_active = $4, updated_at = $5
		WHERE id = $6
		RETURNING `+userColumns,
		u.Email, u.Username, u.FullName, u.IsActive, u.UpdatedAt, u.ID)
	updated, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NewNotFound("User", u.ID)
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
