package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-billing/internal/core/domain"
	"mesa-billing/internal/core/port"
)

// UserRepository implements port.UserRepository using pgxpool.
type UserRepository struct {
	pool *pgxpool.Pool
}

var _ port.UserRepository = (*UserRepository)(nil)

// NewUserRepository returns a new repository instance.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// CreateUser inserts u, defaulting language and timezone.
func (r *UserRepository) CreateUser(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Language == "" {
		u.Language = "en"
	}
	if u.Timezone == "" {
		u.Timezone = "UTC"
	}
	err := r.pool.QueryRow(ctx, `INSERT INTO users
    (id, email, first_name, last_name, company, language, timezone, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,now())
RETURNING created_at`,
		u.ID, u.Email, u.FirstName, u.LastName, u.Company, u.Language, u.Timezone,
	).Scan(&u.CreatedAt)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	return err
}

// GetUserByEmail returns a user by email or nil.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, `SELECT id::text, email, first_name, last_name, company, language, timezone, created_at
FROM users WHERE email = $1`, email).
		Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Company, &u.Language, &u.Timezone, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
