package port

import (
	"context"

	"mesa-billing/internal/core/domain"
)

// UserRepository stores advertiser users.
type UserRepository interface {
	// CreateUser inserts u. An existing email is reported as
	// domain.ErrAlreadyExists.
	CreateUser(ctx context.Context, u *domain.User) error
	// GetUserByEmail returns nil when no user has the address.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
