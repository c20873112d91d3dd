package port

import (
	"context"

	"mesa-billing/internal/core/domain"
)

// BillingRepository persists billing accounts, one per user.
type BillingRepository interface {
	// GetBillingAccount returns the account of userID or nil when none
	// exists.
	GetBillingAccount(ctx context.Context, userID string) (*domain.BillingAccount, error)
	// CreateBillingAccount inserts a new account and sets its Version,
	// CreatedAt and UpdatedAt. It returns domain.ErrAccountExists when the
	// user already has one.
	CreateBillingAccount(ctx context.Context, acct *domain.BillingAccount) error
	// UpdateBillingAccount stores acct if the stored version still equals
	// acct.Version, then bumps acct.Version. A stale version yields
	// domain.ErrVersionConflict.
	UpdateBillingAccount(ctx context.Context, acct *domain.BillingAccount) error
}
