package port

import (
	"context"

	"github.com/shopspring/decimal"

	"mesa-billing/internal/core/domain"
)

// BillingUseCase is the primary port of the billing engine. Every method
// acts on the billing account of the given, already authenticated, user and
// returns the account state after the operation.
type BillingUseCase interface {
	// GetAccount returns the user's account, creating one with defaults
	// when none exists.
	GetAccount(ctx context.Context, userID string) (*domain.BillingAccount, error)

	// SetPaymentMode switches the payment mode. Selecting invoicing without
	// eligibility fails with domain.ErrInvalidModeTransition. A missing
	// account is created with the requested mode.
	SetPaymentMode(ctx context.Context, userID string, mode domain.PaymentMode) (*domain.BillingAccount, error)

	// SetPaymentMethod overwrites the stored payment method, creating the
	// account if needed.
	SetPaymentMethod(ctx context.Context, userID string, method domain.PaymentMethod) (*domain.BillingAccount, error)

	// SetThreshold changes the automatic charge threshold. It does not
	// create accounts and fails with domain.ErrAccountNotFound instead.
	SetThreshold(ctx context.Context, userID string, threshold decimal.Decimal) (*domain.BillingAccount, error)

	// ApplyManualPayment adds amount to the prepaid balance of a manual-mode
	// account.
	ApplyManualPayment(ctx context.Context, userID string, amount decimal.Decimal) (*domain.BillingAccount, error)

	// AccrueCost records ad spend and settles it according to the payment
	// mode.
	AccrueCost(ctx context.Context, userID string, cost decimal.Decimal) (*domain.BillingAccount, error)

	// SetInvoicingEligibility grants or revokes monthly invoicing. It is an
	// operator action and is not exposed over HTTP.
	SetInvoicingEligibility(ctx context.Context, userID string, eligible bool) (*domain.BillingAccount, error)
}
