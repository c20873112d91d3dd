package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"mesa-billing/internal/core/domain"
	"mesa-billing/internal/core/port"
)

// BillingUseCase implements port.BillingUseCase. Each mutation runs under a
// per-user lock as load → pure transition → compare-and-swap save.
type BillingUseCase struct {
	repo   port.BillingRepository
	locker port.AccountLocker
	logger *slog.Logger

	// defaultThreshold seeds PaymentThreshold of new accounts.
	defaultThreshold decimal.Decimal
	// maxRetries bounds how often a version conflict is retried.
	maxRetries int
	now        func() time.Time
}

// BillingOption customises a BillingUseCase.
type BillingOption func(*BillingUseCase)

// WithDefaultThreshold overrides domain.DefaultPaymentThreshold for new
// accounts.
func WithDefaultThreshold(d decimal.Decimal) BillingOption {
	return func(u *BillingUseCase) { u.defaultThreshold = d }
}

// WithMaxRetries sets the number of reload attempts after a version conflict.
func WithMaxRetries(n int) BillingOption {
	return func(u *BillingUseCase) {
		if n >= 0 {
			u.maxRetries = n
		}
	}
}

// WithClock replaces time.Now, mainly for invoicing tests.
func WithClock(now func() time.Time) BillingOption {
	return func(u *BillingUseCase) { u.now = now }
}

// NewBillingUseCase wires the billing engine.
func NewBillingUseCase(repo port.BillingRepository, locker port.AccountLocker, logger *slog.Logger, opts ...BillingOption) *BillingUseCase {
	u := &BillingUseCase{
		repo:             repo,
		locker:           locker,
		logger:           logger,
		defaultThreshold: domain.DefaultPaymentThreshold,
		maxRetries:       3,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// GetAccount returns the user's account, creating a default one if absent.
func (u *BillingUseCase) GetAccount(ctx context.Context, userID string) (*domain.BillingAccount, error) {
	acct, err := u.repo.GetBillingAccount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get billing account: %w", err)
	}
	if acct != nil {
		return acct, nil
	}
	created := domain.NewBillingAccount(userID, u.defaultThreshold)
	err = u.repo.CreateBillingAccount(ctx, &created)
	if errors.Is(err, domain.ErrAccountExists) {
		// lost a creation race; the winner's row is authoritative
		acct, err = u.repo.GetBillingAccount(ctx, userID)
		if err == nil && acct == nil {
			err = domain.ErrAccountNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("get billing account: %w", err)
		}
		return acct, nil
	}
	if err != nil {
		return nil, fmt.Errorf("create billing account: %w", err)
	}
	u.logger.Info("billing account created", slog.String("user_id", userID))
	return &created, nil
}

// SetPaymentMode switches the payment mode.
func (u *BillingUseCase) SetPaymentMode(ctx context.Context, userID string, mode domain.PaymentMode) (*domain.BillingAccount, error) {
	return u.mutate(ctx, userID, true, func(a domain.BillingAccount) (domain.BillingAccount, error) {
		return a.WithPaymentMode(mode)
	})
}

// SetPaymentMethod stores the payment method.
func (u *BillingUseCase) SetPaymentMethod(ctx context.Context, userID string, method domain.PaymentMethod) (*domain.BillingAccount, error) {
	return u.mutate(ctx, userID, true, func(a domain.BillingAccount) (domain.BillingAccount, error) {
		return a.WithPaymentMethod(method)
	})
}

// SetThreshold changes the automatic charge threshold of an existing account.
func (u *BillingUseCase) SetThreshold(ctx context.Context, userID string, threshold decimal.Decimal) (*domain.BillingAccount, error) {
	return u.mutate(ctx, userID, false, func(a domain.BillingAccount) (domain.BillingAccount, error) {
		return a.WithThreshold(threshold)
	})
}

// ApplyManualPayment tops up the balance of a manual-mode account.
func (u *BillingUseCase) ApplyManualPayment(ctx context.Context, userID string, amount decimal.Decimal) (*domain.BillingAccount, error) {
	return u.mutate(ctx, userID, false, func(a domain.BillingAccount) (domain.BillingAccount, error) {
		return a.WithManualPayment(amount)
	})
}

// AccrueCost records spend and settles it according to the payment mode.
func (u *BillingUseCase) AccrueCost(ctx context.Context, userID string, cost decimal.Decimal) (*domain.BillingAccount, error) {
	var settlement domain.Settlement
	acct, err := u.mutate(ctx, userID, false, func(a domain.BillingAccount) (domain.BillingAccount, error) {
		next, s, err := a.Accrue(cost, u.now())
		settlement = s
		return next, err
	})
	if err != nil {
		return nil, err
	}

	attrs := []any{
		slog.String("user_id", userID),
		slog.String("mode", string(acct.PaymentMode)),
		slog.String("cost", cost.String()),
		slog.String("settlement", string(settlement)),
	}
	switch settlement {
	case domain.SettlementInsufficientFunds:
		u.logger.Warn("insufficient balance; ads stopped", append(attrs, slog.String("balance", acct.Balance.String()))...)
	case domain.SettlementNone:
		u.logger.Debug("cost accrued", attrs...)
	default:
		u.logger.Info("cost settled", attrs...)
	}
	return acct, nil
}

// SetInvoicingEligibility grants or revokes monthly invoicing.
func (u *BillingUseCase) SetInvoicingEligibility(ctx context.Context, userID string, eligible bool) (*domain.BillingAccount, error) {
	return u.mutate(ctx, userID, true, func(a domain.BillingAccount) (domain.BillingAccount, error) {
		return a.WithInvoicingEligibility(eligible), nil
	})
}

// mutate serializes on the user's lock, loads the account (creating a
// default one when create is set), applies fn and saves the result. A
// version conflict reloads and re-applies fn up to maxRetries times.
func (u *BillingUseCase) mutate(ctx context.Context, userID string, create bool, fn func(domain.BillingAccount) (domain.BillingAccount, error)) (*domain.BillingAccount, error) {
	release, err := u.locker.Lock(ctx, lockKey(userID))
	if err != nil {
		return nil, fmt.Errorf("lock billing account: %w", err)
	}
	defer func() {
		// release with a fresh context so a cancelled request still unlocks
		if err := release(context.WithoutCancel(ctx)); err != nil {
			u.logger.Error("release billing lock", slog.String("user_id", userID), slog.Any("error", err))
		}
	}()

	for attempt := 0; ; attempt++ {
		acct, err := u.repo.GetBillingAccount(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("get billing account: %w", err)
		}

		if acct == nil {
			if !create {
				return nil, domain.ErrAccountNotFound
			}
			next, err := fn(domain.NewBillingAccount(userID, u.defaultThreshold))
			if err != nil {
				return nil, err
			}
			err = u.repo.CreateBillingAccount(ctx, &next)
			if errors.Is(err, domain.ErrAccountExists) && attempt < u.maxRetries {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("create billing account: %w", err)
			}
			return &next, nil
		}

		next, err := fn(*acct)
		if err != nil {
			return nil, err
		}
		err = u.repo.UpdateBillingAccount(ctx, &next)
		if errors.Is(err, domain.ErrVersionConflict) && attempt < u.maxRetries {
			u.logger.Debug("billing account version conflict; retrying",
				slog.String("user_id", userID), slog.Int("attempt", attempt+1))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("update billing account: %w", err)
		}
		return &next, nil
	}
}

func lockKey(userID string) string {
	return "billing:" + userID
}
