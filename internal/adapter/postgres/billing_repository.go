package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-billing/internal/core/domain"
	"mesa-billing/internal/core/port"
)

// BillingRepository implements port.BillingRepository using pgxpool.
type BillingRepository struct {
	pool *pgxpool.Pool
}

var _ port.BillingRepository = (*BillingRepository)(nil)

// NewBillingRepository returns a new repository instance.
func NewBillingRepository(pool *pgxpool.Pool) *BillingRepository {
	return &BillingRepository{pool: pool}
}

const billingColumns = `user_id, payment_mode, payment_threshold, balance, payment_method,
    invoicing_eligible, last_invoice_date, accrued_costs, version, created_at, updated_at`

// GetBillingAccount returns the account of userID or nil.
func (r *BillingRepository) GetBillingAccount(ctx context.Context, userID string) (*domain.BillingAccount, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+billingColumns+` FROM billing_accounts WHERE user_id = $1`, userID)
	acct, err := scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return acct, nil
}

// CreateBillingAccount inserts acct with version 1.
func (r *BillingRepository) CreateBillingAccount(ctx context.Context, acct *domain.BillingAccount) error {
	method, err := marshalMethod(acct.PaymentMethod)
	if err != nil {
		return err
	}
	err = r.pool.QueryRow(ctx, `INSERT INTO billing_accounts
    (user_id, payment_mode, payment_threshold, balance, payment_method,
     invoicing_eligible, last_invoice_date, accrued_costs, version, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,1,now(),now())
RETURNING version, created_at, updated_at`,
		acct.UserID, string(acct.PaymentMode), acct.PaymentThreshold, acct.Balance, method,
		acct.InvoicingEligible, acct.LastInvoiceDate, acct.AccruedCosts,
	).Scan(&acct.Version, &acct.CreatedAt, &acct.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.ErrAccountExists
	}
	return err
}

// UpdateBillingAccount writes acct when the stored version matches.
func (r *BillingRepository) UpdateBillingAccount(ctx context.Context, acct *domain.BillingAccount) error {
	method, err := marshalMethod(acct.PaymentMethod)
	if err != nil {
		return err
	}
	err = r.pool.QueryRow(ctx, `UPDATE billing_accounts SET
    payment_mode = $3,
    payment_threshold = $4,
    balance = $5,
    payment_method = $6,
    invoicing_eligible = $7,
    last_invoice_date = $8,
    accrued_costs = $9,
    version = version + 1,
    updated_at = now()
WHERE user_id = $1 AND version = $2
RETURNING version, created_at, updated_at`,
		acct.UserID, acct.Version, string(acct.PaymentMode), acct.PaymentThreshold, acct.Balance, method,
		acct.InvoicingEligible, acct.LastInvoiceDate, acct.AccruedCosts,
	).Scan(&acct.Version, &acct.CreatedAt, &acct.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrVersionConflict
	}
	return err
}

func scanAccount(row pgx.Row) (*domain.BillingAccount, error) {
	var (
		a      domain.BillingAccount
		mode   string
		method []byte
	)
	err := row.Scan(&a.UserID, &mode, &a.PaymentThreshold, &a.Balance, &method,
		&a.InvoicingEligible, &a.LastInvoiceDate, &a.AccruedCosts, &a.Version, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.PaymentMode = domain.PaymentMode(mode)
	if len(method) > 0 {
		var pm domain.PaymentMethod
		if err = json.Unmarshal(method, &pm); err != nil {
			return nil, fmt.Errorf("decode payment method of %s: %w", a.UserID, err)
		}
		a.PaymentMethod = &pm
	}
	return &a, nil
}

func marshalMethod(pm *domain.PaymentMethod) ([]byte, error) {
	if pm == nil {
		return nil, nil
	}
	return json.Marshal(pm)
}
