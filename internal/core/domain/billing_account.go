package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMode selects how accrued ad spend is settled.
type PaymentMode string

const (
	PaymentModeAutomatic PaymentMode = "automatic"
	PaymentModeManual    PaymentMode = "manual"
	PaymentModeInvoicing PaymentMode = "invoicing"
)

// ParsePaymentMode validates a textual payment mode.
func ParsePaymentMode(s string) (PaymentMode, error) {
	switch m := PaymentMode(s); m {
	case PaymentModeAutomatic, PaymentModeManual, PaymentModeInvoicing:
		return m, nil
	default:
		return "", ErrUnknownPaymentMode
	}
}

// DefaultPaymentThreshold is the automatic-mode threshold of a new account.
var DefaultPaymentThreshold = decimal.NewFromInt(50)

// PaymentMethod is a simplified card reference. Only presence of the fields
// is checked.
type PaymentMethod struct {
	Type     string `json:"type"`
	LastFour string `json:"lastFour"`
	Expiry   string `json:"expiry"`
}

// BillingAccount holds the billing state of a single user.
//
// Accounts are treated as values: every transition below returns a modified
// copy and leaves the receiver untouched, so a failed transition never
// changes the stored state.
type BillingAccount struct {
	UserID            string          `json:"userId"`
	PaymentMode       PaymentMode     `json:"paymentMode"`
	PaymentThreshold  decimal.Decimal `json:"paymentThreshold"`
	Balance           decimal.Decimal `json:"balance"`
	PaymentMethod     *PaymentMethod  `json:"paymentMethod,omitempty"`
	InvoicingEligible bool            `json:"invoicingEligible"`
	LastInvoiceDate   *time.Time      `json:"lastInvoiceDate,omitempty"`
	AccruedCosts      decimal.Decimal `json:"accruedCosts"`
	Version           int64           `json:"version"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// NewBillingAccount returns an account populated with defaults. A zero
// threshold argument selects DefaultPaymentThreshold.
func NewBillingAccount(userID string, threshold decimal.Decimal) BillingAccount {
	if threshold.IsZero() {
		threshold = DefaultPaymentThreshold
	}
	return BillingAccount{
		UserID:           userID,
		PaymentMode:      PaymentModeAutomatic,
		PaymentThreshold: threshold,
		Balance:          decimal.Zero,
		AccruedCosts:     decimal.Zero,
	}
}

// WithPaymentMode switches the payment mode. Entering invoicing requires
// InvoicingEligible.
func (a BillingAccount) WithPaymentMode(mode PaymentMode) (BillingAccount, error) {
	if _, err := ParsePaymentMode(string(mode)); err != nil {
		return a, err
	}
	if mode == PaymentModeInvoicing && !a.InvoicingEligible {
		return a, ErrInvalidModeTransition
	}
	a.PaymentMode = mode
	return a, nil
}

// WithPaymentMethod replaces the stored payment method.
func (a BillingAccount) WithPaymentMethod(pm PaymentMethod) (BillingAccount, error) {
	if pm.Type == "" || pm.LastFour == "" || pm.Expiry == "" {
		return a, ErrInvalidPaymentMethod
	}
	a.PaymentMethod = &pm
	return a, nil
}

// WithThreshold sets the automatic-mode charge threshold.
func (a BillingAccount) WithThreshold(threshold decimal.Decimal) (BillingAccount, error) {
	if threshold.IsNegative() {
		return a, ErrInvalidAmount
	}
	a.PaymentThreshold = threshold
	return a, nil
}

// WithManualPayment tops up the prepaid balance of a manual-mode account.
func (a BillingAccount) WithManualPayment(amount decimal.Decimal) (BillingAccount, error) {
	if a.PaymentMode != PaymentModeManual {
		return a, ErrInvalidMode
	}
	if !amount.IsPositive() {
		return a, ErrInvalidAmount
	}
	a.Balance = a.Balance.Add(amount)
	return a, nil
}

// WithInvoicingEligibility grants or revokes monthly invoicing. Revoking it
// from an account currently invoiced falls back to automatic mode.
func (a BillingAccount) WithInvoicingEligibility(eligible bool) BillingAccount {
	a.InvoicingEligible = eligible
	if !eligible && a.PaymentMode == PaymentModeInvoicing {
		a.PaymentMode = PaymentModeAutomatic
	}
	return a
}

// Settlement describes what an accrual did to the account.
type Settlement string

const (
	// SettlementNone means the cost was only added to AccruedCosts.
	SettlementNone Settlement = "none"
	// SettlementCharged means the automatic threshold was reached and the
	// accrued costs were charged.
	SettlementCharged Settlement = "charged"
	// SettlementDeducted means the cost was drawn from the prepaid balance.
	SettlementDeducted Settlement = "deducted"
	// SettlementInsufficientFunds means a manual account could not cover
	// the cost. Ads are considered stopped; nothing else is persisted.
	SettlementInsufficientFunds Settlement = "insufficient_funds"
	// SettlementInvoiced means a monthly invoicing cycle was closed.
	SettlementInvoiced Settlement = "invoiced"
)

// Accrue records cost against the account and applies the settlement rule of
// the current payment mode. now decides invoicing cycle rollover.
func (a BillingAccount) Accrue(cost decimal.Decimal, now time.Time) (BillingAccount, Settlement, error) {
	if cost.IsNegative() {
		return a, SettlementNone, ErrInvalidAmount
	}
	a.AccruedCosts = a.AccruedCosts.Add(cost)

	switch a.PaymentMode {
	case PaymentModeAutomatic:
		if a.AccruedCosts.GreaterThanOrEqual(a.PaymentThreshold) {
			a.AccruedCosts = decimal.Zero
			return a, SettlementCharged, nil
		}
	case PaymentModeManual:
		if a.Balance.LessThan(cost) {
			return a, SettlementInsufficientFunds, nil
		}
		a.Balance = a.Balance.Sub(cost)
		return a, SettlementDeducted, nil
	case PaymentModeInvoicing:
		now = now.UTC()
		if a.LastInvoiceDate == nil || !sameMonth(*a.LastInvoiceDate, now) {
			a.LastInvoiceDate = &now
			a.AccruedCosts = decimal.Zero
			return a, SettlementInvoiced, nil
		}
	}
	return a, SettlementNone, nil
}

func sameMonth(a, b time.Time) bool {
	a = a.UTC()
	return a.Year() == b.Year() && a.Month() == b.Month()
}
