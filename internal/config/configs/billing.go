package configs

import "github.com/shopspring/decimal"

// Billing tunes the billing engine.
type Billing struct {
	// DefaultThreshold is the automatic-mode threshold given to new accounts.
	DefaultThreshold decimal.Decimal `env:"DEFAULT_THRESHOLD" envDefault:"50"`
	// MaxRetries bounds reloads after a concurrent modification.
	MaxRetries int `env:"MAX_RETRIES" envDefault:"3"`
}
