package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ad is a single text ad with its performance counters.
type Ad struct {
	ID          string          `json:"id"`
	AdGroupID   string          `json:"adGroupId"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	TargetURL   string          `json:"targetUrl"`
	MaxCPC      decimal.Decimal `json:"maxCpc"` // maximum cost per click
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
	CreatedAt   time.Time       `json:"createdAt"`
}
