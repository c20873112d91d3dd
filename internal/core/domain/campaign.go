package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campaign represents an advertising campaign. Budget is counted as spend by
// the analytics reports.
type Campaign struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	StartDate time.Time       `json:"startDate"`
	EndDate   time.Time       `json:"endDate"`
	Budget    decimal.Decimal `json:"budget"`
	Status    string          `json:"status"` // active, paused, completed
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

const (
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
)

// AdGroup groups ads of a campaign around a keyword set.
type AdGroup struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaignId"`
	Name       string    `json:"name"`
	Keywords   []string  `json:"keywords"`
	CreatedAt  time.Time `json:"createdAt"`
}
