package port

import (
	"context"

	"github.com/shopspring/decimal"
)

// AnalyticsUseCase computes performance reports over the whole catalog.
type AnalyticsUseCase interface {
	Overview(ctx context.Context) (*Overview, error)
	Trends(ctx context.Context) (*Trends, error)
	// TopCampaigns returns the campaigns with the highest click-through
	// rate, best first.
	TopCampaigns(ctx context.Context) ([]CampaignMetrics, error)
	CampaignPerformance(ctx context.Context) ([]CampaignMetrics, error)
	AdPerformance(ctx context.Context) ([]AdMetrics, error)
}

// Trend labels.
const (
	TrendUp   = "up"
	TrendDown = "down"
)

// Overview summarises the catalog. ConversionRate is a percentage rounded
// to one decimal place.
type Overview struct {
	TotalImpressions    int64           `json:"totalImpressions"`
	TotalClicks         int64           `json:"totalClicks"`
	ConversionRate      float64         `json:"conversionRate"`
	TotalSpend          decimal.Decimal `json:"totalSpend"`
	ImpressionsTrend    string          `json:"impressionsTrend"`
	ClicksTrend         string          `json:"clicksTrend"`
	ConversionRateTrend string          `json:"conversionRateTrend"`
	SpendTrend          string          `json:"spendTrend"`
}

// Trends holds one value per day; the slices are index aligned.
type Trends struct {
	Dates       []string `json:"dates"`
	Impressions []int64  `json:"impressions"`
	Clicks      []int64  `json:"clicks"`
}

type CampaignMetrics struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
	CTR         float64         `json:"ctr"`
	Spend       decimal.Decimal `json:"spend"`
}

type AdMetrics struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
	CTR         float64         `json:"ctr"`
	Spend       decimal.Decimal `json:"spend"`
}
