package port

import (
	"context"

	"mesa-billing/internal/core/domain"
)

// CatalogRepository stores campaigns, ad groups and ads. Get methods return
// nil without an error when the record does not exist.
type CatalogRepository interface {
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, f CampaignFilter) ([]domain.Campaign, error)
	// DeleteCampaign removes a campaign together with its ad groups and ads.
	DeleteCampaign(ctx context.Context, id string) error

	CreateAdGroup(ctx context.Context, g *domain.AdGroup) error
	ListAdGroups(ctx context.Context, f AdGroupFilter) ([]domain.AdGroup, error)

	CreateAd(ctx context.Context, ad *domain.Ad) error
	GetAd(ctx context.Context, id string) (*domain.Ad, error)
	ListAds(ctx context.Context, f AdFilter) ([]domain.Ad, error)
	// IncrementAdCounters atomically adds to the impression and click
	// counters and returns the updated ad, or nil if it does not exist.
	IncrementAdCounters(ctx context.Context, id string, impressions, clicks int64) (*domain.Ad, error)
}

// CampaignFilter narrows ListCampaigns. Zero values match everything.
type CampaignFilter struct {
	Status string
}

// AdGroupFilter narrows ListAdGroups.
type AdGroupFilter struct {
	CampaignID string
}

// AdFilter narrows ListAds.
type AdFilter struct {
	AdGroupID string
}
