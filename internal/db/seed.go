package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"mesa-billing/internal/core/domain"
	"mesa-billing/internal/core/port"
)

// DemoEmail is the address of the seeded advertiser.
const DemoEmail = "demo@mesa.local"

// SeedOptions controls Seed.
type SeedOptions struct {
	Campaigns   int
	GroupsPer   int
	AdsPerGroup int
	// Reset deletes every existing campaign before inserting.
	Reset bool
}

// DefaultSeedOptions mirrors the demo dataset of the dashboard.
var DefaultSeedOptions = SeedOptions{Campaigns: 5, GroupsPer: 2, AdsPerGroup: 3}

// Seed inserts a demo user and a campaign tree into the repositories and
// returns the user.
func Seed(ctx context.Context, catalog port.CatalogRepository, users port.UserRepository, opts SeedOptions) (*domain.User, error) {
	user, err := seedUser(ctx, users)
	if err != nil {
		return nil, err
	}

	if opts.Reset {
		existing, err := catalog.ListCampaigns(ctx, port.CampaignFilter{})
		if err != nil {
			return nil, err
		}
		for _, c := range existing {
			if err = catalog.DeleteCampaign(ctx, c.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("delete campaign %s: %w", c.ID, err)
			}
		}
	}

	statuses := []string{domain.CampaignStatusActive, domain.CampaignStatusActive, domain.CampaignStatusPaused}
	now := time.Now().UTC()
	var n int64
	for i := 1; i <= opts.Campaigns; i++ {
		camp := &domain.Campaign{
			Name:      fmt.Sprintf("Campaign %d", i),
			StartDate: now.AddDate(0, 0, -1),
			EndDate:   now.AddDate(0, 1, 0),
			Budget:    decimal.NewFromInt(int64(500 * i)),
			Status:    statuses[(i-1)%len(statuses)],
		}
		if err = catalog.CreateCampaign(ctx, camp); err != nil {
			return nil, fmt.Errorf("create campaign: %w", err)
		}

		for j := 1; j <= opts.GroupsPer; j++ {
			group := &domain.AdGroup{
				CampaignID: camp.ID,
				Name:       fmt.Sprintf("Group %d.%d", i, j),
				Keywords:   []string{"ads", fmt.Sprintf("campaign-%d", i), fmt.Sprintf("group-%d", j)},
			}
			if err = catalog.CreateAdGroup(ctx, group); err != nil {
				return nil, fmt.Errorf("create ad group: %w", err)
			}

			for k := 1; k <= opts.AdsPerGroup; k++ {
				n++
				// deterministic counters with a CTR between 1% and 9%
				impressions := 1000 * n
				ad := &domain.Ad{
					AdGroupID:   group.ID,
					Title:       fmt.Sprintf("Ad %d.%d.%d", i, j, k),
					Description: fmt.Sprintf("Demo ad %d", n),
					TargetURL:   fmt.Sprintf("https://example.com/landing/%d", n),
					MaxCPC:      decimal.New(25*(1+n%4), -2),
					Impressions: impressions,
					Clicks:      impressions * (1 + n%9) / 100,
				}
				if err = catalog.CreateAd(ctx, ad); err != nil {
					return nil, fmt.Errorf("create ad: %w", err)
				}
			}
		}
	}
	return user, nil
}

func seedUser(ctx context.Context, users port.UserRepository) (*domain.User, error) {
	u, err := users.GetUserByEmail(ctx, DemoEmail)
	if err != nil || u != nil {
		return u, err
	}
	u = &domain.User{
		Email:     DemoEmail,
		FirstName: "Demo",
		LastName:  "Advertiser",
		Company:   "Mesa",
	}
	if err = users.CreateUser(ctx, u); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return users.GetUserByEmail(ctx, DemoEmail)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}
