package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-billing/internal/adapter/memory"
	"mesa-billing/internal/core/port"
)

func TestSeedBuildsCatalogTree(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	user, err := Seed(ctx, store, store, DefaultSeedOptions)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, DemoEmail, user.Email)

	campaigns, err := store.ListCampaigns(ctx, port.CampaignFilter{})
	require.NoError(t, err)
	assert.Len(t, campaigns, 5)

	groups, err := store.ListAdGroups(ctx, port.AdGroupFilter{})
	require.NoError(t, err)
	assert.Len(t, groups, 10)

	ads, err := store.ListAds(ctx, port.AdFilter{})
	require.NoError(t, err)
	require.Len(t, ads, 30)
	for _, ad := range ads {
		assert.LessOrEqual(t, ad.Clicks, ad.Impressions)
		assert.True(t, ad.MaxCPC.IsPositive())
	}
}

func TestSeedResetReplacesCatalogAndReusesUser(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	opts := SeedOptions{Campaigns: 2, GroupsPer: 1, AdsPerGroup: 1}

	first, err := Seed(ctx, store, store, opts)
	require.NoError(t, err)

	opts.Reset = true
	second, err := Seed(ctx, store, store, opts)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	campaigns, err := store.ListCampaigns(ctx, port.CampaignFilter{})
	require.NoError(t, err)
	assert.Len(t, campaigns, 2)

	ads, err := store.ListAds(ctx, port.AdFilter{})
	require.NoError(t, err)
	assert.Len(t, ads, 2)
}
