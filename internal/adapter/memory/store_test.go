package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-billing/internal/core/domain"
	"mesa-billing/internal/core/port"
)

func TestBillingAccountVersioning(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	got, err := s.GetBillingAccount(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, got)

	acct := domain.NewBillingAccount("u1", decimal.Zero)
	require.NoError(t, s.CreateBillingAccount(ctx, &acct))
	assert.Equal(t, int64(1), acct.Version)
	require.ErrorIs(t, s.CreateBillingAccount(ctx, &acct), domain.ErrAccountExists)

	first, err := s.GetBillingAccount(ctx, "u1")
	require.NoError(t, err)
	second, err := s.GetBillingAccount(ctx, "u1")
	require.NoError(t, err)

	first.Balance = decimal.NewFromInt(10)
	require.NoError(t, s.UpdateBillingAccount(ctx, first))
	assert.Equal(t, int64(2), first.Version)

	second.Balance = decimal.NewFromInt(20)
	require.ErrorIs(t, s.UpdateBillingAccount(ctx, second), domain.ErrVersionConflict)

	stored, err := s.GetBillingAccount(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, stored.Balance.Equal(decimal.NewFromInt(10)))
}

func TestStoredAccountIsDetached(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	acct := domain.NewBillingAccount("u1", decimal.Zero)
	acct.PaymentMethod = &domain.PaymentMethod{Type: "card", LastFour: "1111", Expiry: "01/30"}
	require.NoError(t, s.CreateBillingAccount(ctx, &acct))

	acct.PaymentMethod.LastFour = "9999"
	got, err := s.GetBillingAccount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "1111", got.PaymentMethod.LastFour)
}

func TestCatalogCascadeAndCounters(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	camp := domain.Campaign{Name: "Spring", Budget: decimal.NewFromInt(100)}
	require.NoError(t, s.CreateCampaign(ctx, &camp))
	assert.NotEmpty(t, camp.ID)
	assert.Equal(t, domain.CampaignStatusActive, camp.Status)

	require.ErrorIs(t, s.CreateAdGroup(ctx, &domain.AdGroup{CampaignID: "missing"}), domain.ErrNotFound)

	group := domain.AdGroup{CampaignID: camp.ID, Name: "Shoes", Keywords: []string{"shoes"}}
	require.NoError(t, s.CreateAdGroup(ctx, &group))
	ad := domain.Ad{AdGroupID: group.ID, Title: "Buy shoes", MaxCPC: decimal.NewFromFloat(0.5)}
	require.NoError(t, s.CreateAd(ctx, &ad))

	updated, err := s.IncrementAdCounters(ctx, ad.ID, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated.Impressions)
	assert.Equal(t, int64(1), updated.Clicks)

	missing, err := s.IncrementAdCounters(ctx, "nope", 1, 0)
	require.NoError(t, err)
	assert.Nil(t, missing)

	groups, err := s.ListAdGroups(ctx, port.AdGroupFilter{CampaignID: camp.ID})
	require.NoError(t, err)
	assert.Len(t, groups, 1)

	require.NoError(t, s.DeleteCampaign(ctx, camp.ID))
	require.ErrorIs(t, s.DeleteCampaign(ctx, camp.ID), domain.ErrNotFound)

	ads, err := s.ListAds(ctx, port.AdFilter{})
	require.NoError(t, err)
	assert.Empty(t, ads)
	groups, err = s.ListAdGroups(ctx, port.AdGroupFilter{})
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestUsersUniqueEmail(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	u := domain.User{Email: "demo@mesa.dev"}
	require.NoError(t, s.CreateUser(ctx, &u))
	assert.Equal(t, "en", u.Language)
	assert.Equal(t, "UTC", u.Timezone)
	require.ErrorIs(t, s.CreateUser(ctx, &domain.User{Email: "demo@mesa.dev"}), domain.ErrAlreadyExists)

	got, err := s.GetUserByEmail(ctx, "demo@mesa.dev")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}
